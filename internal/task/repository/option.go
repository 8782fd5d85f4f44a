package repository

import (
	"time"

	"smart-task-assistant/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID             string
	Title              string
	DueAt              *time.Time
	Status             model.TaskStatus
	Priority           int
	Suggestions        []string
	ComplementaryTasks []string
	CreatedAt          time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID  string
	Status  model.TaskStatus
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateStatusOptions moves a task to Status. CompletedAt is stored as given.
type UpdateStatusOptions struct {
	ID          string
	Status      model.TaskStatus
	CompletedAt *time.Time
}
