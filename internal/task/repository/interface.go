package repository

import (
	"context"

	"smart-task-assistant/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
	CorpusRepository
}

// TaskRepository defines data access for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateStatus(ctx context.Context, opt UpdateStatusOptions) (model.Task, error)
}

// CorpusRepository reads title snapshots for the recommender.
type CorpusRepository interface {
	// ListTitles returns a user's titles, oldest first.
	ListTitles(ctx context.Context, userID string) ([]string, error)
	// ListOccurrences returns every (user, title) pair, oldest first.
	ListOccurrences(ctx context.Context) ([]Occurrence, error)
}

// TitleSource loads task titles from outside the store.
type TitleSource interface {
	LoadTitles(ctx context.Context, path string) ([]string, error)
}

// Occurrence is one stored (user, title) pair.
type Occurrence struct {
	UserID string
	Title  string
}
