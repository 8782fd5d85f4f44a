package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusUrgent    TaskStatus = "urgent"
	StatusCompleted TaskStatus = "completed"
)

// UrgentWindow is how close a due instant must be for a new task to start urgent.
const UrgentWindow = 24 * time.Hour

// Task is a stored task with its derived metadata.
type Task struct {
	ID                 string
	UserID             string
	Title              string
	DueAt              *time.Time // nil when unscheduled
	Status             TaskStatus
	Priority           int // 1 = most urgent
	Suggestions        []string
	ComplementaryTasks []string
	CreatedAt          time.Time
	CompletedAt        *time.Time
}

// IsOverdue reports whether the task is past due and not completed.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueAt != nil && t.DueAt.Before(now) && t.Status != StatusCompleted
}

// StatusFor returns the initial status for a task due at dueAt.
func StatusFor(dueAt *time.Time, now time.Time) TaskStatus {
	if dueAt != nil && dueAt.Sub(now) <= UrgentWindow {
		return StatusUrgent
	}
	return StatusPending
}
