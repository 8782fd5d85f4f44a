package task

import (
	"time"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/normalizer"
)

// --- UseCase Inputs ---

// CreateInput is the free-text description of a new task.
// UserID is carried by model.Scope.
type CreateInput struct {
	Text string
}

// SimilarInput asks for titles in the user's history resembling Title.
type SimilarInput struct {
	Title string
	TopN  int // 0 uses the configured default
}

// ComplementaryInput asks for titles that co-occur with Title.
type ComplementaryInput struct {
	Title string
	TopN  int
}

type ListInput struct {
	Status model.TaskStatus
	Limit  int
	Offset int
}

// ImportInput bulk-creates tasks from Titles, or from the YAML file at Path
// when Titles is empty.
type ImportInput struct {
	Path   string
	Titles []string
}

type CompleteInput struct {
	ID string
}

// --- UseCase Outputs ---

// Enrichment is everything derived from a raw description before it is stored.
type Enrichment struct {
	Parsed             normalizer.ParsedTask
	Title              string
	Priority           int
	Status             model.TaskStatus
	Suggestions        []string
	ComplementaryTasks []string
	SimilarTasks       []string
	Plan               []string
}

type CreateOutput struct {
	Task       model.Task
	Enrichment Enrichment
}

type PreviewOutput struct {
	Enrichment Enrichment
}

type SimilarOutput struct {
	Titles []string
}

type ComplementaryOutput struct {
	Titles []string
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// DayCount is the number of tasks created on Date (YYYY-MM-DD).
type DayCount struct {
	Date  string
	Count int
}

// OverviewOutput summarizes a user's tasks.
type OverviewOutput struct {
	Total     int
	Completed int
	Pending   int // everything not completed
	Overdue   int
	Weekly    []DayCount // last 7 days, oldest first
	AsOf      time.Time
}

// ImportFailure records a title that could not be imported.
type ImportFailure struct {
	Title string
	Err   error
}

type ImportOutput struct {
	Tasks    []model.Task
	Failures []ImportFailure
}

type CompleteOutput struct {
	Task model.Task
}
