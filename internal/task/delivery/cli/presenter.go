package cli

import (
	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/response"
)

type taskResp struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	Title              string             `json:"title"`
	DueAt              *response.DateTime `json:"due_at,omitempty"`
	Status             string             `json:"status"`
	Priority           int                `json:"priority"`
	PriorityLabel      string             `json:"priority_label"`
	Suggestions        []string           `json:"suggestions"`
	ComplementaryTasks []string           `json:"complementary_tasks"`
	CreatedAt          response.DateTime  `json:"created_at"`
	CompletedAt        *response.DateTime `json:"completed_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                 t.ID,
		UserID:             t.UserID,
		Title:              t.Title,
		DueAt:              response.NewDateTime(t.DueAt),
		Status:             string(t.Status),
		Priority:           t.Priority,
		PriorityLabel:      priority.Label(t.Priority),
		Suggestions:        nonNil(t.Suggestions),
		ComplementaryTasks: nonNil(t.ComplementaryTasks),
		CreatedAt:          response.DateTime(t.CreatedAt),
		CompletedAt:        response.NewDateTime(t.CompletedAt),
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskResp(t))
	}
	return out
}

type enrichmentResp struct {
	Title              string             `json:"title"`
	DueAt              *response.DateTime `json:"due_at,omitempty"`
	HasTime            bool               `json:"has_time"`
	Resolution         string             `json:"resolution"`
	Priority           int                `json:"priority"`
	PriorityLabel      string             `json:"priority_label"`
	Status             string             `json:"status"`
	Suggestions        []string           `json:"suggestions"`
	ComplementaryTasks []string           `json:"complementary_tasks"`
	SimilarTasks       []string           `json:"similar_tasks"`
	Plan               []string           `json:"plan"`
}

func newEnrichmentResp(e task.Enrichment) enrichmentResp {
	return enrichmentResp{
		Title:              e.Title,
		DueAt:              response.NewDateTime(e.Parsed.DueAt),
		HasTime:            e.Parsed.HasTime,
		Resolution:         e.Parsed.Resolution.String(),
		Priority:           e.Priority,
		PriorityLabel:      priority.Label(e.Priority),
		Status:             string(e.Status),
		Suggestions:        nonNil(e.Suggestions),
		ComplementaryTasks: nonNil(e.ComplementaryTasks),
		SimilarTasks:       nonNil(e.SimilarTasks),
		Plan:               nonNil(e.Plan),
	}
}

type createResp struct {
	Task       taskResp       `json:"task"`
	Enrichment enrichmentResp `json:"enrichment"`
}

type titlesResp struct {
	Titles []string `json:"titles"`
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

type dayCountResp struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type overviewResp struct {
	Total     int               `json:"total"`
	Completed int               `json:"completed"`
	Pending   int               `json:"pending"`
	Overdue   int               `json:"overdue"`
	Weekly    []dayCountResp    `json:"weekly"`
	AsOf      response.DateTime `json:"as_of"`
}

func newOverviewResp(o task.OverviewOutput) overviewResp {
	weekly := make([]dayCountResp, 0, len(o.Weekly))
	for _, d := range o.Weekly {
		weekly = append(weekly, dayCountResp{Date: d.Date, Count: d.Count})
	}
	return overviewResp{
		Total:     o.Total,
		Completed: o.Completed,
		Pending:   o.Pending,
		Overdue:   o.Overdue,
		Weekly:    weekly,
		AsOf:      response.DateTime(o.AsOf),
	}
}

type importFailureResp struct {
	Title string `json:"title"`
	Error string `json:"error"`
}

type importResp struct {
	Tasks    []taskResp          `json:"tasks"`
	Failures []importFailureResp `json:"failures"`
}

func newImportResp(o task.ImportOutput) importResp {
	failures := make([]importFailureResp, 0, len(o.Failures))
	for _, f := range o.Failures {
		failures = append(failures, importFailureResp{Title: f.Title, Error: f.Err.Error()})
	}
	return importResp{Tasks: newTaskListResp(o.Tasks), Failures: failures}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
