package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-assistant/internal/model"
	repo "smart-task-assistant/internal/task/repository"
	"smart-task-assistant/pkg/log"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop())
}

func seed(t *testing.T, r repo.Repository, userID, title string, createdAt time.Time) model.Task {
	t.Helper()
	task, err := r.CreateTask(context.Background(), repo.CreateTaskOptions{
		UserID:    userID,
		Title:     title,
		Status:    model.StatusPending,
		Priority:  4,
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	return task
}

func TestCreateAndGetTask(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	loc := time.FixedZone("ICT", 7*60*60)
	due := time.Date(2025, 1, 11, 0, 0, 0, 0, loc)
	created := time.Date(2025, 1, 10, 8, 30, 0, 123, time.UTC)

	got, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:             "u1",
		Title:              "Submit report",
		DueAt:              &due,
		Status:             model.StatusUrgent,
		Priority:           2,
		Suggestions:        []string{"Gather data", "Draft report"},
		ComplementaryTasks: nil,
		CreatedAt:          created,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Submit report", got.Title)
	require.NotNil(t, got.DueAt)
	assert.True(t, due.Equal(*got.DueAt))
	assert.Equal(t, model.StatusUrgent, got.Status)
	assert.Equal(t, 2, got.Priority)
	assert.Equal(t, []string{"Gather data", "Draft report"}, got.Suggestions)
	assert.Equal(t, []string{}, got.ComplementaryTasks)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Nil(t, got.CompletedAt)

	again, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: got.ID, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestGetOneTask_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	task := seed(t, r, "u1", "Write report", time.Now())

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	// Other users cannot see the task.
	got, err = r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: task.ID, UserID: "u2"})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestListTasks(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	seed(t, r, "u1", "first", base)
	seed(t, r, "u1", "second", base.Add(time.Hour))
	seed(t, r, "u1", "third", base.Add(2*time.Hour))
	seed(t, r, "u2", "other", base)

	tasks, total, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)

	tasks, total, err = r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", Limit: 1, Offset: 1, OrderBy: "created_at ASC"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, tasks, 1)
	assert.Equal(t, "second", tasks[0].Title)

	tasks, _, err = r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", Offset: 2, OrderBy: "created_at ASC"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "third", tasks[0].Title)

	_, _, err = r.ListTasks(ctx, repo.ListTasksOptions{OrderBy: "title; DROP TABLE tasks"})
	assert.ErrorIs(t, err, repo.ErrInvalidOrderBy)
}

func TestUpdateStatus(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	task := seed(t, r, "u1", "Write report", time.Now())
	done := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)

	got, err := r.UpdateStatus(ctx, repo.UpdateStatusOptions{ID: task.ID, Status: model.StatusCompleted, CompletedAt: &done})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, done.Equal(*got.CompletedAt))

	tasks, total, err := r.ListTasks(ctx, repo.ListTasksOptions{Status: model.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, task.ID, tasks[0].ID)

	missing, err := r.UpdateStatus(ctx, repo.UpdateStatusOptions{ID: "missing", Status: model.StatusCompleted})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestListTitlesAndOccurrences(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	titles, err := r.ListTitles(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, titles)

	seed(t, r, "u1", "Write report", base.Add(time.Hour))
	seed(t, r, "u2", "Book flight", base)
	seed(t, r, "u1", "Buy groceries", base)
	seed(t, r, "u1", "Call mom", base)

	titles, err = r.ListTitles(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy groceries", "Call mom", "Write report"}, titles)

	occ, err := r.ListOccurrences(ctx)
	require.NoError(t, err)
	assert.Equal(t, []repo.Occurrence{
		{UserID: "u2", Title: "Book flight"},
		{UserID: "u1", Title: "Buy groceries"},
		{UserID: "u1", Title: "Call mom"},
		{UserID: "u1", Title: "Write report"},
	}, occ)
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	mods, args, err := r.buildListQuery(repo.ListTasksOptions{UserID: "u1", Status: model.StatusPending, Limit: 10, Offset: 5})
	require.NoError(t, err)
	assert.Equal(t, "WHERE user_id = ? AND status = ? ORDER BY created_at DESC, rowid ASC LIMIT ? OFFSET ?", mods)
	assert.Equal(t, []any{"u1", "pending", 10, 5}, args)

	mods, args, err = r.buildListQuery(repo.ListTasksOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY created_at DESC, rowid ASC", mods)
	assert.Empty(t, args)
}
