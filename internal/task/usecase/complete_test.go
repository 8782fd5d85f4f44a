package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/recommender"
	"smart-task-assistant/internal/task"
)

func TestComplete(t *testing.T) {
	f := newFixture(t, recommender.ScopeUser, 0)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, sc, task.CreateInput{Text: "Submit report"})
	require.NoError(t, err)

	out, err := f.uc.Complete(ctx, sc, task.CompleteInput{ID: created.Task.ID})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, out.Task.Status)
	require.NotNil(t, out.Task.CompletedAt)
	assert.Equal(t, testNow, *out.Task.CompletedAt)

	// Completing twice is a no-op.
	again, err := f.uc.Complete(ctx, sc, task.CompleteInput{ID: created.Task.ID})
	require.NoError(t, err)
	assert.Equal(t, out.Task, again.Task)
}

func TestComplete_NotFound(t *testing.T) {
	f := newFixture(t, recommender.ScopeUser, 0)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, sc, task.CreateInput{Text: "Submit report"})
	require.NoError(t, err)

	_, err = f.uc.Complete(ctx, model.Scope{UserID: "u2"}, task.CompleteInput{ID: created.Task.ID})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	_, err = f.uc.Complete(ctx, sc, task.CompleteInput{ID: "missing"})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	_, err = f.uc.Complete(ctx, sc, task.CompleteInput{})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}
