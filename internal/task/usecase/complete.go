package usecase

import (
	"context"
	"strings"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
)

// Complete marks one of the user's tasks as completed.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input task.CompleteInput) (task.CompleteOutput, error) {
	ctx, err := uc.begin(ctx, sc)
	if err != nil {
		return task.CompleteOutput{}, err
	}
	if strings.TrimSpace(input.ID) == "" {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}

	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetOneTask: %v", err)
		return task.CompleteOutput{}, err
	}
	if existing.ID == "" {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}
	if existing.Status == model.StatusCompleted {
		return task.CompleteOutput{Task: existing}, nil
	}

	now := uc.now()
	t, err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		ID:          existing.ID,
		Status:      model.StatusCompleted,
		CompletedAt: &now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateStatus: %v", err)
		return task.CompleteOutput{}, err
	}
	if t.ID == "" {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}
	return task.CompleteOutput{Task: t}, nil
}
