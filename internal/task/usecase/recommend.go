package usecase

import (
	"context"
	"strings"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
)

// Similar ranks the user's stored titles against input.Title.
func (uc *implUseCase) Similar(ctx context.Context, sc model.Scope, input task.SimilarInput) (task.SimilarOutput, error) {
	ctx, err := uc.begin(ctx, sc)
	if err != nil {
		return task.SimilarOutput{}, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.SimilarOutput{}, task.ErrEmptyTitle
	}

	corpus, err := uc.repo.ListTitles(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Similar ListTitles: %v", err)
		return task.SimilarOutput{}, err
	}

	return task.SimilarOutput{
		Titles: uc.similar.Similar(ctx, corpus, title, uc.resolveTopN(input.TopN)),
	}, nil
}

// Complementary ranks titles that co-occur with input.Title.
func (uc *implUseCase) Complementary(ctx context.Context, sc model.Scope, input task.ComplementaryInput) (task.ComplementaryOutput, error) {
	ctx, err := uc.begin(ctx, sc)
	if err != nil {
		return task.ComplementaryOutput{}, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.ComplementaryOutput{}, task.ErrEmptyTitle
	}

	corpus, err := uc.repo.ListTitles(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complementary ListTitles: %v", err)
		return task.ComplementaryOutput{}, err
	}

	titles, err := uc.complementary(ctx, sc.UserID, title, corpus, uc.resolveTopN(input.TopN))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complementary ListOccurrences: %v", err)
		return task.ComplementaryOutput{}, err
	}
	return task.ComplementaryOutput{Titles: titles}, nil
}
