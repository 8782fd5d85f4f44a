package usecase

import (
	"context"
	"errors"
	"strings"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/normalizer"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
)

// Create enriches a free-text description and stores the resulting task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	ctx, err := uc.begin(ctx, sc)
	if err != nil {
		return task.CreateOutput{}, err
	}

	e, err := uc.enrich(ctx, sc, input.Text)
	if err != nil {
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:             sc.UserID,
		Title:              e.Title,
		DueAt:              e.Parsed.DueAt,
		Status:             e.Status,
		Priority:           e.Priority,
		Suggestions:        e.Suggestions,
		ComplementaryTasks: e.ComplementaryTasks,
		CreatedAt:          uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "Create: user=%s task=%s priority=%d status=%s resolution=%s",
		sc.UserID, t.ID, t.Priority, t.Status, e.Parsed.Resolution)
	return task.CreateOutput{Task: t, Enrichment: e}, nil
}

// Preview returns the enrichment Create would store.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input task.CreateInput) (task.PreviewOutput, error) {
	ctx, err := uc.begin(ctx, sc)
	if err != nil {
		return task.PreviewOutput{}, err
	}

	e, err := uc.enrich(ctx, sc, input.Text)
	if err != nil {
		return task.PreviewOutput{}, err
	}
	return task.PreviewOutput{Enrichment: e}, nil
}

// enrich runs normalize → priority → suggestions → recommendations.
// Complementary tasks fall back from the occurrence matrix to similar titles
// and then to the suggestion providers.
func (uc *implUseCase) enrich(ctx context.Context, sc model.Scope, text string) (task.Enrichment, error) {
	now := uc.now()

	parsed, err := uc.normalizer.Normalize(text, now)
	if err != nil {
		if errors.Is(err, normalizer.ErrInvalidArgument) {
			return task.Enrichment{}, task.ErrEmptyInput
		}
		uc.l.Errorf(ctx, "uc.enrich Normalize: %v", err)
		return task.Enrichment{}, err
	}

	title := parsed.CleanedTitle
	if title == "" {
		// The whole text was a date phrase; keep it rather than store a blank title.
		title = strings.Join(strings.Fields(text), " ")
	}

	corpus := uc.corpus(ctx, sc.UserID)
	similar := uc.similar.Similar(ctx, corpus, title, uc.topN)

	comp, err := uc.complementary(ctx, sc.UserID, title, corpus, uc.topN)
	if err != nil {
		uc.l.Warnf(ctx, "uc.enrich complementary: %v", err)
	}
	if len(comp) == 0 {
		comp = append([]string(nil), similar...)
	}
	if len(comp) == 0 {
		comp = uc.suggester.Complementary(ctx, sc.UserID, title)
	}

	return task.Enrichment{
		Parsed:             parsed,
		Title:              title,
		Priority:           uc.scorer.Score(title, parsed.DueAt, now),
		Status:             model.StatusFor(parsed.DueAt, now),
		Suggestions:        uc.suggester.Subtasks(ctx, sc.UserID, title),
		ComplementaryTasks: comp,
		SimilarTasks:       similar,
		Plan:               uc.suggester.Plan(title),
	}, nil
}
