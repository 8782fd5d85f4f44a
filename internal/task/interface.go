package task

import (
	"context"

	"smart-task-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create normalizes, scores and enriches a free-text description, then stores it.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// Preview runs the same enrichment as Create without storing anything.
	Preview(ctx context.Context, sc model.Scope, input CreateInput) (PreviewOutput, error)

	// Similar ranks the user's titles by TF-IDF similarity.
	Similar(ctx context.Context, sc model.Scope, input SimilarInput) (SimilarOutput, error)

	// Complementary ranks titles that co-occur with the given one.
	Complementary(ctx context.Context, sc model.Scope, input ComplementaryInput) (ComplementaryOutput, error)

	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Overview(ctx context.Context, sc model.Scope) (OverviewOutput, error)
	Import(ctx context.Context, sc model.Scope, input ImportInput) (ImportOutput, error)
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (CompleteOutput, error)
}
