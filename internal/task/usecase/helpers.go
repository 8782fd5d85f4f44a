package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/recommender"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
	pkgLog "smart-task-assistant/pkg/log"
)

const (
	defaultMinSharedUsers = 2
	overviewDays          = 7
	dayLayout             = "2006-01-02"
)

// now returns the current instant in the configured location.
func (uc *implUseCase) now() time.Time {
	return uc.clock().In(uc.loc)
}

// begin validates the scope and tags ctx with a request ID.
func (uc *implUseCase) begin(ctx context.Context, sc model.Scope) (context.Context, error) {
	if strings.TrimSpace(sc.UserID) == "" {
		return ctx, task.ErrMissingUser
	}
	id := sc.RequestID
	if id == "" {
		id = uuid.NewString()
	}
	return pkgLog.WithRequestID(ctx, id), nil
}

func (uc *implUseCase) resolveTopN(n int) int {
	if n <= 0 {
		return uc.topN
	}
	return n
}

// corpus loads the user's titles. A failed read degrades to an empty corpus.
func (uc *implUseCase) corpus(ctx context.Context, userID string) []string {
	titles, err := uc.repo.ListTitles(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "usecase.corpus: ListTitles user=%s: %v", userID, err)
		return []string{}
	}
	return titles
}

// complementary runs the occurrence-matrix lookup in the configured scope.
func (uc *implUseCase) complementary(ctx context.Context, userID, title string, corpus []string, topN int) ([]string, error) {
	if uc.scope != recommender.ScopeGlobal {
		return recommender.FindComplementaryTitles(corpus, title, topN), nil
	}

	stored, err := uc.repo.ListOccurrences(ctx)
	if err != nil {
		return nil, err
	}
	return recommender.FindComplementaryFor(toOccurrences(stored), userID, title, topN, uc.minShared), nil
}

func toOccurrences(in []repository.Occurrence) []recommender.Occurrence {
	out := make([]recommender.Occurrence, len(in))
	for i, o := range in {
		out[i] = recommender.Occurrence{UserID: o.UserID, Title: o.Title}
	}
	return out
}
