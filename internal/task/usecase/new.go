package usecase

import (
	"time"

	"smart-task-assistant/internal/normalizer"
	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/recommender"
	"smart-task-assistant/internal/suggestion"
	"smart-task-assistant/internal/task/repository"
	pkgLog "smart-task-assistant/pkg/log"
)

// Config holds use case tuning that is not a collaborator.
type Config struct {
	TopN           int
	Scope          recommender.Scope
	MinSharedUsers int // global scope only; titles owned by fewer users stay private
	Location       *time.Location
	Now            func() time.Time // nil means time.Now
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	titles     repository.TitleSource
	normalizer *normalizer.Normalizer
	scorer     *priority.Scorer
	similar    *recommender.Cache
	suggester  *suggestion.Cascade
	topN       int
	scope      recommender.Scope
	minShared  int
	loc        *time.Location
	clock      func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	titles repository.TitleSource,
	norm *normalizer.Normalizer,
	scorer *priority.Scorer,
	similar *recommender.Cache,
	suggester *suggestion.Cascade,
	cfg Config,
) *implUseCase {
	if cfg.TopN <= 0 {
		cfg.TopN = recommender.DefaultTopN
	}
	if cfg.Scope == "" {
		cfg.Scope = recommender.ScopeUser
	}
	if cfg.MinSharedUsers <= 0 {
		cfg.MinSharedUsers = defaultMinSharedUsers
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		titles:     titles,
		normalizer: norm,
		scorer:     scorer,
		similar:    similar,
		suggester:  suggester,
		topN:       cfg.TopN,
		scope:      cfg.Scope,
		minShared:  cfg.MinSharedUsers,
		loc:        cfg.Location,
		clock:      cfg.Now,
	}
}
