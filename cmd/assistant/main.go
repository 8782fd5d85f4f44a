package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-task-assistant/config"
	"smart-task-assistant/internal/normalizer"
	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/recommender"
	"smart-task-assistant/internal/suggestion"
	"smart-task-assistant/internal/task/delivery/cli"
	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/internal/task/repository/file"
	"smart-task-assistant/internal/task/repository/postgre"
	"smart-task-assistant/internal/task/repository/sqlite"
	"smart-task-assistant/internal/task/usecase"
	"smart-task-assistant/pkg/datemath"
	"smart-task-assistant/pkg/log"
	"smart-task-assistant/pkg/sentiment"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load(os.Getenv("ASSISTANT_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debugf(ctx, "Environment: %s, database: %s", cfg.Environment.Name, cfg.Database.Driver)

	// 3. Storage
	db, repo, err := openRepository(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	// 4. Enrichment pipeline
	dateMathParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	norm, err := normalizer.New(dateMathParser, normalizer.AmbiguityPolicy(cfg.Normalizer.AmbiguityPolicy))
	if err != nil {
		return fmt.Errorf("normalizer: %w", err)
	}
	similar, err := recommender.NewCache(logger, cfg.Recommender.CacheSize)
	if err != nil {
		return fmt.Errorf("recommender: %w", err)
	}
	scope, err := recommender.ParseScope(cfg.Recommender.ComplementaryScope)
	if err != nil {
		return fmt.Errorf("recommender: %w", err)
	}
	providers, err := suggestion.ProvidersByName(cfg.Suggestion.Providers)
	if err != nil {
		return fmt.Errorf("suggestion: %w", err)
	}
	suggester := suggestion.NewCascade(logger, suggestion.Config{
		RateLimitPerMin: cfg.Suggestion.RateLimitPerMin,
		MaxItems:        cfg.Suggestion.MaxItems,
		RetryAttempts:   cfg.Suggestion.RetryAttempts,
		RetryDelay:      cfg.Suggestion.RetryDelay,
		MaxTotalTimeout: cfg.Suggestion.MaxTotalTimeout,
	}, providers...)

	// 5. Task UseCase
	taskUC := usecase.New(
		logger,
		repo,
		file.New(logger),
		norm,
		priority.New(sentiment.NewLexicon(nil)),
		similar,
		suggester,
		usecase.Config{
			TopN:           cfg.Recommender.TopN,
			Scope:          scope,
			MinSharedUsers: cfg.Recommender.MinSharedUsers,
			Location:       dateMathParser.Location(),
			Now:            time.Now,
		},
	)

	// 6. CLI delivery
	app := &cli.App{Tasks: taskUC}
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func openRepository(ctx context.Context, cfg config.DatabaseConfig, logger log.Logger) (*sql.DB, repository.Repository, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgre.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("opening postgres: %w", err)
		}
		return db, postgre.New(db, logger), nil
	default:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite %s: %w", cfg.DSN, err)
		}
		return db, sqlite.New(db, logger), nil
	}
}
