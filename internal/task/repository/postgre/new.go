package postgre

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/pkg/log"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS tasks (
	seq                 BIGSERIAL,
	id                  UUID PRIMARY KEY,
	user_id             TEXT NOT NULL,
	title               TEXT NOT NULL,
	due_at              TIMESTAMPTZ,
	status              TEXT NOT NULL,
	priority            INTEGER NOT NULL,
	suggestions         TEXT[] NOT NULL DEFAULT '{}',
	complementary_tasks TEXT[] NOT NULL DEFAULT '{}',
	created_at          TIMESTAMPTZ NOT NULL,
	completed_at        TIMESTAMPTZ
)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_created ON tasks (user_id, created_at)`,
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open connects to PostgreSQL and makes sure the tasks table exists.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema %d: %w", i, err)
		}
	}
	return db, nil
}

// New creates a new PostgreSQL-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
