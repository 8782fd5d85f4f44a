package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/pkg/log"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var schema = []string{`
CREATE TABLE IF NOT EXISTS tasks (
	id                  TEXT PRIMARY KEY,
	user_id             TEXT NOT NULL,
	title               TEXT NOT NULL,
	due_at              TEXT,
	status              TEXT NOT NULL,
	priority            INTEGER NOT NULL,
	suggestions         TEXT NOT NULL DEFAULT '[]',
	complementary_tasks TEXT NOT NULL DEFAULT '[]',
	created_at          TEXT NOT NULL,
	completed_at        TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_created ON tasks (user_id, created_at)`,
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens the SQLite database at path and makes sure the tasks table exists.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		// Every connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	} else if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema %d: %w", i, err)
		}
	}
	return db, nil
}

// New creates a SQLite-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
