package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"smart-task-assistant/internal/model"
	repo "smart-task-assistant/internal/task/repository"
)

const taskColumns = `id, user_id, title, due_at, status, priority, suggestions, complementary_tasks, created_at, completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULL)
		RETURNING ` + taskColumns

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query,
		uuid.New(), opt.UserID, opt.Title, nullTime(opt.DueAt), string(opt.Status), opt.Priority,
		pq.Array(nonNil(opt.Suggestions)), pq.Array(nonNil(opt.ComplementaryTasks)), opt.CreatedAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if opt.ID != "" {
		if _, err := uuid.Parse(opt.ID); err != nil {
			return model.Task{}, nil
		}
	}
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args, err := r.buildListQuery(opt)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, rows.Err()
}

// UpdateStatus sets the status and completion time of a Task.
// Returns zero-value Task when the ID does not exist.
func (r *implRepository) UpdateStatus(ctx context.Context, opt repo.UpdateStatusOptions) (model.Task, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return model.Task{}, nil
	}
	query := `
		UPDATE tasks SET status = $1, completed_at = $2
		WHERE id = $3
		RETURNING ` + taskColumns

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, string(opt.Status), nullTime(opt.CompletedAt), opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// ListTitles returns a user's titles, oldest first.
func (r *implRepository) ListTitles(ctx context.Context, userID string) ([]string, error) {
	const query = `SELECT title FROM tasks WHERE user_id = $1 ORDER BY created_at ASC, seq ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTitles"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, repo.ErrFailedToList
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// ListOccurrences returns every (user, title) pair, oldest first.
func (r *implRepository) ListOccurrences(ctx context.Context) ([]repo.Occurrence, error) {
	const query = `SELECT user_id, title FROM tasks ORDER BY created_at ASC, seq ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOccurrences"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	occ := []repo.Occurrence{}
	for rows.Next() {
		var o repo.Occurrence
		if err := rows.Scan(&o.UserID, &o.Title); err != nil {
			return nil, repo.ErrFailedToList
		}
		occ = append(occ, o)
	}
	return occ, rows.Err()
}

func (r *implRepository) scanTask(s rowScanner) (model.Task, error) {
	var (
		t                  model.Task
		status             string
		dueAt, completedAt sql.NullTime
	)
	err := s.Scan(&t.ID, &t.UserID, &t.Title, &dueAt, &status, &t.Priority,
		pq.Array(&t.Suggestions), pq.Array(&t.ComplementaryTasks), &t.CreatedAt, &completedAt)
	if err != nil {
		return model.Task{}, err
	}
	t.Status = model.TaskStatus(status)
	t.DueAt = timePtr(dueAt)
	t.CompletedAt = timePtr(completedAt)
	return t, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
