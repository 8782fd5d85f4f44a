package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"smart-task-assistant/internal/model"
	repo "smart-task-assistant/internal/task/repository"
)

const taskColumns = `id, user_id, title, due_at, status, priority, suggestions, complementary_tasks, created_at, completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	suggestions, err := encodeList(opt.Suggestions)
	if err != nil {
		r.l.Errorf(ctx, "%s encode suggestions: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	complementary, err := encodeList(opt.ComplementaryTasks)
	if err != nil {
		r.l.Errorf(ctx, "%s encode complementary: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	id := uuid.NewString()
	const query = `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`

	_, err = r.db.ExecContext(ctx, query,
		id, opt.UserID, opt.Title, formatNullTime(opt.DueAt), string(opt.Status), opt.Priority,
		suggestions, complementary, formatTime(opt.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
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
	countMods, countArgs := r.buildCountQuery(opt)
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

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
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateStatus sets the status and completion time of a Task.
// Returns zero-value Task when the ID does not exist.
func (r *implRepository) UpdateStatus(ctx context.Context, opt repo.UpdateStatusOptions) (model.Task, error) {
	const query = `UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, string(opt.Status), formatNullTime(opt.CompletedAt), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// ListTitles returns a user's titles, oldest first.
func (r *implRepository) ListTitles(ctx context.Context, userID string) ([]string, error) {
	const query = `SELECT title FROM tasks WHERE user_id = ? ORDER BY created_at ASC, rowid ASC`

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
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTitles"), err)
		return nil, repo.ErrFailedToList
	}
	return titles, nil
}

// ListOccurrences returns every (user, title) pair, oldest first.
func (r *implRepository) ListOccurrences(ctx context.Context) ([]repo.Occurrence, error) {
	const query = `SELECT user_id, title FROM tasks ORDER BY created_at ASC, rowid ASC`

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
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListOccurrences"), err)
		return nil, repo.ErrFailedToList
	}
	return occ, nil
}

func (r *implRepository) scanTask(s rowScanner) (model.Task, error) {
	var (
		t                          model.Task
		status                     string
		dueAt, completedAt         sql.NullString
		createdAt                  string
		suggestions, complementary string
	)
	if err := s.Scan(&t.ID, &t.UserID, &t.Title, &dueAt, &status, &t.Priority,
		&suggestions, &complementary, &createdAt, &completedAt); err != nil {
		return model.Task{}, err
	}
	t.Status = model.TaskStatus(status)

	var err error
	if t.DueAt, err = parseNullTime(dueAt); err != nil {
		return model.Task{}, fmt.Errorf("due_at: %w", err)
	}
	if t.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return model.Task{}, fmt.Errorf("completed_at: %w", err)
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Task{}, fmt.Errorf("created_at: %w", err)
	}
	if t.Suggestions, err = decodeList(suggestions); err != nil {
		return model.Task{}, fmt.Errorf("suggestions: %w", err)
	}
	if t.ComplementaryTasks, err = decodeList(complementary); err != nil {
		return model.Task{}, fmt.Errorf("complementary_tasks: %w", err)
	}
	return t, nil
}
