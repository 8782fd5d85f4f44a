package sqlite

import (
	"strings"

	repo "smart-task-assistant/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.listConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any, error) {
	var parts []string
	conditions, args := r.listConditions(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy, err := repo.OrderClause(opt.OrderBy)
	if err != nil {
		return "", nil, err
	}
	parts = append(parts, "ORDER BY "+orderBy+", rowid ASC")

	// SQLite only accepts OFFSET after LIMIT; -1 means no limit.
	if opt.Limit > 0 || opt.Offset > 0 {
		limit := opt.Limit
		if limit <= 0 {
			limit = -1
		}
		parts = append(parts, "LIMIT ?")
		args = append(args, limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args, nil
}

func (r *implRepository) listConditions(opt repo.ListTasksOptions) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	return conditions, args
}
