package postgre

import (
	"fmt"
	"strings"

	repo "smart-task-assistant/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args, _ := r.listConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any, error) {
	var parts []string
	conditions, args, idx := r.listConditions(opt)

	// Filters
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting
	orderBy, err := repo.OrderClause(opt.OrderBy)
	if err != nil {
		return "", nil, err
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s, seq ASC", orderBy))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args, nil
}

// listConditions returns the filters shared by count and list plus the next
// placeholder index.
func (r *implRepository) listConditions(opt repo.ListTasksOptions) ([]string, []any, int) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, string(opt.Status))
		idx++
	}
	return conditions, args, idx
}
