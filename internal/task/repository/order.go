package repository

import "fmt"

// DefaultOrderBy is used when ListTasksOptions.OrderBy is empty.
const DefaultOrderBy = "created_at DESC"

var orderClauses = map[string]bool{
	"created_at DESC": true,
	"created_at ASC":  true,
	"due_at ASC":      true,
	"priority ASC":    true,
}

// OrderClause validates orderBy against the sortable columns.
func OrderClause(orderBy string) (string, error) {
	if orderBy == "" {
		return DefaultOrderBy, nil
	}
	if !orderClauses[orderBy] {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrderBy, orderBy)
	}
	return orderBy, nil
}
