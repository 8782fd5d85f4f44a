package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToGet    = errors.New("failed to get task")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToUpdate = errors.New("failed to update task")
	ErrFailedToLoad   = errors.New("failed to load titles")
	ErrInvalidOrderBy = errors.New("unsupported order by")
)
