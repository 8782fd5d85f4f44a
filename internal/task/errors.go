package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrEmptyTitle   = errors.New("title is empty")
	ErrMissingUser  = errors.New("user id is required")
	ErrNoTitles     = errors.New("nothing to import")
	ErrTaskNotFound = errors.New("task not found")
)
