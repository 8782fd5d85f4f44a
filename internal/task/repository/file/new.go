package file

import (
	"fmt"

	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/pkg/log"
)

type implTitleSource struct {
	l log.Logger
}

// New creates a TitleSource reading YAML files from disk.
func New(l log.Logger) repository.TitleSource {
	return &implTitleSource{l: l}
}

func (r *implTitleSource) dsn(method string) string {
	return fmt.Sprintf("task/repository/file.%s", method)
}
