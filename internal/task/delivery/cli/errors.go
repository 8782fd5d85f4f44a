package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/pkg/response"
)

var errUnknownStatus = errors.New("unknown status")

// userErrors are shown verbatim; anything else is reported generically in JSON mode.
var userErrors = []error{
	task.ErrEmptyInput,
	task.ErrEmptyTitle,
	task.ErrMissingUser,
	task.ErrNoTitles,
	task.ErrTaskNotFound,
	repository.ErrFailedToLoad,
	errUnknownStatus,
}

func isKnown(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// fail writes the JSON error envelope when --json is set and hands err back to cobra.
func (a *App) fail(cmd *cobra.Command, err error) error {
	if a.asJSON {
		_ = response.Error(cmd.OutOrStdout(), err, isKnown(err))
	}
	return err
}
