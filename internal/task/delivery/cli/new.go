package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"smart-task-assistant/internal/task"
)

// DefaultUser is the user ID commands act for when --user and ASSISTANT_USER are unset.
const DefaultUser = "local"

// App holds the services and global flag values shared by every command.
type App struct {
	Tasks task.UseCase
	Now   func() time.Time // nil means time.Now; only used for relative due dates

	user   string
	asJSON bool
}

// NewRootCmd creates the top-level "assistant" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "assistant",
		Short:         "Turn free-text task descriptions into scheduled, prioritized tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&app.user, "user", "u", envOr("ASSISTANT_USER", DefaultUser), "user the command acts for")
	root.PersistentFlags().BoolVar(&app.asJSON, "json", false, "print a JSON envelope instead of text")

	root.AddCommand(
		newAddCmd(app),
		newPreviewCmd(app),
		newSimilarCmd(app),
		newComplementaryCmd(app),
		newListCmd(app),
		newOverviewCmd(app),
		newImportCmd(app),
		newCompleteCmd(app),
	)

	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
