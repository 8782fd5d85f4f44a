package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/response"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "add <text>",
		Aliases: []string{"create"},
		Short:   "Create a task from a free-text description",
		Example: `  assistant add "Submit report by Friday 5pm"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Tasks.Create(cmd.Context(), app.scope(), task.CreateInput{Text: strings.Join(args, " ")})
			if err != nil {
				return app.fail(cmd, err)
			}
			w := cmd.OutOrStdout()
			if app.asJSON {
				return response.OK(w, createResp{Task: newTaskResp(out.Task), Enrichment: newEnrichmentResp(out.Enrichment)})
			}
			green.Fprintf(w, "Created %s\n", out.Task.ID)
			printEnrichment(w, out.Enrichment, app.now())
			return nil
		},
	}
}

func newPreviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "preview <text>",
		Aliases: []string{"parse"},
		Short:   "Show how a description would be enriched without storing it",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Tasks.Preview(cmd.Context(), app.scope(), task.CreateInput{Text: strings.Join(args, " ")})
			if err != nil {
				return app.fail(cmd, err)
			}
			w := cmd.OutOrStdout()
			if app.asJSON {
				return response.OK(w, newEnrichmentResp(out.Enrichment))
			}
			printEnrichment(w, out.Enrichment, app.now())
			return nil
		},
	}
}

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task as completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Tasks.Complete(cmd.Context(), app.scope(), task.CompleteInput{ID: args[0]})
			if err != nil {
				return app.fail(cmd, err)
			}
			w := cmd.OutOrStdout()
			if app.asJSON {
				return response.OK(w, newTaskResp(out.Task))
			}
			green.Fprintf(w, "Completed %q\n", out.Task.Title)
			return nil
		},
	}
}

func (a *App) scope() model.Scope {
	return model.Scope{UserID: strings.TrimSpace(a.user)}
}
