package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/response"
)

func newListCmd(app *App) *cobra.Command {
	var (
		status string
		limit  int
		offset int
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStatus(status)
			if err != nil {
				return app.fail(cmd, err)
			}
			out, err := app.Tasks.List(cmd.Context(), app.scope(), task.ListInput{Status: st, Limit: limit, Offset: offset})
			if err != nil {
				return app.fail(cmd, err)
			}

			w := cmd.OutOrStdout()
			if app.asJSON {
				return response.OK(w, listResp{
					Tasks:  newTaskListResp(out.Tasks),
					Total:  out.Total,
					Limit:  out.Limit,
					Offset: out.Offset,
				})
			}
			if len(out.Tasks) == 0 {
				faint.Fprintln(w, "No tasks.")
				return nil
			}
			now := app.now()
			for _, t := range out.Tasks {
				printTask(w, t, now)
			}
			faint.Fprintf(w, "%d of %d\n", len(out.Tasks), out.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status: pending, urgent or completed")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of tasks (0 lists all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of tasks to skip")
	return cmd
}

func newOverviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Summarize task counts and the last week of activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Tasks.Overview(cmd.Context(), app.scope())
			if err != nil {
				return app.fail(cmd, err)
			}
			if app.asJSON {
				return response.OK(cmd.OutOrStdout(), newOverviewResp(out))
			}
			printOverview(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func parseStatus(s string) (model.TaskStatus, error) {
	switch st := model.TaskStatus(s); st {
	case "", model.StatusPending, model.StatusUrgent, model.StatusCompleted:
		return st, nil
	default:
		return "", fmt.Errorf("%w %q", errUnknownStatus, s)
	}
}
