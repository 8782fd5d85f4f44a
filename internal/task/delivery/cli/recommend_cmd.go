package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/response"
)

func newSimilarCmd(app *App) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "similar <title>",
		Short: "List past task titles that read like the given one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Tasks.Similar(cmd.Context(), app.scope(), task.SimilarInput{Title: strings.Join(args, " "), TopN: top})
			if err != nil {
				return app.fail(cmd, err)
			}
			if app.asJSON {
				return response.OK(cmd.OutOrStdout(), titlesResp{Titles: nonNil(out.Titles)})
			}
			printTitles(cmd.OutOrStdout(), out.Titles, "No similar tasks.")
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 0, "number of titles (0 uses the configured default)")
	return cmd
}

func newComplementaryCmd(app *App) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:     "complementary <title>",
		Aliases: []string{"related"},
		Short:   "List titles that tend to accompany the given one",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Tasks.Complementary(cmd.Context(), app.scope(), task.ComplementaryInput{Title: strings.Join(args, " "), TopN: top})
			if err != nil {
				return app.fail(cmd, err)
			}
			if app.asJSON {
				return response.OK(cmd.OutOrStdout(), titlesResp{Titles: nonNil(out.Titles)})
			}
			printTitles(cmd.OutOrStdout(), out.Titles, "No related tasks.")
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 0, "number of titles (0 uses the configured default)")
	return cmd
}
