package cli

import (
	"github.com/spf13/cobra"

	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/response"
)

func newImportCmd(app *App) *cobra.Command {
	var titles []string
	cmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Create tasks from a YAML list of titles",
		Long: `Create one task per title. The file is either a YAML sequence of strings
or a mapping with a "tasks" sequence. Repeat --title to import titles directly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := task.ImportInput{Titles: titles}
			if len(args) == 1 {
				in.Path = args[0]
			}
			out, err := app.Tasks.Import(cmd.Context(), app.scope(), in)
			if err != nil {
				return app.fail(cmd, err)
			}

			w := cmd.OutOrStdout()
			if app.asJSON {
				return response.OK(w, newImportResp(out))
			}
			green.Fprintf(w, "Imported %d task(s)\n", len(out.Tasks))
			now := app.now()
			for _, t := range out.Tasks {
				printTask(w, t, now)
			}
			for _, f := range out.Failures {
				red.Fprintf(w, "Failed %q: %v\n", f.Title, f.Err)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&titles, "title", nil, "title to import, repeatable; overrides the file")
	return cmd
}
