package usecase

import (
	"context"
	"strings"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
)

// Import creates one task per title. Titles come from input.Titles or, when
// that is empty, from the YAML file at input.Path. A failing title is recorded
// and the rest still import.
func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, input task.ImportInput) (task.ImportOutput, error) {
	ctx, err := uc.begin(ctx, sc)
	if err != nil {
		return task.ImportOutput{}, err
	}

	titles := input.Titles
	if len(titles) == 0 && input.Path != "" {
		titles, err = uc.titles.LoadTitles(ctx, input.Path)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Import LoadTitles: %v", err)
			return task.ImportOutput{}, err
		}
	}

	var out task.ImportOutput
	for _, title := range titles {
		if strings.TrimSpace(title) == "" {
			continue
		}
		created, err := uc.Create(ctx, sc, task.CreateInput{Text: title})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Import: failed to create %q: %v", title, err)
			out.Failures = append(out.Failures, task.ImportFailure{Title: title, Err: err})
			continue
		}
		out.Tasks = append(out.Tasks, created.Task)
	}

	if len(out.Tasks) == 0 && len(out.Failures) == 0 {
		return task.ImportOutput{}, task.ErrNoTitles
	}

	uc.l.Infof(ctx, "Import: user=%s created=%d failed=%d", sc.UserID, len(out.Tasks), len(out.Failures))
	return out, nil
}
