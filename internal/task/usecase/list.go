package usecase

import (
	"context"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
)

// List returns a paginated list of the user's tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	ctx, err := uc.begin(ctx, sc)
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID: sc.UserID,
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Overview counts the user's tasks by state and buckets the last week of
// creations by calendar day.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope) (task.OverviewOutput, error) {
	ctx, err := uc.begin(ctx, sc)
	if err != nil {
		return task.OverviewOutput{}, err
	}

	tasks, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overview ListTasks: %v", err)
		return task.OverviewOutput{}, err
	}

	now := uc.now()
	out := task.OverviewOutput{Total: len(tasks), AsOf: now}

	index := make(map[string]int, overviewDays)
	out.Weekly = make([]task.DayCount, overviewDays)
	for i := range out.Weekly {
		day := now.AddDate(0, 0, i-(overviewDays-1)).Format(dayLayout)
		out.Weekly[i] = task.DayCount{Date: day}
		index[day] = i
	}

	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			out.Completed++
		}
		if t.IsOverdue(now) {
			out.Overdue++
		}
		day := t.CreatedAt.In(uc.loc).Format(dayLayout)
		if i, ok := index[day]; ok {
			out.Weekly[i].Count++
		}
	}
	out.Pending = out.Total - out.Completed

	return out, nil
}
