package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/normalizer"
	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/recommender"
	"smart-task-assistant/internal/suggestion"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/internal/task/usecase"
	"smart-task-assistant/pkg/datemath"
	"smart-task-assistant/pkg/sentiment"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errDB = errors.New("db error")

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	mu        sync.Mutex
	tasks     []model.Task
	seq       int
	failWrite bool
	failRead  bool
	failTitle string // CreateTask fails for this title only
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite || (m.failTitle != "" && opt.Title == m.failTitle) {
		return model.Task{}, errDB
	}
	m.seq++
	t := model.Task{
		ID:                 fmt.Sprintf("task-%d", m.seq),
		UserID:             opt.UserID,
		Title:              opt.Title,
		DueAt:              opt.DueAt,
		Status:             opt.Status,
		Priority:           opt.Priority,
		Suggestions:        opt.Suggestions,
		ComplementaryTasks: opt.ComplementaryTasks,
		CreatedAt:          opt.CreatedAt,
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failRead {
		return model.Task{}, errDB
	}
	for _, t := range m.tasks {
		if (opt.ID == "" || t.ID == opt.ID) && (opt.UserID == "" || t.UserID == opt.UserID) {
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failRead {
		return nil, 0, errDB
	}
	var out []model.Task
	for _, t := range m.tasks {
		if (opt.UserID == "" || t.UserID == opt.UserID) && (opt.Status == "" || t.Status == opt.Status) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if opt.Offset > 0 {
		if opt.Offset >= len(out) {
			out = nil
		} else {
			out = out[opt.Offset:]
		}
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, total, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, opt repository.UpdateStatusOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite {
		return model.Task{}, errDB
	}
	for i := range m.tasks {
		if m.tasks[i].ID == opt.ID {
			m.tasks[i].Status = opt.Status
			m.tasks[i].CompletedAt = opt.CompletedAt
			return m.tasks[i], nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) ListTitles(ctx context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failRead {
		return nil, errDB
	}
	titles := []string{}
	for _, t := range m.tasks {
		if t.UserID == userID {
			titles = append(titles, t.Title)
		}
	}
	return titles, nil
}

func (m *mockRepo) ListOccurrences(ctx context.Context) ([]repository.Occurrence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failRead {
		return nil, errDB
	}
	occ := []repository.Occurrence{}
	for _, t := range m.tasks {
		occ = append(occ, repository.Occurrence{UserID: t.UserID, Title: t.Title})
	}
	return occ, nil
}

func (m *mockRepo) seed(userID, title string, status model.TaskStatus, createdAt time.Time, dueAt *time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.tasks = append(m.tasks, model.Task{
		ID:        fmt.Sprintf("seed-%d", m.seq),
		UserID:    userID,
		Title:     title,
		Status:    status,
		Priority:  4,
		CreatedAt: createdAt,
		DueAt:     dueAt,
	})
}

// countingProvider returns fixed subtasks and counts the calls.
type countingProvider struct {
	subtasks []string
	calls    int
}

func (p *countingProvider) Subtasks(ctx context.Context, title string) ([]string, error) {
	p.calls++
	return p.subtasks, nil
}

func (p *countingProvider) Complementary(ctx context.Context, title string) ([]string, error) {
	return nil, suggestion.ErrNoSuggestions
}

func (p *countingProvider) Name() string { return "counting" }

type mockTitleSource struct {
	titles []string
	err    error
}

func (m *mockTitleSource) LoadTitles(ctx context.Context, path string) ([]string, error) {
	return m.titles, m.err
}

// fixture

// Friday 2025-01-10 09:00 UTC.
var testNow = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uc     task.UseCase
	repo   *mockRepo
	titles *mockTitleSource
}

func newFixture(t *testing.T, scope recommender.Scope, polarity float64) fixture {
	t.Helper()
	return newFixtureWith(t, scope, polarity, suggestion.NewCascade(&mockLogger{}, suggestion.Config{MaxItems: 5}))
}

func newFixtureWith(t *testing.T, scope recommender.Scope, polarity float64, suggester *suggestion.Cascade) fixture {
	t.Helper()

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	norm, err := normalizer.New(parser, normalizer.PolicyFirst)
	require.NoError(t, err)
	cache, err := recommender.NewCache(&mockLogger{}, 8)
	require.NoError(t, err)

	repo := &mockRepo{}
	titles := &mockTitleSource{}
	uc := usecase.New(
		&mockLogger{},
		repo,
		titles,
		norm,
		priority.New(sentiment.ScorerFunc(func(string) float64 { return polarity })),
		cache,
		suggester,
		usecase.Config{
			TopN:     3,
			Scope:    scope,
			Location: time.UTC,
			Now:      func() time.Time { return testNow },
		},
	)
	return fixture{uc: uc, repo: repo, titles: titles}
}
