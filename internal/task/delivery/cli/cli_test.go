package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-assistant/internal/normalizer"
	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/recommender"
	"smart-task-assistant/internal/suggestion"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository/file"
	"smart-task-assistant/internal/task/repository/sqlite"
	"smart-task-assistant/internal/task/usecase"
	"smart-task-assistant/pkg/datemath"
	"smart-task-assistant/pkg/log"
	"smart-task-assistant/pkg/sentiment"
)

var testNow = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB.
func testApp(t *testing.T) *App {
	t.Helper()
	ctx := context.Background()
	l := log.NewNop()

	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	norm, err := normalizer.New(parser, normalizer.PolicyFirst)
	require.NoError(t, err)
	cache, err := recommender.NewCache(l, 8)
	require.NoError(t, err)

	uc := usecase.New(
		l,
		sqlite.New(db, l),
		file.New(l),
		norm,
		priority.New(sentiment.NewLexicon(nil)),
		cache,
		suggestion.NewCascade(l, suggestion.Config{MaxItems: 5}),
		usecase.Config{Location: time.UTC, Now: func() time.Time { return testNow }},
	)
	return &App{Tasks: uc, Now: func() time.Time { return testNow }}
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, out string, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env), out)
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestPreview_DoesNotStore(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "preview", "Submit", "report", "tomorrow")
	require.NoError(t, err)
	assert.Contains(t, out, "Submit report")
	assert.Contains(t, out, "Sat 2025-01-11 00:00 (15 hours from now)")
	assert.Contains(t, out, "[P2 high]")
	assert.Contains(t, out, "- Gather data")
	assert.Contains(t, out, "1. Break down into subtasks")

	out, err = executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks.")
}

func TestAdd_JSON(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--json", "add", "Submit report tomorrow")
	require.NoError(t, err)

	var got createResp
	env := decode(t, out, &got)
	assert.Equal(t, 0, env.ErrorCode)
	assert.NotEmpty(t, got.Task.ID)
	assert.Equal(t, "local", got.Task.UserID)
	assert.Equal(t, "Submit report", got.Task.Title)
	assert.Equal(t, "urgent", got.Task.Status)
	assert.Equal(t, 2, got.Task.Priority)
	assert.Equal(t, "high", got.Task.PriorityLabel)
	assert.Equal(t, "single", got.Enrichment.Resolution)
	assert.Equal(t, []string{"Gather data", "Draft report", "Review with team"}, got.Task.Suggestions)
	assert.Equal(t, []string{}, got.Enrichment.SimilarTasks)
}

func TestAdd_EmptyInput(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--json", "add", "   ")
	assert.ErrorIs(t, err, task.ErrEmptyInput)

	env := decode(t, out, nil)
	assert.Equal(t, 1, env.ErrorCode)
	assert.Equal(t, task.ErrEmptyInput.Error(), env.Message)
}

func TestMissingUser(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "--user", " ", "list")
	assert.ErrorIs(t, err, task.ErrMissingUser)
}

func TestList_ScopedByUser(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "--user", "alice", "add", "Plan vacation")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "--user", "bob", "add", "Buy groceries")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "--user", "alice", "--json", "list")
	require.NoError(t, err)

	var got listResp
	decode(t, out, &got)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, "Plan vacation", got.Tasks[0].Title)
	assert.Nil(t, got.Tasks[0].DueAt)
	assert.Equal(t, "low", got.Tasks[0].PriorityLabel)
}

func TestList_UnknownStatus(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--json", "list", "--status", "later")
	assert.ErrorIs(t, err, errUnknownStatus)
	assert.Equal(t, 1, decode(t, out, nil).ErrorCode)
}

func TestSimilar(t *testing.T) {
	app := testApp(t)
	for _, text := range []string{"Write quarterly report", "Buy milk"} {
		_, err := executeCmd(t, app, "add", text)
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "similar", "--top", "1", "quarterly", "report")
	require.NoError(t, err)
	assert.Equal(t, "1. Write quarterly report\n", out)

	out, err = executeCmd(t, app, "--json", "similar", "anything")
	require.NoError(t, err)
	var got titlesResp
	decode(t, out, &got)
	assert.Len(t, got.Titles, 2)
}

func TestSimilar_EmptyHistory(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "similar", "report")
	require.NoError(t, err)
	assert.Contains(t, out, "No similar tasks.")
}

func TestComplementary(t *testing.T) {
	app := testApp(t)
	for _, text := range []string{"Book flight", "Reserve hotel"} {
		_, err := executeCmd(t, app, "add", text)
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "--json", "related", "Book flight")
	require.NoError(t, err)
	var got titlesResp
	decode(t, out, &got)
	assert.Equal(t, []string{"Reserve hotel"}, got.Titles)
}

func TestComplete(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--json", "add", "Send email to Bob")
	require.NoError(t, err)
	var created createResp
	decode(t, out, &created)

	out, err = executeCmd(t, app, "complete", created.Task.ID)
	require.NoError(t, err)
	assert.Contains(t, out, `Completed "Send email to Bob"`)

	out, err = executeCmd(t, app, "--json", "list", "--status", "completed")
	require.NoError(t, err)
	var got listResp
	decode(t, out, &got)
	require.Len(t, got.Tasks, 1)
	require.NotNil(t, got.Tasks[0].CompletedAt)
}

func TestComplete_NotFound(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--json", "done", "missing-id")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	assert.Equal(t, task.ErrTaskNotFound.Error(), decode(t, out, nil).Message)
}

func TestImport_File(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "titles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - Prepare meeting agenda\n  - Write report\n"), 0o644))

	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 task(s)")

	out, err = executeCmd(t, app, "--json", "overview")
	require.NoError(t, err)
	var got overviewResp
	decode(t, out, &got)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 2, got.Pending)
	require.Len(t, got.Weekly, 7)
	assert.Equal(t, "2025-01-10", got.Weekly[6].Date)
	assert.Equal(t, 2, got.Weekly[6].Count)
}

func TestImport_Titles(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--json", "import", "--title", "Buy milk", "--title", "Call mom")
	require.NoError(t, err)
	var got importResp
	decode(t, out, &got)
	assert.Len(t, got.Tasks, 2)
	assert.Empty(t, got.Failures)
}

func TestImport_Nothing(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "import")
	assert.ErrorIs(t, err, task.ErrNoTitles)
}

func TestOverview_Text(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "overview")
	require.NoError(t, err)
	assert.Contains(t, out, "Total:")
	assert.Contains(t, out, "Last 7 days:")
}
