package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "smart-task-assistant/internal/task/repository"
	"smart-task-assistant/pkg/log"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "titles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTitles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "sequence",
			content: "- Write blog on machine learning trends\n- Research deep learning techniques\n",
			want:    []string{"Write blog on machine learning trends", "Research deep learning techniques"},
		},
		{
			name:    "mapping",
			content: "tasks:\n  - Organize AI study notes\n  - \"  \"\n  - Review past project documentation\n",
			want:    []string{"Organize AI study notes", "Review past project documentation"},
		},
		{
			name:    "empty file",
			content: "",
			want:    []string{},
		},
	}

	src := New(log.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.LoadTitles(context.Background(), writeFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadTitles_Errors(t *testing.T) {
	src := New(log.NewNop())
	ctx := context.Background()

	_, err := src.LoadTitles(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, repo.ErrFailedToLoad)

	_, err = src.LoadTitles(ctx, writeFile(t, "just a scalar\n"))
	assert.ErrorIs(t, err, repo.ErrFailedToLoad)

	_, err = src.LoadTitles(ctx, writeFile(t, "- [unclosed\n"))
	assert.ErrorIs(t, err, repo.ErrFailedToLoad)
}
