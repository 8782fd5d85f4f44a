package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-assistant/internal/recommender"
	"smart-task-assistant/internal/suggestion"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment.Name)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "first", cfg.Normalizer.AmbiguityPolicy)
	assert.Equal(t, 3, cfg.Recommender.TopN)
	assert.Equal(t, "user", cfg.Recommender.ComplementaryScope)
	assert.Equal(t, 128, cfg.Recommender.CacheSize)
	assert.Equal(t, []string{"keyword"}, cfg.Suggestion.Providers)
	assert.Equal(t, time.Second, cfg.Suggestion.RetryDelay)
	assert.Equal(t, 30*time.Second, cfg.Suggestion.MaxTotalTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data/tasks.db", cfg.Database.DSN)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
timezone: Asia/Ho_Chi_Minh
normalizer:
  ambiguity_policy: earliest
recommender:
  top_n: 5
  complementary_scope: global
database:
  driver: postgres
  dsn: ${TEST_TASKS_DSN}
`)
	t.Setenv("TEST_TASKS_DSN", "postgres://localhost/tasks?sslmode=disable")
	t.Setenv("SUGGESTION_MAX_ITEMS", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Timezone)
	assert.Equal(t, "earliest", cfg.Normalizer.AmbiguityPolicy)
	assert.Equal(t, 5, cfg.Recommender.TopN)
	assert.Equal(t, "global", cfg.Recommender.ComplementaryScope)
	assert.Equal(t, 2, cfg.Suggestion.MaxItems)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/tasks?sslmode=disable", cfg.Database.DSN)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"policy", "normalizer:\n  ambiguity_policy: latest\n", nil},
		{"scope", "recommender:\n  complementary_scope: team\n", recommender.ErrUnknownScope},
		{"top n", "recommender:\n  top_n: 0\n", nil},
		{"cache size", "recommender:\n  cache_size: -1\n", nil},
		{"driver", "database:\n  driver: mysql\n", nil},
		{"provider", "suggestion:\n  providers: [keyword, oracle]\n", suggestion.ErrUnknownProvider},
		{"timezone", "timezone: Mars/Olympus\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
