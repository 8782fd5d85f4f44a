package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"smart-task-assistant/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "debug console", cfg: log.ZapConfig{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON}},
		{name: "invalid level falls back", cfg: log.ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			assert.NotNil(t, l)
			assert.NotPanics(t, func() {
				l.Debugf(context.Background(), "value=%d", 1)
			})
		})
	}
}

func TestNop(t *testing.T) {
	l := log.NewNop()
	ctx := log.WithRequestID(context.Background(), "req-1")
	assert.NotPanics(t, func() {
		l.Info(ctx, "hello")
		l.Errorf(ctx, "failed: %v", "x")
	})
}
