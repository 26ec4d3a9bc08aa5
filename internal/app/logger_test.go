package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		level      string
		format     string
		wantLevel  slog.Level
		wantPrefix string
	}{
		{"Debug text", "debug", "text", slog.LevelDebug, "time="},
		{"Warn json", "warn", "json", slog.LevelWarn, "{"},
		{"Unknown level", "loud", "text", slog.LevelInfo, "time="},
		{"Unknown format", "error", "yaml", slog.LevelError, "time="},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			logger := newLogger(tc.level, tc.format, buf)

			assert.True(t, logger.Enabled(context.Background(), tc.wantLevel))
			assert.False(t, logger.Enabled(context.Background(), tc.wantLevel-1))

			logger.Log(context.Background(), tc.wantLevel, "probe")
			assert.Contains(t, buf.String(), "probe")
			assert.Equal(t, tc.wantPrefix, buf.String()[:len(tc.wantPrefix)])
		})
	}
}
