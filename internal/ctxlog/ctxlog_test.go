package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("Returns embedded logger", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))
		ctx := WithLogger(context.Background(), logger)

		FromContext(ctx).Info("hello", "key", "value")

		require.Same(t, logger, FromContext(ctx))
		require.Contains(t, buf.String(), "key=value")
	})

	t.Run("Falls back to a discarding logger", func(t *testing.T) {
		t.Parallel()

		logger := FromContext(context.Background())

		require.NotNil(t, logger)
		require.False(t, logger.Enabled(context.Background(), slog.LevelError))
	})
}
