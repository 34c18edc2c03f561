package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	Init()
	ctx := context.Background()

	t.Run("Should start at debug", func(t *testing.T) {
		assert.True(t, Log.Enabled(ctx, slog.LevelDebug))
	})

	t.Run("Should raise the minimum level", func(t *testing.T) {
		SetLevel("error")
		assert.False(t, Log.Enabled(ctx, slog.LevelInfo))
		assert.True(t, Log.Enabled(ctx, slog.LevelError))
	})

	t.Run("Should ignore unknown names", func(t *testing.T) {
		SetLevel("error")
		SetLevel("loud")
		assert.False(t, Log.Enabled(ctx, slog.LevelInfo))
	})

	t.Run("Should be case-insensitive", func(t *testing.T) {
		SetLevel("DEBUG")
		assert.True(t, Log.Enabled(ctx, slog.LevelDebug))
	})
}
