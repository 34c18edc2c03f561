package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// level is shared with the handler so SetLevel takes effect after Init.
var level = new(slog.LevelVar)

func Init() {
	level.Set(slog.LevelDebug)
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}

// SetLevel adjusts the minimum level by name. Unknown names keep the
// current level.
func SetLevel(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	}
}
