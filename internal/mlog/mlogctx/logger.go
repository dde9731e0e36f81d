// Package mlogctx provides the process-wide structured logger, grounded on
// the teacher's pkg/logger: a log/slog.TextHandler selected by level string,
// installed as both the package-global and slog default.
package mlogctx

import (
	"fmt"
	"log/slog"
	"os"
)

var globalLogger *slog.Logger

// InitLogger installs a text-handler slog.Logger at the given level
// ("debug", "info", "warn", "error") as both the package and slog default.
func InitLogger(level string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
	return nil
}

// GetLogger returns the installed logger, or slog.Default() if InitLogger
// has not been called yet.
func GetLogger() *slog.Logger {
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger
}
