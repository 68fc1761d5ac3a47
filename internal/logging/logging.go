// Package logging configures the application-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// Init initializes the default slog logger with the specified level and
// format. level is one of "debug", "info", "warn", "error" (defaults to
// "info"); format is "json" or "text" (defaults to "text"). Diagnostics go
// to stderr so stdout stays reserved for the per-app patch summary.
func Init(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
