package logging

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogging installs a text handler writing to w as the default slog
// logger. Unknown levels fall back to info.
func SetupLogging(w io.Writer, level string) {
	defaultLogger := slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level(level)}),
	)

	slog.SetDefault(defaultLogger)
}

// Level maps a configured level name to its slog level.
func Level(level string) slog.Level {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	}

	return slog.LevelInfo
}
