package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// parseLevel accepts the slog level names, case-insensitively.
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", s)
	}
	return level, nil
}

// newLogger creates an isolated slog.Logger; the global logger is untouched.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level, err := parseLevel(levelStr)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
