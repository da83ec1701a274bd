// Package logging builds the slog logger shared by the CLI commands.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a text logger writing to w. A silent logger only lets errors
// through; level is one of debug, info, warn or error and defaults to info.
func New(level string, silent bool, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if silent {
		opts.Level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to a slog level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
