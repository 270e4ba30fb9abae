package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New builds a logger from the string settings found in config files and
// flags. format "json" selects the JSON handler, anything else is text.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel falls back to info for anything it does not recognise.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return level
}

func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
