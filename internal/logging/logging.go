// Package logging configures the slog default logger for the tools in
// cmd/. Library packages never log; diagnostics stay at the binaries.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs a handler on slog's default logger. Unknown level names
// fall back to info, unknown formats to human-readable text. Output goes
// to stderr so conversion results on stdout stay machine-readable.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
