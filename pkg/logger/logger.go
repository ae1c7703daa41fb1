package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "styling-advisor"

// New constructs the JSON slog logger shared by every component. It writes to stderr so CLI
// output on stdout stays clean.
func New() *slog.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter writes JSON records to w.
func NewWithWriter(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))})
	return slog.New(handler).With("service", serviceName)
}

func parseLevel(level string) slog.Leveler {
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
