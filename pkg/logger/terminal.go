package logger

import (
	"log/slog"
	"os"
)

// NewTerminalHandler writes human-readable log lines to stderr, keeping
// stdout free for the interactive menu.
func NewTerminalHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
}
