// Package logger provides centralized log.Logger construction with
// configurable level and output format (text or JSON).
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a *log.Logger configured with the given level and format.
// Level: "debug", "info", "warn", "error" (default: "info").
// Format: "json" or "text" (default: "text").
// Output goes to stderr.
func New(level, format string) *log.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter creates a *log.Logger writing to w.
// Useful for testing or redirecting output.
func NewWithWriter(w io.Writer, level, format string) *log.Logger {
	formatter := log.TextFormatter
	if format == "json" {
		formatter = log.JSONFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Formatter:       formatter,
		ReportTimestamp: true,
	})
}

// ParseLevel converts a level string to log.Level.
// Recognized values: "debug", "warn", "error". Everything else returns InfoLevel.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
