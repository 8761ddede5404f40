// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance.
func New() ports.Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination.
// This is thread-safe and updates the underlying slog handler.
// It preserves the current JSON mode setting.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = NewPrettyHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	l.logger = slog.New(handler)
}

// SetJSON switches between JSON and pretty logging.
// When enabled, logs are output as JSON. When disabled, pretty-printed logs are used.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable

	w := l.output
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	if enable {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = NewPrettyHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// ErrorEntry is one layer of an error chain prepared for rendering.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the error chain. zerr errors contribute their raw
// message and metadata layer by layer; the first non-zerr error contributes
// its full Error() text and terminates the walk, since standard errors embed
// their causes in that text already.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	current := err

	for current != nil {
		zErr, ok := current.(*zerr.Error)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}
		entries = append(entries, ErrorEntry{
			Message:  zErr.Message(),
			Metadata: zErr.Metadata(),
		})
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders the chain hierarchically: the main error first,
// its causes indented under a "Caused by:" header, metadata keys sorted.
func formatErrorEntries(entries []ErrorEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var lines []string

	mainLines := strings.Split(entries[0].Message, "\n")
	lines = append(lines, "Error: "+mainLines[0])
	for _, line := range mainLines[1:] {
		lines = append(lines, "       "+line)
	}
	lines = append(lines, metadataLines(entries[0].Metadata, "       ")...)

	for i, entry := range entries[1:] {
		if i == 0 {
			lines = append(lines, "", "  Caused by:")
		}
		causeLines := strings.Split(entry.Message, "\n")
		lines = append(lines, "    → "+causeLines[0])
		for _, line := range causeLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, metadataLines(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func metadataLines(md map[string]any, indent string) []string {
	if len(md) == 0 {
		return nil
	}
	out := make([]string, 0, len(md))
	for _, k := range slices.Sorted(maps.Keys(md)) {
		out = append(out, fmt.Sprintf("%s%s: %v", indent, k, md[k]))
	}
	return out
}
