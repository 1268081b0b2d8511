// Package logger provides verbose logging for the sanctions-law CLI and
// server. Messages go to stderr so the MCP stdio channel on stdout stays
// clean. Debug, Info and Warn are printed only when verbose mode is enabled
// via the --verbose flag; Error is always printed.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	level             = new(slog.LevelVar)
	log               = newLogger(os.Stderr)
)

func init() {
	level.Set(slog.LevelError)
}

// newLogger builds a text logger without timestamps so output is stable.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelError)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(w)
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

// Info logs a formatted message at info level.
func Info(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

// Warn logs a formatted message at warn level.
func Warn(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

// Error logs a formatted message regardless of verbose mode.
func Error(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}

// Event logs a structured debug record with key/value attributes.
func Event(msg string, attrs ...any) {
	mu.RLock()
	l := log
	mu.RUnlock()
	l.Log(context.Background(), slog.LevelDebug, msg, attrs...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logf(lvl slog.Level, format string, args ...any) {
	mu.RLock()
	l := log
	mu.RUnlock()
	if !l.Enabled(context.Background(), lvl) {
		return
	}
	l.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}
