// Package logger provides diagnostic logging for linesift.
// Messages are written to stderr only when verbose mode is enabled via the
// hidden --verbose flag, so they never mix with matched lines on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log messages. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "linesift: ["+level+"] "+format+"\n", args...)
}

// Debug logs a detail of the scan pipeline.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info logs a notable event.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn logs a recoverable or reported failure.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}

// Section marks the start of a pipeline stage.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "linesift: === %s ===\n", name)
	}
}
