package regcomb

import (
	"fmt"
	"io"
	"os"
)

// Logger writes trace output for matches run with the Debug option.
// A nil *Logger is valid and discards everything.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a logger writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if the logger is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "[regcomb] "+format+"\n", args...)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}
