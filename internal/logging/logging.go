// Package logging provides the prefixed key=value logger used by the
// scan pipeline and the command-line harnesses.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes leveled, prefixed log lines with key=value context.
type Logger struct {
	logger  *log.Logger
	verbose bool
}

// New creates a logger writing to stdout with the given prefix.
func New(prefix string) *Logger {
	return NewWithWriter(prefix, os.Stdout)
}

// NewWithWriter creates a logger writing to w with the given prefix.
func NewWithWriter(prefix string, w io.Writer) *Logger {
	return &Logger{
		logger: log.New(w, fmt.Sprintf("[%s] ", prefix), log.LstdFlags),
	}
}

// SetVerbose enables Debug output.
func (l *Logger) SetVerbose(v bool) {
	l.verbose = v
}

// Info logs an informational message with key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.emit("INFO", msg, keysAndValues...)
}

// Warn logs a warning with key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.emit("WARN", msg, keysAndValues...)
}

// Error logs an error with key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.emit("ERROR", msg, keysAndValues...)
}

// Debug logs a debug message; dropped unless verbose is enabled.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	if !l.verbose {
		return
	}
	l.emit("DEBUG", msg, keysAndValues...)
}

func (l *Logger) emit(level, msg string, keysAndValues ...interface{}) {
	kv := ""
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		kv += fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	l.logger.Printf("[%s] %s%s", level, msg, kv)
}
