// Package logger provides the leveled logging interface used across
// octobatch components. Implementations may log to console, files, or
// discard output entirely.
package logger

import (
	"fmt"
	"log"
)

// Logger defines the interface for leveled logging across all octobatch
// components.
type Logger interface {
	// Debug logs a verbose diagnostic message. Suppressed unless the
	// logger was created with debug output enabled.
	Debug(format string, args ...interface{})

	// Info logs an informational message (e.g., "Profile #3 created").
	Info(format string, args ...interface{})

	// Warning logs a warning message (e.g., "Approaching rate limit").
	Warning(format string, args ...interface{})

	// Error logs an error message.
	Error(format string, args ...interface{})
}

// StandardLogger wraps the stdlib *log.Logger for console/file output.
type StandardLogger struct {
	logger *log.Logger
	debug  bool
}

// NewStandardLogger creates a logger that wraps the given *log.Logger.
// Debug messages are emitted only when debug is true.
func NewStandardLogger(l *log.Logger, debug bool) *StandardLogger {
	return &StandardLogger{logger: l, debug: debug}
}

// Debug logs a diagnostic message with [DEBUG] prefix when enabled.
func (s *StandardLogger) Debug(format string, args ...interface{}) {
	if !s.debug {
		return
	}
	s.logger.Printf("[DEBUG] "+format, args...)
}

// Info logs an informational message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a warning message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs an error message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging should be disabled.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(format string, args ...interface{}) {}

// Info discards the message.
func (n *NopLogger) Info(format string, args ...interface{}) {}

// Warning discards the message.
func (n *NopLogger) Warning(format string, args ...interface{}) {}

// Error discards the message.
func (n *NopLogger) Error(format string, args ...interface{}) {}

// Recorder implements Logger for testing purposes.
// It records all formatted log calls for verification in tests.
type Recorder struct {
	DebugCalls   []string
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
}

// NewRecorder creates a new Recorder for testing.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Debug records the formatted message.
func (r *Recorder) Debug(format string, args ...interface{}) {
	r.DebugCalls = append(r.DebugCalls, fmt.Sprintf(format, args...))
}

// Info records the formatted message.
func (r *Recorder) Info(format string, args ...interface{}) {
	r.InfoCalls = append(r.InfoCalls, fmt.Sprintf(format, args...))
}

// Warning records the formatted message.
func (r *Recorder) Warning(format string, args ...interface{}) {
	r.WarningCalls = append(r.WarningCalls, fmt.Sprintf(format, args...))
}

// Error records the formatted message.
func (r *Recorder) Error(format string, args ...interface{}) {
	r.ErrorCalls = append(r.ErrorCalls, fmt.Sprintf(format, args...))
}

// Ensure implementations satisfy the Logger interface.
var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
	_ Logger = (*Recorder)(nil)
)
