// Package observability provides logging and metrics hooks for the isminet
// client.
//
// The Logger and MetricsRecorder interfaces let callers plug in their own
// implementations; when none is provided the client uses no-op versions with
// zero overhead. NewLogger builds a ready-made structured logger honoring the
// process logging settings.
package observability

import "time"

// Field is a structured logging key-value pair.
type Field struct {
	Key   string
	Value any
}

// Logger is a leveled structured logger.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...Field)

	// With returns a logger with the given fields pre-populated.
	With(fields ...Field) Logger
}

type noopLogger struct{}

// NoopLogger returns a logger that discards everything. It is the default
// when no logger is configured.
//
//nolint:ireturn // factory returns the interface for dependency injection
func NoopLogger() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(string, ...Field) {}
func (l *noopLogger) Info(string, ...Field)  {}
func (l *noopLogger) Warn(string, ...Field)  {}
func (l *noopLogger) Error(string, ...Field) {}

//nolint:ireturn // must return the interface to satisfy Logger
func (l *noopLogger) With(...Field) Logger { return l }

// MetricsRecorder records client metrics.
type MetricsRecorder interface {
	// RecordHTTPRequest records a completed HTTP request.
	RecordHTTPRequest(method, path string, statusCode int, duration time.Duration)

	// RecordRetry records a retry attempt against an endpoint.
	RecordRetry(attempt int, endpoint string)

	// RecordRateLimit records a rate-limit wait.
	RecordRateLimit(endpoint string, wait time.Duration)

	// RecordError records an error occurrence by operation and type.
	RecordError(operation, errorType string)
}

type noopMetricsRecorder struct{}

// NoopMetricsRecorder returns a recorder that discards everything.
func NoopMetricsRecorder() MetricsRecorder {
	return &noopMetricsRecorder{}
}

func (m *noopMetricsRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}
func (m *noopMetricsRecorder) RecordRetry(int, string)                              {}
func (m *noopMetricsRecorder) RecordRateLimit(string, time.Duration)                {}
func (m *noopMetricsRecorder) RecordError(string, string)                           {}
