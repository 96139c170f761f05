// Package logging provides structured logging with request trace IDs.
package logging

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// NewTraceID generates a new trace ID.
func NewTraceID() string {
	return uuid.New().String()
}

// WithTraceID returns a context carrying the given trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceID extracts the trace ID from the context, if any.
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}

// Logger wraps logrus with service identity and trace propagation.
type Logger struct {
	log     *logrus.Logger
	service string
}

// New creates a logger for the named service. Unknown levels fall back
// to info.
func New(service, level string) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return &Logger{log: l, service: service}
}

// With returns an entry annotated with the service name and, when
// present, the trace ID from ctx.
func (l *Logger) With(ctx context.Context) *logrus.Entry {
	entry := l.log.WithField("service", l.service)
	if id := TraceID(ctx); id != "" {
		entry = entry.WithField("trace_id", id)
	}
	return entry
}

// Info logs an info message with trace context.
func (l *Logger) Info(ctx context.Context, msg string) {
	l.With(ctx).Info(msg)
}

// Error logs an error with trace context.
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.With(ctx).WithError(err).Error(msg)
}

// LogRequest logs a completed HTTP request.
func (l *Logger) LogRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	entry := l.With(ctx).WithFields(logrus.Fields{
		"method":      method,
		"path":        path,
		"status":      status,
		"duration_ms": duration.Milliseconds(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("request completed")
		return
	}
	entry.Info("request completed")
}
