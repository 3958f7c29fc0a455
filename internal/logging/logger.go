package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var base = newBase(os.Stdout)

// requestIDKey is the key used to store request ID in context
type requestIDKey struct{}

func newBase(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(out)
	return l
}

// Setup configures the process logger. Unknown levels fall back to info.
// Development output is human readable, everything else is JSON.
func Setup(level, env string) *logrus.Logger {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	if env == "development" {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{})
	}
	return base
}

// Base returns the process logger.
func Base() *logrus.Logger {
	return base
}

// SetOutput redirects the process logger, mainly for tests.
func SetOutput(out io.Writer) {
	base.SetOutput(out)
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from a standard context
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides structured logging bound to a request
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{entry: base.WithField("request_id", requestID)}
}

// Entry exposes the underlying logrus entry for callers that need extra fields.
func (l *Logger) Entry() *logrus.Entry {
	return l.entry
}

func (l *Logger) LogError(operation string, err error) {
	l.entry.WithFields(logrus.Fields{
		"operation": operation,
		"error":     err,
	}).Error("operation failed")
}

func (l *Logger) LogInfo(operation, message string) {
	l.entry.WithField("operation", operation).Info(message)
}

func (l *Logger) LogWarn(operation, message string) {
	l.entry.WithField("operation", operation).Warn(message)
}
