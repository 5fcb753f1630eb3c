package observability

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// contextKey is the type for context keys
type contextKey string

const (
	// LoggerKey is the context key for the logger
	LoggerKey contextKey = "logger"
	// UnitKey is the context key for the compilation unit number
	UnitKey contextKey = "unit"
)

// NewLogger creates a text logger writing to output (stderr when nil)
func NewLogger(level logrus.Level, output io.Writer) *logrus.Logger {
	if output == nil {
		output = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(level)

	return logger
}

// ParseLevel parses a log level name, falling back to info
func ParseLevel(name string) logrus.Level {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *logrus.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// GetLogger retrieves the logger from context
func GetLogger(ctx context.Context) *logrus.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*logrus.Logger); ok {
		return logger
	}
	return NewLogger(logrus.InfoLevel, os.Stderr)
}

// WithUnit tags the context with the compilation unit number
func WithUnit(ctx context.Context, unit int) context.Context {
	return context.WithValue(ctx, UnitKey, unit)
}

// GetUnit retrieves the compilation unit number from context
func GetUnit(ctx context.Context) (int, bool) {
	unit, ok := ctx.Value(UnitKey).(int)
	return unit, ok
}

// FromContext returns an entry carrying the compilation unit from context
func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(GetLogger(ctx))
	if unit, ok := GetUnit(ctx); ok {
		entry = entry.WithField("unit", unit)
	}
	return entry
}
