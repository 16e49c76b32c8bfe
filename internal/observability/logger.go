package observability

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a structured key-value pair attached to log entries.
type Field struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// WithFields returns a context carrying fields in addition to the ones already
// present. Every entry logged with the context includes them.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

func getObservabilityFields(ctx context.Context) []Field {
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// Logger wraps zap and pulls request scoped fields out of the context.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger creates a JSON production logger.
func NewLogger() *Logger {
	zapLogger, _ := zap.NewProduction()
	return newLogger(zapLogger)
}

// NewDevelopmentLogger creates a human readable logger for local runs.
func NewDevelopmentLogger() *Logger {
	zapLogger, _ := zap.NewDevelopment()
	return newLogger(zapLogger)
}

// NewNopLogger discards everything.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

func newLogger(zapLogger *zap.Logger) *Logger {
	return &Logger{zapLogger: zapLogger.WithOptions(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)}
}

// with builds the zap fields for one entry. Later keys win over earlier ones,
// so call-site fields override context fields of the same name.
func (l *Logger) with(ctx context.Context, extra []Field) *zap.Logger {
	ctxFields := getObservabilityFields(ctx)
	if len(ctxFields) == 0 && len(extra) == 0 {
		return l.zapLogger
	}

	index := make(map[string]int, len(ctxFields)+len(extra))
	zapFields := make([]zapcore.Field, 0, len(ctxFields)+len(extra))
	for _, group := range [][]Field{ctxFields, extra} {
		for _, f := range group {
			if i, ok := index[f.Key]; ok {
				zapFields[i] = zap.Any(f.Key, f.Value)
				continue
			}
			index[f.Key] = len(zapFields)
			zapFields = append(zapFields, zap.Any(f.Key, f.Value))
		}
	}
	return l.zapLogger.With(zapFields...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Info(msg)
}

// InfoWithError logs an expected failure, such as a rejected request, at info level.
func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.with(ctx, nil).Info(msg, zap.Error(err))
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.with(ctx, nil).Error(msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Warn(msg)
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Debug(msg)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.with(ctx, nil).Fatal(msg, zap.Error(err))
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}
