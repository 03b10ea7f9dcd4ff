// Package logger provides diagnostic logging for vkmissing.
//
// Diagnostics always go to stderr; stdout is reserved for the report.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Debugf logs a formatted message only shown in verbose mode.
	Debugf(format string, args ...interface{})
	// Warnf logs a formatted warning.
	Warnf(format string, args ...interface{})
	// Sync flushes any buffered log entries.
	Sync() error
}

// zapLogger adapts a zap sugared logger to Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// NewWriterLogger creates a console logger writing to the given syncer.
func NewWriterLogger(ws zapcore.WriteSyncer, verbose bool) Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return newLogger(ws, level)
}

func newLogger(ws zapcore.WriteSyncer, level zapcore.Level) Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ws, zap.NewAtomicLevelAt(level))
	return &zapLogger{sugar: zap.New(core).Sugar()}
}

// Debugf logs a formatted debug message.
func (l *zapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Warnf logs a formatted warning.
func (l *zapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Sync flushes any buffered log entries.
func (l *zapLogger) Sync() error {
	return l.sugar.Sync()
}
