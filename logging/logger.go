// Package logging provides the zap-backed implementation of the harness's debug logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements framework.Logger with a zap sugared logger. Every message is logged at
// debug level, since it is diagnostic output about the harness rather than a test result.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger creates a logger that writes console-encoded lines to stderr. If enabled is false,
// or the logger cannot be built, it returns a logger that discards everything.
func NewZapLogger(enabled bool) *ZapLogger {
	if !enabled {
		return NewZapLoggerFrom(zap.NewNop())
	}

	config := zap.NewDevelopmentConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return NewZapLoggerFrom(zap.NewNop())
	}
	return NewZapLoggerFrom(logger)
}

// NewZapLoggerFrom wraps an existing zap logger.
func NewZapLoggerFrom(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger.Sugar()}
}

func (l *ZapLogger) Printf(message string, args ...interface{}) {
	l.logger.Debugf(message, args...)
}

// With returns a logger that attaches the given key-value pairs to every message.
func (l *ZapLogger) With(keysAndValues ...interface{}) *ZapLogger {
	return &ZapLogger{logger: l.logger.With(keysAndValues...)}
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
