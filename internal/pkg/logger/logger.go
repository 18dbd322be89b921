package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.Logger to ports.Logger.
type ZapLogger struct {
	base *zap.Logger
}

// New builds a console logger on stderr. Debug output is enabled when verbose is set.
func New(verbose bool) *ZapLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encCfg.TimeKey = ""

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)
	return &ZapLogger{base: zap.New(core)}
}

// Wrap adapts an existing zap logger.
func Wrap(base *zap.Logger) *ZapLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &ZapLogger{base: base}
}

// NewNop discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{base: zap.NewNop()}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, toFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, toFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, toFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.base.Error(msg, append(toFields(fields), zap.Error(err))...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}

func toFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		out = append(out, zap.Any(key, value))
	}
	return out
}
