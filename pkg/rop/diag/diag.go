package diag

import (
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sinkMu sync.RWMutex
	sink   = defaultLogger()
)

func defaultLogger() logr.Logger {
	logger, err := NewConsoleLogger(zapcore.InfoLevel, "stderr")
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(logger)
}

// Logger returns the logger currently receiving warnings.
func Logger() logr.Logger {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return sink
}

// SetLogger installs logger as the warning sink and returns a function
// restoring the previous one.
func SetLogger(logger logr.Logger) (restore func()) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	previous := sink
	sink = logger
	return func() {
		sinkMu.Lock()
		defer sinkMu.Unlock()
		sink = previous
	}
}

// UseZap installs a zap logger as the warning sink.
// A nil logger discards warnings.
func UseZap(logger *zap.Logger) (restore func()) {
	if logger == nil {
		return SetLogger(logr.Discard())
	}
	return SetLogger(zapr.NewLogger(logger))
}

// Warn reports a non-fatal condition raised by the named component.
func Warn(component, msg string, keysAndValues ...any) {
	Logger().WithName(component).Info(msg, keysAndValues...)
}

// NewConsoleLogger returns a human-friendly console logger with timestamps,
// writing to the given output paths (stdout or stderr when none are given).
func NewConsoleLogger(level zapcore.Level, outputs ...string) (*zap.Logger, error) {
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	cfg.OutputPaths = outputs
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	return cfg.Build()
}
