// Package logging builds the application's zap loggers.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel names the environment variable read by FromEnv.
const EnvLogLevel = "LOG_LEVEL"

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger creates a console logger writing to stderr at the given level.
func NewLogger(level string) *zap.Logger {
	return newLogger(zapcore.Lock(os.Stderr), level)
}

// FromEnv creates a logger using LOG_LEVEL, falling back to fallback.
func FromEnv(fallback string) *zap.Logger {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = fallback
	}
	return NewLogger(level)
}

func newLogger(out zapcore.WriteSyncer, level string) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), out, ParseLevel(level))
	return zap.New(core)
}
