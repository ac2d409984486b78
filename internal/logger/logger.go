package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Init builds the process-wide logger. Unknown levels fall back to info.
func Init(development bool, level LogLevel) error {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level.zapLevel())

	l, err := config.Build()
	if err != nil {
		return err
	}
	log = l
	return nil
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// Get returns the logger; a no-op logger until Init succeeds.
func Get() *zap.Logger {
	return log
}

func Sync() error {
	return log.Sync()
}
