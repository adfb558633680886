package logger

import (
	"log"

	"go.uber.org/zap"
)

const (
	envLocal = "local"
	envDev   = "dev"
)

var global = zap.NewNop()

// SetupLogger builds the process-wide zap logger for the given environment
// and returns a sugared handle for the composition root.
func SetupLogger(env string) *zap.SugaredLogger {
	var (
		l   *zap.Logger
		err error
	)

	switch env {
	case envLocal, envDev:
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot initialize logger: %s", err)
	}

	global = l

	return l.Sugar()
}

// Logger returns the raw logger, used by request-logging middleware.
func Logger() *zap.Logger {
	return global
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}
