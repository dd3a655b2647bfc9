package log

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the logging contract used across handlers, usecases and
// repositories. Context is accepted first so trace data can be attached later
// without changing call sites.
type Logger interface {
	Info(ctx context.Context, message string, args ...interface{})
	Warn(ctx context.Context, message string, args ...interface{})
	Error(ctx context.Context, message string, args ...interface{})
}

type logger struct {
	zap *zap.SugaredLogger
}

var instance Logger

func SetupLogger() *zap.Logger {
	logZap, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logZap
}

func Init(logZap *zap.Logger) {
	instance = &logger{
		zap: logZap.Sugar(),
	}
}

func GetLogger() Logger {
	return instance
}

func (l *logger) Info(ctx context.Context, message string, args ...interface{}) {
	if len(args) == 0 {
		l.zap.Info(message)
		return
	}
	l.zap.Infow(message, "data", args)
}

func (l *logger) Warn(ctx context.Context, message string, args ...interface{}) {
	if len(args) == 0 {
		l.zap.Warn(message)
		return
	}
	l.zap.Warnw(message, "data", args)
}

func (l *logger) Error(ctx context.Context, message string, args ...interface{}) {
	if len(args) == 0 {
		l.zap.Error(message)
		return
	}
	l.zap.Errorw(message, "data", args)
}
