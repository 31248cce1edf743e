// Package logger wraps zap behind a small namespaced interface.
package logger

import (
	"go.uber.org/zap"
)

type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Uint   = zap.Uint
	Err    = zap.Error
)

type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
}

type logger struct {
	zap *zap.Logger
}

func (l logger) Info(msg string, fields ...Field)  { l.zap.Info(msg, fields...) }
func (l logger) Warn(msg string, fields ...Field)  { l.zap.Warn(msg, fields...) }
func (l logger) Error(msg string, fields ...Field) { l.zap.Error(msg, fields...) }
func (l logger) Fatal(msg string, fields ...Field) { l.zap.Fatal(msg, fields...) }

func New(namespace string) Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.InitialFields = map[string]interface{}{
		"namespace": namespace,
	}
	z, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger{zap: z}
}
