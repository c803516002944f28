package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logOutput io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

// SetLogOutput 设置之后创建的logger的输出。json为true时输出JSON行。
func SetLogOutput(out io.Writer, json bool) {
	if json {
		logOutput = out
		return
	}
	logOutput = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}

func SetLogLevel(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// NewLogger 创建带组件名的logger
func NewLogger(component string) zerolog.Logger {
	return zerolog.New(logOutput).With().Timestamp().Str("component", component).Logger()
}

// Logger 每次调用时按当前输出设置创建，供包级别的日志使用
func Logger(component string) *zerolog.Logger {
	l := NewLogger(component)
	return &l
}
