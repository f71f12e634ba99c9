package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"wskproxy/appctx"
)

// LevelDisabled is above every level slog emits, silencing the logger
const LevelDisabled = slog.Level(1000)

var (
	logger *slog.Logger
	output io.Writer = os.Stdout
	level            = slog.LevelInfo
)

func init() {
	logger = newLogger()
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level,
	}))
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// FromContext returns the package logger annotated with the run id carried by ctx, if any
func FromContext(ctx context.Context) *slog.Logger {
	if runID, ok := appctx.GetRunID(ctx); ok {
		return logger.With("run_id", runID)
	}
	return logger
}

func SetLevel(newLevel slog.Level) {
	level = newLevel
	logger = newLogger()
}

// SetOutput redirects log lines, e.g. to stderr when stdout carries program output
func SetOutput(w io.Writer) {
	output = w
	logger = newLogger()
}

// ParseLevel converts names like "debug" or "WARN" into a slog level, falling back to info
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}
