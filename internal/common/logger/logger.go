package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Options configures the process logger
type Options struct {
	// Level is one of debug, info, warn, error; defaults to info
	Level string

	// Writer defaults to os.Stdout
	Writer io.Writer

	// TimeFormat defaults to 15:04:05
	TimeFormat string
}

// New builds a tinted slog logger
func New(opts *Options) *slog.Logger {
	if opts == nil {
		opts = &Options{}
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = "15:04:05"
	}

	return slog.New(tint.NewHandler(writer, &tint.Options{
		Level:      ParseLevel(opts.Level),
		TimeFormat: timeFormat,
	}))
}

// Init builds the logger and installs it as the slog default
func Init(opts *Options) *slog.Logger {
	l := New(opts)
	slog.SetDefault(l)
	return l
}

// ParseLevel maps a level name to a slog level, falling back to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
