package logger

import (
	"log/slog"
	"os"

	"github.com/pacscore/dicom-registry/pkg/enums"
)

type Config struct {
	Level  string // one of the registry log levels: ERROR, WARNING, INFO, TRACE
	Format string // json, text
}

// New creates a new structured logger
func New(cfg Config) *slog.Logger {
	level := parseLevel(cfg.Level)

	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// parseLevel maps a registry log level to its slog equivalent,
// defaulting to Info on unrecognized input.
func parseLevel(level string) slog.Level {
	l, err := enums.ParseLogLevel(level)
	if err != nil {
		return slog.LevelInfo
	}

	switch l {
	case enums.LogLevelError:
		return slog.LevelError
	case enums.LogLevelWarning:
		return slog.LevelWarn
	case enums.LogLevelTrace:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// WithFields adds fields to the logger
func WithFields(logger *slog.Logger, fields map[string]interface{}) *slog.Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return logger.With(args...)
}
