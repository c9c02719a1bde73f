package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/andrescamacho/settlement-go/internal/application/common"
	"github.com/andrescamacho/settlement-go/internal/infrastructure/config"
)

// SlogLogger adapts log/slog to common.Logger
type SlogLogger struct {
	logger *slog.Logger
	closer io.Closer
}

// NewLogger builds a logger from the logging section of the config.
// Close must be called when output is a file.
func NewLogger(cfg *config.LoggingConfig) (*SlogLogger, error) {
	var (
		out    io.Writer
		closer io.Closer
	)

	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "stderr", "":
		out = os.Stderr
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	default:
		return nil, fmt.Errorf("unsupported log output: %s", cfg.Output)
	}

	logger := NewWriterLogger(out, cfg.Format, ParseLevel(cfg.Level), cfg.IncludeCaller)
	logger.closer = closer
	return logger, nil
}

// NewWriterLogger writes to w in the given format ("json" or "text")
func NewWriterLogger(w io.Writer, format string, level slog.Level, includeCaller bool) *SlogLogger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: includeCaller,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &SlogLogger{logger: slog.New(handler)}
}

// ParseLevel maps config level names to slog levels; unknown names mean info
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug", common.LevelDebug:
		return slog.LevelDebug
	case "warn", "warning", common.LevelWarn:
		return slog.LevelWarn
	case "error", common.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Log implements common.Logger. Metadata keys are emitted in sorted order.
func (l *SlogLogger) Log(level, message string, metadata map[string]interface{}) {
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, metadata[key]))
	}

	l.logger.LogAttrs(context.Background(), ParseLevel(level), message, attrs...)
}

// Slog exposes the underlying logger
func (l *SlogLogger) Slog() *slog.Logger {
	return l.logger
}

// Close releases the log file, if any
func (l *SlogLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

var _ common.Logger = (*SlogLogger)(nil)
