package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	"github.com/heartmarshall/moderation-backend/internal/config"
)

// NewLogger builds the process logger from cfg and installs it as the slog
// default. Console records go to stderr as JSON or as source-annotated text.
// With cfg.File set every record is also appended to that file as JSON, and
// the returned func closes it.
func NewLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	console := newLogHandler(os.Stderr, cfg)

	if cfg.File == "" {
		logger := slog.New(console)
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
	}

	logger := slog.New(fanout(console, file, cfg))
	slog.SetDefault(logger)

	return logger, file.Close, nil
}

// newLogHandler builds the console handler for cfg on w.
func newLogHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// fanout sends every record to console and, as JSON, to file.
func fanout(console slog.Handler, file io.Writer, cfg config.LogConfig) slog.Handler {
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	return slogmulti.Fanout(console, fileHandler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
