package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	applogging "github.com/braydenokley13-ux/T101-M1-L2/internal/application/logging"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/config"
)

// NewLogger builds a slog logger from the logging config. The returned closer
// releases the log file when output is "file" and is a no-op otherwise.
func NewLogger(cfg config.LoggingConfig) (*slog.Logger, io.Closer, error) {
	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
	)

	switch cfg.Output {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	case "file":
		if cfg.FilePath == "" {
			return nil, nil, fmt.Errorf("logging output is file but no file_path is set")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	default:
		return nil, nil, fmt.Errorf("unsupported logging output: %s", cfg.Output)
	}

	return NewLoggerTo(out, cfg), closer, nil
}

// NewLoggerTo builds a slog logger writing to w
func NewLoggerTo(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// SlogAdapter exposes a slog logger through the application Logger interface
type SlogAdapter struct {
	logger *slog.Logger
}

var _ applogging.Logger = (*SlogAdapter)(nil)

// NewSlogAdapter wraps logger
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes message at level with metadata as attributes, keys sorted
func (a *SlogAdapter) Log(level, message string, metadata map[string]interface{}) {
	if a == nil || a.logger == nil {
		return
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, metadata[k])
	}

	switch level {
	case applogging.LevelDebug:
		a.logger.Debug(message, args...)
	case applogging.LevelWarn:
		a.logger.Warn(message, args...)
	case applogging.LevelError:
		a.logger.Error(message, args...)
	default:
		a.logger.Info(message, args...)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
