package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger writing to w.
func NewLogger(cfg LogConfig, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", cfg.Level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "kidsquids",
		Level:           level,
	}), nil
}

// NewFileLogger builds a logger appending to cfg.File, for when the
// terminal belongs to the TUI. The returned closer closes the file.
func NewFileLogger(cfg LogConfig) (*log.Logger, io.Closer, error) {
	path := ExpandHome(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("config: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("config: cannot open log file %s: %w", path, err)
	}
	logger, err := NewLogger(cfg, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
