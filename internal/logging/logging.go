// internal/logging/logging.go
//
// Package logging builds the process logger from the log section of the
// config. Output goes to stderr, or to a file whose name is a strftime
// pattern expanded once at startup.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"

	cfg "github.com/tamzrod/stackmat-replicator/internal/config"
)

// TimeFormat is used for every log line timestamp.
const TimeFormat = "2006-01-02 15:04:05.000"

// New returns the configured logger and a closer for its output.
// Assumes config has already passed Validate and Normalize.
func New(c cfg.LogConfig) (*log.Logger, func() error, error) {
	if c.File == "" {
		l, err := NewWithWriter(c, os.Stderr)
		return l, func() error { return nil }, err
	}

	name, err := FileName(c.File, time.Now())
	if err != nil {
		return nil, nil, err
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
	}

	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	l, err := NewWithWriter(c, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, f.Close, nil
}

// NewWithWriter builds a logger writing to w.
func NewWithWriter(c cfg.LogConfig, w io.Writer) (*log.Logger, error) {
	level := log.InfoLevel
	if c.Level != "" {
		lv, err := log.ParseLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = lv
	}

	formatter, err := Formatter(c.Format)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
	}), nil
}

// Formatter maps a config format name to a log formatter.
func Formatter(name string) (log.Formatter, error) {
	switch name {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("logging: unknown format %q", name)
	}
}

// FileName expands a strftime pattern such as "logs/stackmat-%Y%m%d.log".
func FileName(pattern string, t time.Time) (string, error) {
	name, err := strftime.Format(pattern, t)
	if err != nil {
		return "", fmt.Errorf("logging: file pattern %q: %w", pattern, err)
	}
	return name, nil
}
