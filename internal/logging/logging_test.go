// internal/logging/logging_test.go
package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/tamzrod/stackmat-replicator/internal/config"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(cfg.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("value received", "value", "0:13.045")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "value received", line["msg"])
	assert.Equal(t, "0:13.045", line["value"])
	assert.Contains(t, line, "time")
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(cfg.LogConfig{Level: "warn", Format: "logfmt"}, &buf)
	require.NoError(t, err)

	l.Info("quiet")
	assert.Empty(t, buf.String())

	l.Warn("loud")
	assert.Contains(t, buf.String(), "msg=loud")
	assert.Equal(t, log.WarnLevel, l.GetLevel())
}

func TestFormatter(t *testing.T) {
	f, err := Formatter("")
	require.NoError(t, err)
	assert.Equal(t, log.TextFormatter, f)

	_, err = Formatter("xml")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)

	name, err := FileName("logs/stackmat-%Y%m%d.log", at)
	require.NoError(t, err)
	assert.Equal(t, "logs/stackmat-20240309.log", name)
}

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	pattern := filepath.Join(dir, "sub", "run-%Y.log")

	l, closeFn, err := New(cfg.LogConfig{Level: "info", Format: "text", File: pattern})
	require.NoError(t, err)

	l.Info("hello")
	require.NoError(t, closeFn())

	name, err := FileName(pattern, time.Now())
	require.NoError(t, err)

	raw, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "hello")
}
