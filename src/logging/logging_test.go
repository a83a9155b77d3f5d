package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandrolain/greeter/src/config"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelWarn, ParseLevel("bogus"))
	require.Equal(t, slog.LevelWarn, ParseLevel(""))
}

func TestNewZeroConfigDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Format: FormatText})

	logger.Info("hidden")
	require.Empty(t, buf.String())
	logger.Warn("shown")
	require.Contains(t, buf.String(), "level=WARN")
}

func TestNewJSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "warn", Format: FormatJSON})

	logger.Info("hidden")
	logger.Warn("shown", "name", "World")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, "WARN", rec["level"])
	require.Equal(t, "World", rec["name"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "debug", Format: FormatText})

	logger.Debug("greeter started")
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), `msg="greeter started"`)
}

func TestNewConsoleWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "info", Format: FormatConsole, NoColor: true, TimeFormat: "15:04"})

	logger.Info("hello", "run", "abc")
	out := buf.String()
	require.Contains(t, out, "INF hello run=abc")
	require.NotContains(t, out, "\x1b[")
}
