package logging

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestSetup_InfoLevel_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewManager().Setup("info", &buf)

	l.Debug("debug msg")
	l.Info("info msg")

	assert.NotContains(t, buf.String(), "debug msg")
	assert.Contains(t, buf.String(), "info msg")
}

func TestSetup_FansOutToAllWriters(t *testing.T) {
	var a, b bytes.Buffer
	l := NewManager().Setup("debug", &a, nil, &b)
	l.Debug("both", "wave", 3)

	assert.Contains(t, a.String(), "wave=3")
	assert.Contains(t, b.String(), "wave=3")
}

func TestSetup_TimestampIsRFC3339UTC(t *testing.T) {
	var buf bytes.Buffer
	NewManager().Setup("info", &buf)

	assert.Regexp(t, regexp.MustCompile(`time=\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z`), buf.String())
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager()
	l := m.Setup("error", &buf)
	l.Info("hidden")
	m.SetLevel("info")
	l.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerBeforeSetup(t *testing.T) {
	assert.Same(t, slog.Default(), NewManager().Logger())
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
