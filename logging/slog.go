// Package logging configures the process-wide slog logger
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Manager owns the configured logger
type Manager struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

func NewManager() *Manager {
	return &Manager{level: new(slog.LevelVar)}
}

// parseLevel converts a string log level to slog.Level, INFO when unrecognized
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup writes text records to every non-nil writer with RFC3339 UTC timestamps
// With no writers, records are discarded
func (m *Manager) Setup(level string, writers ...io.Writer) *slog.Logger {
	m.level.Set(parseLevel(level))

	opts := &slog.HandlerOptions{
		Level: m.level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	var handlers []slog.Handler
	for _, w := range writers {
		if w != nil {
			handlers = append(handlers, slog.NewTextHandler(w, opts))
		}
	}

	m.logger = slog.New(NewMultiHandler(handlers...))
	m.logger.Info("logging initialized", "level", m.level.Level().String())
	return m.logger
}

// SetLevel changes the minimum level of an already configured logger
func (m *Manager) SetLevel(level string) {
	m.level.Set(parseLevel(level))
}

// Logger returns the configured logger, or slog.Default before Setup
func (m *Manager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(NewMultiHandler())
}
