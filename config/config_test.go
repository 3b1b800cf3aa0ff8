package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shiptapper/component"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "shiptapper.log", cfg.LogFile)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 390.0, cfg.Arena.Width)
	assert.Equal(t, 844.0, cfg.Arena.Height)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, component.DefaultPlayerStats(), cfg.PlayerStats())
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shiptapper.yaml")
	doc := `
logLevel: debug
seed: 42
arena:
  width: 400
player:
  cannonCount: 2
  reloadSpeed: 2500ms
audio:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 400.0, cfg.Arena.Width)
	assert.Equal(t, 844.0, cfg.Arena.Height)
	assert.False(t, cfg.Audio.Enabled)

	stats := cfg.PlayerStats()
	assert.Equal(t, 2, stats.CannonCount)
	assert.Equal(t, 2500*time.Millisecond, stats.ReloadSpeed)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("arena: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHIPTAPPER_ARENA_HEIGHT", "900")
	t.Setenv("SHIPTAPPER_FPS", "30")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 900.0, cfg.Arena.Height)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, time.Second/30, cfg.FrameInterval())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SHIPTAPPER_AUDIO_VOLUME", "3")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}
