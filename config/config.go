// Package config loads runtime settings from defaults, an optional YAML file and SHIPTAPPER_ environment variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/parameter"
)

const EnvPrefix = "SHIPTAPPER"

var ErrInvalid = errors.New("invalid config")

// ArenaConfig sizes the simulated arena in points
type ArenaConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// AudioConfig controls cue playback
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// PlayerConfig overrides the starting stats of a new game
type PlayerConfig struct {
	MaxHP       int           `mapstructure:"maxHP"`
	MaxShield   int           `mapstructure:"maxShield"`
	ShipSpeed   float64       `mapstructure:"shipSpeed"`
	ReloadSpeed time.Duration `mapstructure:"reloadSpeed"`
	CritChance  float64       `mapstructure:"critChance"`
	CritDamage  float64       `mapstructure:"critDamage"`
	MinDamage   float64       `mapstructure:"minDamage"`
	CannonCount int           `mapstructure:"cannonCount"`
}

// Config is the resolved runtime configuration
type Config struct {
	LogLevel string       `mapstructure:"logLevel"`
	LogFile  string       `mapstructure:"logFile"`
	Seed     uint64       `mapstructure:"seed"`
	FPS      int          `mapstructure:"fps"`
	Arena    ArenaConfig  `mapstructure:"arena"`
	Audio    AudioConfig  `mapstructure:"audio"`
	Player   PlayerConfig `mapstructure:"player"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "shiptapper.log")
	v.SetDefault("seed", 0)
	v.SetDefault("fps", 60)

	v.SetDefault("arena.width", parameter.ArenaWidth)
	v.SetDefault("arena.height", parameter.ArenaHeight)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.8)

	v.SetDefault("player.maxHP", parameter.PlayerMaxHP)
	v.SetDefault("player.maxShield", parameter.PlayerMaxShield)
	v.SetDefault("player.shipSpeed", parameter.PlayerShipSpeed)
	v.SetDefault("player.reloadSpeed", parameter.PlayerReloadSpeed)
	v.SetDefault("player.critChance", parameter.PlayerCritChance)
	v.SetDefault("player.critDamage", parameter.PlayerCritDamage)
	v.SetDefault("player.minDamage", parameter.PlayerMinDamageMultiplier)
	v.SetDefault("player.cannonCount", parameter.PlayerCannonCount)
}

// Load resolves configuration; an empty path or a missing file leaves the defaults in place
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %gx%g", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume must be in [0,1], got %g", ErrInvalid, c.Audio.Volume)
	case c.Player.MaxHP <= 0:
		return fmt.Errorf("%w: player maxHP must be positive, got %d", ErrInvalid, c.Player.MaxHP)
	case c.Player.ReloadSpeed <= 0:
		return fmt.Errorf("%w: player reloadSpeed must be positive, got %s", ErrInvalid, c.Player.ReloadSpeed)
	}
	return nil
}

// ArenaSize returns the configured arena dimensions
func (c *Config) ArenaSize() core.Size {
	return core.Size{W: c.Arena.Width, H: c.Arena.Height}
}

// FrameInterval is the host tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// PlayerStats returns the starting stats with overrides applied
func (c *Config) PlayerStats() component.PlayerStats {
	s := component.DefaultPlayerStats()
	p := c.Player
	s.MaxHP, s.HP = p.MaxHP, p.MaxHP
	s.MaxShield = p.MaxShield
	s.ShipSpeed = p.ShipSpeed
	s.ReloadSpeed = p.ReloadSpeed
	s.CritChance = p.CritChance
	s.CritDamageMultiplier = p.CritDamage
	s.MinDamageMultiplier = p.MinDamage
	s.CannonCount = p.CannonCount
	s.Clamp()
	return s
}
