// Package audio synthesizes sound cues and pipes them to a system audio tool
package audio

import (
	"errors"

	"github.com/lixenwraith/shiptapper/event"
)

// BackendType identifies the audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Config controls playback levels
type Config struct {
	Enabled bool

	// MasterVolume scales every cue, 0.0-1.0
	MasterVolume float64

	// CueVolumes scales individual cues; missing cues play at 1.0
	CueVolumes map[event.SoundCue]float64
}

// DefaultConfig keeps enemy fire quieter than the player's own cannons
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.8,
		CueVolumes: map[event.SoundCue]float64{
			event.SoundEnemyCannon: 0.6,
			event.SoundHit:         0.7,
			event.SoundExplosion:   0.9,
		},
	}
}

// volume returns the effective level of a cue
func (c Config) volume(cue event.SoundCue) float64 {
	v := c.MasterVolume
	if cv, ok := c.CueVolumes[cue]; ok {
		v *= cv
	}
	return v
}

var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrRunning        = errors.New("audio engine already running")
)
