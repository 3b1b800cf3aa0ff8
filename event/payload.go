package event

import (
	"time"

	"github.com/lixenwraith/shiptapper/core"
)

// ContactPayload is an unordered pair of bodies that began touching
type ContactPayload struct {
	A core.Entity
	B core.Entity
}

// Key returns an order-independent identity for the pair
func (p *ContactPayload) Key() [2]core.Entity {
	if p.A <= p.B {
		return [2]core.Entity{p.A, p.B}
	}
	return [2]core.Entity{p.B, p.A}
}

// Color is an RGB color in [0,1]
type Color struct {
	R, G, B float64
}

var (
	ColorYellow = Color{R: 1, G: 1}
	ColorGreen  = Color{G: 1}
	ColorRed    = Color{R: 1}
	ColorOrange = Color{R: 1, G: 0.5}
	ColorWhite  = Color{R: 1, G: 1, B: 1}
)

// FloatingTextPayload is a transient label anchored at a world position
type FloatingTextPayload struct {
	Text     string
	Position core.Vec2
	Color    Color
	Duration time.Duration
	Critical bool
}

// EffectKind identifies a one-shot visual effect
type EffectKind uint8

const (
	EffectExplosion EffectKind = iota
	EffectSplash
	EffectMuzzle
)

// EffectPayload places a one-shot effect
type EffectPayload struct {
	Kind     EffectKind
	Position core.Vec2
	Duration time.Duration
}

// SoundCue identifies an audio cue
type SoundCue uint8

const (
	SoundCannon SoundCue = iota
	SoundEnemyCannon
	SoundHit
	SoundExplosion
	SoundCoin
	SoundRepair
	SoundWaveStart
	SoundGameOver
	SoundCueCount
)

// SoundPayload requests an audio cue
type SoundPayload struct {
	Cue SoundCue
}

// ShotFiredPayload reports a fired volley or enemy shot
type ShotFiredPayload struct {
	Shooter core.Entity
	Player  bool
	Count   int
}

// EnemyHitPayload reports damage dealt to an enemy
type EnemyHitPayload struct {
	Enemy    core.Entity
	Damage   int
	Critical bool
	HP       int
}

// EnemySunkPayload reports a destroyed enemy
type EnemySunkPayload struct {
	Enemy     core.Entity
	Archetype string
	Name      string
	Reward    int
	Position  core.Vec2
}

// PlayerHitPayload reports damage applied to the player
type PlayerHitPayload struct {
	Damage   int
	HPLost   int
	HP       int
	Shield   int
	Critical bool
}

// LootCollectedPayload reports an applied pickup
type LootCollectedPayload struct {
	Kind      string
	Value     int
	BonusGold int
}

// WavePayload describes a wave transition
type WavePayload struct {
	Wave      int
	Label     string
	Enemies   int
	Obstacles int
	Loot      int
	Boss      bool
}
