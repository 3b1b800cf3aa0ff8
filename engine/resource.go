package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

// Resource holds singleton simulation state shared by all systems
type Resource struct {
	Time   *TimeResource
	Arena  *ArenaResource
	Game   *GameStateResource
	Player *PlayerResource
	Rand   *vmath.FastRand

	// Contacts carries begin-contact pairs into combat resolution
	Contacts *event.EventQueue

	// Output carries presentation events to the host
	Output *event.EventQueue
}

// NewResource builds the resource set for an arena
func NewResource(arena core.Size, stats component.PlayerStats, rng *vmath.FastRand) *Resource {
	return &Resource{
		Time:     &TimeResource{},
		Arena:    NewArenaResource(arena),
		Game:     &GameStateResource{},
		Player:   &PlayerResource{Stats: stats, Defaults: stats},
		Rand:     rng,
		Contacts: event.NewEventQueue(),
		Output:   event.NewEventQueue(),
	}
}

// TimeResource is updated by the frame driver at the start of a tick
type TimeResource struct {
	// DeltaTime is the clamped duration since the last tick
	DeltaTime time.Duration

	// Elapsed is the accumulated unpaused simulation time
	Elapsed time.Duration

	// frame is read by PushContact from external detector goroutines
	frame atomic.Int64
}

// FrameNumber returns the number of ticks run so far
func (tr *TimeResource) FrameNumber() int64 {
	return tr.frame.Load()
}

// Update modifies TimeResource fields in place
func (tr *TimeResource) Update(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.frame.Add(1)
}

// ArenaResource describes the arena and its derived regions
type ArenaResource struct {
	Size core.Size

	// Playable is the region ships are confined to
	Playable core.Rect

	// HUD is the band reserved for overlays; nothing spawns there
	HUD core.Rect
}

// NewArenaResource derives the playable and HUD rectangles from the arena size
func NewArenaResource(size core.Size) *ArenaResource {
	minX := size.W * parameter.PlayableMarginLeft
	maxX := size.W * (1 - parameter.PlayableMarginRight)
	minY := size.H * parameter.PlayableMarginBottom
	maxY := size.H * (1 - parameter.PlayableMarginTop)
	return &ArenaResource{
		Size:     size,
		Playable: core.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY},
		HUD:      core.Rect{X: 0, Y: size.H - parameter.HUDSafeHeight, W: size.W, H: parameter.HUDSafeHeight},
	}
}

// Height returns the arena height, the scale for every relative distance
func (a *ArenaResource) Height() float64 {
	return a.Size.H
}

// WavePhase is the wave lifecycle state
type WavePhase uint8

const (
	PhaseIdle WavePhase = iota
	PhaseSpawning
	PhaseInProgress
	PhaseCleared
)

func (p WavePhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpawning:
		return "spawning"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// GameStateResource is the wave and run lifecycle state
type GameStateResource struct {
	Wave  int
	Phase WavePhase
	Label string

	// GameOver latches once; it is never cleared within a run
	GameOver bool

	// Pending host notifications, consumed by the frame driver after the tick
	ClearedPending  bool
	GameOverPending bool
}

// PlayerResource is the player's authoritative stats and control state
type PlayerResource struct {
	Entity core.Entity

	Stats    component.PlayerStats
	Defaults component.PlayerStats

	// Movement is the resolved input vector, any magnitude
	Movement core.Vec2

	Target   core.Entity
	AutoFire bool

	// FireTimer counts down to the next auto-fire volley
	FireTimer time.Duration

	Skills [component.SkillCount]component.SkillState
}

// SkillActive reports whether a skill's effect is running
func (p *PlayerResource) SkillActive(s component.Skill) bool {
	return p.Skills[s].IsActive()
}

// ReloadInterval is the auto-fire period, halved during Rapid Fire
func (p *PlayerResource) ReloadInterval() time.Duration {
	reload := p.Stats.ReloadSpeed
	if p.SkillActive(component.SkillRapidFire) {
		reload /= parameter.RapidFireDivisor
	}
	return reload
}

// ShipSpeed is the current player speed in points per second
func (p *PlayerResource) ShipSpeed() float64 {
	speed := p.Stats.ShipSpeed * parameter.SpeedUnitsPerStat
	if p.SkillActive(component.SkillSpeedBoost) {
		speed *= parameter.SpeedBoostMultiplier
	}
	return speed
}
