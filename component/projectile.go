package component

import (
	"time"

	"github.com/lixenwraith/shiptapper/core"
)

// Side identifies who fired a projectile
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

// ProjectileComponent describes a shot in flight
// The shot moves in a straight line from Start to End over Travel, then rests
// at End for Linger before expiring
type ProjectileComponent struct {
	Side Side

	// Functional is false for decorative sub-shots, which never deal damage
	Functional bool
	Damage     int

	// Mask is the set of categories this shot may damage
	Mask core.Category
	Boss bool

	Start core.Vec2
	End   core.Vec2

	Elapsed time.Duration
	Travel  time.Duration
	Linger  time.Duration
}

// Expired reports whether the shot has outlived its travel and linger windows
func (p ProjectileComponent) Expired() bool {
	return p.Elapsed >= p.Travel+p.Linger
}

// PositionAt returns the point on the path after the current elapsed time
func (p ProjectileComponent) PositionAt() core.Vec2 {
	if p.Travel <= 0 || p.Elapsed >= p.Travel {
		return p.End
	}
	t := p.Elapsed.Seconds() / p.Travel.Seconds()
	return p.Start.Add(p.End.Sub(p.Start).Scale(t))
}
