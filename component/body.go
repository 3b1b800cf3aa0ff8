package component

import "github.com/lixenwraith/shiptapper/core"

// BodyComponent is the physical state of anything that occupies the arena
type BodyComponent struct {
	Position core.Vec2
	Velocity core.Vec2
	Size     core.Size
	Category core.Category
}

// Bounds returns the axis-aligned rectangle centered on Position
func (b BodyComponent) Bounds() core.Rect {
	return core.Rect{
		X: b.Position.X - b.Size.W/2,
		Y: b.Position.Y - b.Size.H/2,
		W: b.Size.W,
		H: b.Size.H,
	}
}

// Facing is derived from the sign of horizontal velocity
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// FacingFor returns the facing for a velocity; zero horizontal speed faces right
func FacingFor(v core.Vec2) Facing {
	if v.X < 0 {
		return FacingLeft
	}
	return FacingRight
}
