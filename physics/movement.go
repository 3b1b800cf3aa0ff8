package physics

import (
	"time"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/vmath"
)

// Integrate advances a position by velocity over dt
func Integrate(pos, vel core.Vec2, dt time.Duration) core.Vec2 {
	return pos.Add(vel.Scale(dt.Seconds()))
}

// CapSpeed limits the velocity magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel core.Vec2, maxSpeed float64) (core.Vec2, bool) {
	if maxSpeed <= 0 {
		return core.Vec2{}, !vel.IsZero()
	}
	if vel.Len() <= maxSpeed {
		return vel, false
	}
	return vmath.Normalize(vel).Scale(maxSpeed), true
}

// ClampToRect keeps a body's center inside r, zeroing the velocity component
// on each axis that was clamped
// Returns true if the body was moved
func ClampToRect(b *component.BodyComponent, r core.Rect) bool {
	clamped := false
	if b.Position.X < r.MinX() {
		b.Position.X, b.Velocity.X, clamped = r.MinX(), 0, true
	} else if b.Position.X > r.MaxX() {
		b.Position.X, b.Velocity.X, clamped = r.MaxX(), 0, true
	}
	if b.Position.Y < r.MinY() {
		b.Position.Y, b.Velocity.Y, clamped = r.MinY(), 0, true
	} else if b.Position.Y > r.MaxY() {
		b.Position.Y, b.Velocity.Y, clamped = r.MaxY(), 0, true
	}
	return clamped
}

// Blocked reports whether a body at pos would overlap any obstacle rectangle
func Blocked(pos core.Vec2, size core.Size, obstacles []core.Rect) bool {
	r := vmath.RectCentered(pos, size)
	for _, o := range obstacles {
		if vmath.RectIntersects(r, o) {
			return true
		}
	}
	return false
}
