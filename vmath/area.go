package vmath

import "github.com/lixenwraith/shiptapper/core"

// RectCentered builds a rectangle of the given size centred on c
func RectCentered(c core.Vec2, s core.Size) core.Rect {
	return core.Rect{X: c.X - s.W/2, Y: c.Y - s.H/2, W: s.W, H: s.H}
}

// RectInset shrinks a rectangle by dx/dy on each side; negative values expand it
func RectInset(r core.Rect, dx, dy float64) core.Rect {
	return core.Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// RectIntersects reports whether a and b overlap with positive area
func RectIntersects(a, b core.Rect) bool {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}
	return a.X < b.MaxX() && b.X < a.MaxX() && a.Y < b.MaxY() && b.Y < a.MaxY()
}

// RectContains checks if point is within the rectangle, edges inclusive
func RectContains(r core.Rect, p core.Vec2) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// RectRandomPoint returns a uniformly random point inside r
func RectRandomPoint(r core.Rect, rng *FastRand) core.Vec2 {
	return core.Vec2{
		X: rng.Range(r.X, r.MaxX()),
		Y: rng.Range(r.Y, r.MaxY()),
	}
}
