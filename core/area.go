package core

// Size is a width/height pair in arena units
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle; (X, Y) is the minimum corner, y grows upward
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Size returns the rectangle dimensions
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}
