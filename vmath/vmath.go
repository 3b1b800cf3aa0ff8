package vmath

import (
	"math"

	"github.com/lixenwraith/shiptapper/core"
)

// --- Scalars ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 { return Clamp(v, 0, 1) }

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// SafeRatio returns num/den, or 0 when den is zero
func SafeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// --- Vectors ---

// Distance returns the euclidean distance between a and b
func Distance(a, b core.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the heading in radians from a towards b
func Angle(from, to core.Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Polar returns a vector of magnitude mag at angle radians
func Polar(angle, mag float64) core.Vec2 {
	return core.Vec2{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}

// Normalize returns the unit vector of v, or zero for a zero vector
func Normalize(v core.Vec2) core.Vec2 {
	l := v.Len()
	if l == 0 {
		return core.Vec2{}
	}
	return core.Vec2{X: v.X / l, Y: v.Y / l}
}

// MoveTowards returns a velocity of magnitude speed from a to b
func MoveTowards(from, to core.Vec2, speed float64) core.Vec2 {
	return Polar(Angle(from, to), speed)
}
