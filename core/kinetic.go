package core

import "math"

// Vec2 is a float64 2D vector used for positions and velocities
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64           { return math.Hypot(v.X, v.Y) }
func (v Vec2) IsZero() bool           { return v.X == 0 && v.Y == 0 }
func (v Vec2) Dot(o Vec2) float64     { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Perp() Vec2             { return Vec2{-v.Y, v.X} }
func (v Vec2) Neg() Vec2              { return Vec2{-v.X, -v.Y} }
func (v Vec2) Equal(o Vec2) bool      { return v.X == o.X && v.Y == o.Y }
func (v Vec2) WithX(x float64) Vec2   { return Vec2{x, v.Y} }
func (v Vec2) WithY(y float64) Vec2   { return Vec2{v.X, y} }
