// Package geom provides the 2D vector math shared by the world, player,
// raycast and projection packages.
package geom

import "math"

// Vec2 represents a 2D point or direction in continuous grid units
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing at the given angle in radians
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by a scalar
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate returns v rotated counter-clockwise by the given angle in radians
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Floor returns v with both components rounded down to integers
func (v Vec2) Floor() Vec2 {
	return Vec2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Fract returns the fractional part of both components.
// Both results are in [0, 1) for any finite input, including negatives.
func (v Vec2) Fract() Vec2 {
	return Vec2{X: v.X - math.Floor(v.X), Y: v.Y - math.Floor(v.Y)}
}

// NormalizeAngle reduces an angle in radians into [0, 2π)
func NormalizeAngle(angle float64) float64 {
	normalized := math.Mod(angle, 2*math.Pi)
	if normalized < 0 {
		normalized += 2 * math.Pi
	}
	return normalized
}
