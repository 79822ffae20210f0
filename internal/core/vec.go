package core

import "math"

// Vec2 is a 2D vector in world units (pixels of the logical playfield).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSqr returns the squared length of v.
func (v Vec2) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSqr())
}

// Normalize returns v scaled to unit length.
// The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// DistSqr returns the squared distance between v and o.
func (v Vec2) DistSqr(o Vec2) float64 {
	return v.Sub(o).LenSqr()
}

// Lerp interpolates between v and o. u is not clamped.
func (v Vec2) Lerp(o Vec2, u float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*u, Y: v.Y + (o.Y-v.Y)*u}
}

// Clamp restricts each component of v to [min, max].
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{X: ClampF(v.X, min.X, max.X), Y: ClampF(v.Y, min.Y, max.Y)}
}

// FromAngle returns a vector of the given length pointing at angle radians.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Bounds is an axis-aligned rectangle in world units given by its corners.
type Bounds struct {
	Min Vec2 // Top-left corner
	Max Vec2 // Bottom-right corner
}

// NewBounds creates bounds from a top-left corner and a size.
func NewBounds(x, y, w, h float64) Bounds {
	return Bounds{Min: V(x, y), Max: V(x+w, y+h)}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the middle point of the bounds.
func (b Bounds) Center() Vec2 {
	return V(b.Min.X+b.Width()/2, b.Min.Y+b.Height()/2)
}

// Contains reports whether p lies inside the bounds, edges included.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clamp restricts p to the bounds.
func (b Bounds) Clamp(p Vec2) Vec2 {
	return p.Clamp(b.Min, b.Max)
}
