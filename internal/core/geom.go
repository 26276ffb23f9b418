// Package core provides fundamental types shared by the simulation and the
// platform layer. It has no terminal dependencies so game logic stays pure
// and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned box in world units. X, Y is the top-left corner
// and y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds a rectangle of size w×h whose top-left corner is p.
func RectAt(p Vec2, w, h float64) Rect {
	return Rect{X: p.X, Y: p.Y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether the interiors of r and other intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Valid reports whether the rectangle has positive, finite extents.
func (r Rect) Valid() bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
