// Package gamemath holds the 2D helpers shared by the simulation, the AI and
// the frontends. Everything here is pure.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the donburi vector used for every position and velocity.
type Vec2 = dmath.Vec2

// Zero is the zero vector, the "no movement" result.
var Zero = Vec2{}

// Rect is an axis-aligned rectangle in arena coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect returns the rectangle spanning (0,0)-(w,h).
func NewRect(w, h float64) Rect {
	return Rect{MaxX: w, MaxY: h}
}

// Inset shrinks the rectangle by margin on every side.
func (r Rect) Inset(margin float64) Rect {
	return Rect{
		MinX: r.MinX + margin,
		MinY: r.MinY + margin,
		MaxX: r.MaxX - margin,
		MaxY: r.MaxY - margin,
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// ContainsOpen reports whether p lies strictly inside r.
func (r Rect) ContainsOpen(p Vec2) bool {
	return p.X > r.MinX && p.X < r.MaxX && p.Y > r.MinY && p.Y < r.MaxY
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Add returns a+b.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a-b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v*s.
func Scale(v Vec2, s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func Length(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return Length(Sub(a, b))
}

// Normalize returns the unit vector of v. A zero-length input yields the zero
// vector, which callers treat as "no movement".
func Normalize(v Vec2) Vec2 {
	mag := Length(v)
	if mag == 0 {
		return Zero
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// Direction returns the heading from one point to another scaled to speed.
// Coincident points give the zero vector.
func Direction(from, to Vec2, speed float64) Vec2 {
	return Scale(Normalize(Sub(to, from)), speed)
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToBounds moves p to the nearest point inside r.
func ClampToBounds(p Vec2, r Rect) Vec2 {
	return Vec2{
		X: ClampFloat(p.X, r.MinX, r.MaxX),
		Y: ClampFloat(p.Y, r.MinY, r.MaxY),
	}
}
