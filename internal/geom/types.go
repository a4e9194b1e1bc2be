// Package geom holds the small set of 2D primitives shared by the stroke
// builder and the triangulator. Nothing in here allocates beyond the slices it
// returns, and nothing keeps state between calls.
package geom

import "math"

type Point struct {
	X float64
	Y float64
}

type Vec2 struct {
	X float64
	Y float64
}

// A triangle is an ordered triple of indices into the vertex array it was
// produced from.
type Triangle [3]int

func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Both coordinates are real numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Z component of the 3D cross product.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector, and false instead of dividing by a
// length below Tolerance. Callers must not use the vector in that case.
func (v Vec2) Normalize() (Vec2, bool) {
	length := v.Length()
	if length <= Tolerance {
		return Vec2{}, false
	}
	return Vec2{X: v.X / length, Y: v.Y / length}, true
}

// Perp rotates the vector a quarter turn counterclockwise, so for a direction
// of travel it points to the left hand side.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
