package stroke

import (
	"math"

	"github.com/osuushi/inkmesh/internal/geom"
)

// startCap runs from the right hand corner of the first sample around the
// back of the stroke to the left hand corner.
func (b *builder) startCap(s centerSample, normal geom.Vec2) []geom.Point {
	left := s.pos.Add(normal.Scale(s.halfWidth))
	right := s.pos.Add(normal.Scale(-s.halfWidth))
	return b.cap(s.pos, right, left)
}

// endCap runs from the left hand corner of the last sample around the front
// of the stroke to the right hand corner.
func (b *builder) endCap(s centerSample, normal geom.Vec2) []geom.Point {
	left := s.pos.Add(normal.Scale(s.halfWidth))
	right := s.pos.Add(normal.Scale(-s.halfWidth))
	return b.cap(s.pos, left, right)
}

// Both caps turn clockwise through half a circle, which faces them away from
// the stroke.
func (b *builder) cap(center, from, to geom.Point) []geom.Point {
	if b.opts.Cap == CapFlat {
		return []geom.Point{from, to}
	}
	arc := geom.Arc(center, from.Sub(center), -math.Pi, b.tolerance)
	if len(arc) == 1 {
		return arc
	}
	arc[0] = from
	arc[len(arc)-1] = to
	return arc
}

// dot is the outline of a stroke that never moved: a full circle. No
// direction is guessed at, so the circle starts on +X.
func (b *builder) dot(s centerSample) []geom.Point {
	if s.halfWidth <= geom.Tolerance {
		return []geom.Point{s.pos}
	}
	segments := geom.ArcSegments(s.halfWidth, 2*math.Pi, b.tolerance)
	if segments < 3 {
		segments = 3
	}
	circle := geom.ArcPoints(s.pos, geom.Vec2{X: s.halfWidth}, 2*math.Pi, segments)
	// The last point comes back around to the first
	return circle[:segments]
}
