package geom

import "math"

// LineIntersection intersects the infinite lines through (a0, a1) and
// (b0, b1). The returned parameters place the point along each input: t along
// a, u along b, with 0 and 1 at the given endpoints. Parallel and degenerate
// lines report false.
func LineIntersection(a0, a1, b0, b1 Point) (p Point, t, u float64, ok bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	denom := da.Cross(db)
	// Scale the parallel test by the lengths, so it is an angle test.
	if math.Abs(denom) <= Tolerance*da.Length()*db.Length() {
		return Point{}, 0, 0, false
	}
	offset := b0.Sub(a0)
	t = offset.Cross(db) / denom
	u = offset.Cross(da) / denom
	return a0.Add(da.Scale(t)), t, u, true
}

// SegmentIntersection is LineIntersection restricted to the two segments,
// endpoints included.
func SegmentIntersection(a0, a1, b0, b1 Point) (Point, bool) {
	p, t, u, ok := LineIntersection(a0, a1, b0, b1)
	if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return p, true
}
