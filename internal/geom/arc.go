package geom

import "math"

// Upper bound on the segments of a single arc. Only reached for tolerances
// that are tiny relative to the radius.
const MaxArcSegments = 256

// ArcSegments picks the segment count for an arc of the given radius and
// sweep so that no chord strays more than maxError from the true circle:
//
//	segments = ceil(|sweep| / (2 * acos(1 - maxError/radius)))
//
// The result is clamped to [1, MaxArcSegments].
func ArcSegments(radius, sweep, maxError float64) int {
	sweep = math.Abs(sweep)
	if radius <= Tolerance || sweep <= Tolerance {
		return 1
	}
	ratio := math.Min(math.Max(maxError/radius, 0), 1)
	step := 2 * math.Acos(1-ratio)
	if step <= 0 {
		return MaxArcSegments
	}
	segments := int(math.Ceil(sweep / step))
	if segments < 1 {
		return 1
	}
	if segments > MaxArcSegments {
		return MaxArcSegments
	}
	return segments
}

// ArcPoints walks from center+start through the signed sweep angle in the
// given number of equal steps. Both endpoints are included, so the result has
// segments+1 points. A positive sweep turns counterclockwise.
func ArcPoints(center Point, start Vec2, sweep float64, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	points := make([]Point, 0, segments+1)
	step := sweep / float64(segments)
	for i := 0; i <= segments; i++ {
		points = append(points, center.Add(start.Rotate(step*float64(i))))
	}
	return points
}

// Arc is ArcPoints with the segment count chosen by ArcSegments. A vanishing
// radius yields the center alone.
func Arc(center Point, start Vec2, sweep, maxError float64) []Point {
	radius := start.Length()
	if radius <= Tolerance {
		return []Point{center}
	}
	return ArcPoints(center, start, sweep, ArcSegments(radius, sweep, maxError))
}
