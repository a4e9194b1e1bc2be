package geom

// Sign classifies the turn made at the middle vertex of three points.
type Sign int8

const (
	Concave    Sign = -1
	Tangential Sign = 0
	Convex     Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Concave:
		return "concave"
	case Convex:
		return "convex"
	default:
		return "tangential"
	}
}

// Orientation is the sign of (v3-v2)×(v1-v2), i.e. twice the signed area of
// the triangle (v1, v2, v3) up to sign. Walking v1 -> v2 -> v3 counterclockwise
// makes v2 convex.
func Orientation(v1, v2, v3 Point) Sign {
	cross := v3.Sub(v2).Cross(v1.Sub(v2))
	switch {
	case cross > 0:
		return Convex
	case cross < 0:
		return Concave
	default:
		return Tangential
	}
}

// InTriangle reports whether p lies inside or on the boundary of the
// counterclockwise triangle (v1, v2, v3). The point is outside only if it is
// strictly beyond one of the three edges.
func InTriangle(v1, v2, v3, p Point) bool {
	return Orientation(v3, v1, p) != Concave &&
		Orientation(v1, v2, p) != Concave &&
		Orientation(v2, v3, p) != Concave
}

// TrapezoidSum is Σ(x_i − x_{i−1})(y_i + y_{i−1}) over the closed loop. It is
// minus twice the signed area, so it is negative for counterclockwise loops.
func TrapezoidSum(points []Point) float64 {
	var sum float64
	for i, p := range points {
		prev := points[CircularIndex(i-1, len(points))]
		sum += (p.X - prev.X) * (p.Y + prev.Y)
	}
	return sum
}

// Signed area of a closed loop. Positive when counterclockwise.
func SignedArea(points []Point) float64 {
	return -TrapezoidSum(points) / 2
}

// Signed area of an indexed triangle. Positive when counterclockwise.
func (t Triangle) SignedArea(points []Point) float64 {
	a, b, c := points[t[0]], points[t[1]], points[t[2]]
	return b.Sub(a).Cross(c.Sub(a)) / 2
}
