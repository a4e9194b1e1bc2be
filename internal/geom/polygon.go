package geom

// Winding rule point-in-polygon. The triangulator never needs this; it exists
// so results can be checked against the polygon they came from.
func ContainsPointByEvenOdd(polygon []Point, p Point) bool {
	return CrossingCount(polygon, p)%2 == 1
}

// Number of polygon edges crossed by a ray from p towards +X.
func CrossingCount(polygon []Point, p Point) int {
	crossingCount := 0
	for i, vertex := range polygon {
		nextVertex := polygon[CircularIndex(i+1, len(polygon))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func Reverse(polygon []Point) []Point {
	reversed := make([]Point, 0, len(polygon))
	for i := len(polygon) - 1; i >= 0; i-- {
		reversed = append(reversed, polygon[i])
	}
	return reversed
}
