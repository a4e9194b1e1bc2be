package earclip

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/inkmesh/internal/geom"
)

// Checks that hold for any input:
// 1. There are exactly N-2 triangles.
// 2. Every index is in range, and the three are distinct.
func AssertStructurallyValid(t *testing.T, polygon []geom.Point, triangles []geom.Triangle) {
	t.Helper()
	require.Len(t, triangles, len(polygon)-2)
	for _, tri := range triangles {
		for _, index := range tri {
			require.GreaterOrEqual(t, index, 0)
			require.Less(t, index, len(polygon))
		}
		require.NotEqual(t, tri[0], tri[1], "triangle %v", tri)
		require.NotEqual(t, tri[1], tri[2], "triangle %v", tri)
		require.NotEqual(t, tri[0], tri[2], "triangle %v", tri)
	}
}

// Additional checks for simple polygons:
// 3. Every triangle is counterclockwise (or degenerate).
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
// 5. Every polygon edge is an edge of some triangle.
func AssertValidTriangulation(t *testing.T, polygon []geom.Point, triangles []geom.Triangle) {
	t.Helper()
	AssertStructurallyValid(t, polygon, triangles)

	var triangleArea float64
	edges := make(map[[2]int]struct{})
	for _, tri := range triangles {
		area := tri.SignedArea(polygon)
		require.GreaterOrEqual(t, area, -1e-9, "clockwise triangle: %v", tri)
		triangleArea += area
		for i := range tri {
			edges[normalizedEdge(tri[i], tri[(i+1)%3])] = struct{}{}
		}
	}

	for i := range polygon {
		_, ok := edges[normalizedEdge(i, (i+1)%len(polygon))]
		require.True(t, ok, "segment %d-%d of the polygon is not in any triangle", i, (i+1)%len(polygon))
	}

	require.InDelta(t, math.Abs(geom.SignedArea(polygon)), triangleArea, 1e-6)
}

func normalizedEdge(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// Samples a grid over the bounding box and checks that every point inside the
// polygon is covered by a triangle, and every point outside is not.
func validateBySampling(t *testing.T, polygon []geom.Point, triangles []geom.Triangle) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%, and nudge the grid off round numbers so
	// samples don't land exactly on edges
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding - 0.001237
	minY -= yPadding - 0.000713
	maxX += xPadding
	maxY += yPadding
	step := math.Max(maxX-minX, maxY-minY) / 50

	ccw := make([][3]geom.Point, len(triangles))
	for i, tri := range triangles {
		a, b, c := polygon[tri[0]], polygon[tri[1]], polygon[tri[2]]
		if tri.SignedArea(polygon) < 0 {
			a, c = c, a
		}
		ccw[i] = [3]geom.Point{a, b, c}
	}

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := geom.Point{X: x, Y: y}
			covered := false
			for _, tri := range ccw {
				if geom.InTriangle(tri[0], tri[1], tri[2], p) {
					covered = true
					break
				}
			}
			if geom.ContainsPointByEvenOdd(polygon, p) {
				assert.True(t, covered, "point %v should be covered", p)
			} else {
				assert.False(t, covered, "point %v should not be covered", p)
			}
		}
	}
}
