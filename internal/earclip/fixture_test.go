package earclip

import (
	"embed"
	"log"
	"math"
	"math/rand"

	"github.com/osuushi/inkmesh/internal/geom"
	"github.com/osuushi/inkmesh/internal/svgpoly"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds one polygon, in whatever winding it was drawn with.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []geom.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := svgpoly.First(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}

// Some ad hoc code specified fixtures

func Square() []geom.Point {
	return []geom.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
}

// Concave at index 3.
func Dart() []geom.Point {
	return []geom.Point{{0, 0}, {4, 0}, {4, 4}, {2, 1}, {0, 4}}
}

func SimpleStar() []geom.Point {
	var points []geom.Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, geom.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// RandomStarShaped returns a polygon whose vertices are sorted by angle around
// the origin with random radii, which is always simple.
func RandomStarShaped(r *rand.Rand, n int) []geom.Point {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = 2 * math.Pi * (float64(i) + 0.8*r.Float64()) / float64(n)
	}
	points := make([]geom.Point, n)
	for i, angle := range angles {
		radius := 1 + 9*r.Float64()
		points[i] = geom.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

func Collinear(n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{X: float64(i), Y: 2 * float64(i)}
	}
	return points
}

// Coil is the outline of a thick Archimedean spiral, like a pen stroke curled
// round and round: n points along the outer edge, then n back along the inner
// edge. The turns are pitch apart and the band is 2*halfWidth wide.
func Coil(n, turns int, pitch, halfWidth float64) []geom.Point {
	const innerRadius = 10
	points := make([]geom.Point, 2*n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(turns) * float64(i) / float64(n-1)
		radius := innerRadius + pitch*angle/(2*math.Pi)
		sin, cos := math.Sincos(angle)
		points[i] = geom.Point{X: (radius + halfWidth) * cos, Y: (radius + halfWidth) * sin}
		points[2*n-1-i] = geom.Point{X: (radius - halfWidth) * cos, Y: (radius - halfWidth) * sin}
	}
	return points
}
