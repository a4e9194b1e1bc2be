package svgpoly

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/inkmesh/internal/geom"
)

func TestParsePoints(t *testing.T) {
	points, err := ParsePoints("0,0 4,0 4 4\n0,4")
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, points)

	points, err = ParsePoints("")
	require.NoError(t, err)
	assert.Empty(t, points)

	_, err = ParsePoints("1,2 3")
	assert.Error(t, err)

	_, err = ParsePoints("1,2 x,3")
	assert.ErrorContains(t, err, `invalid x value "x"`)
}

func TestParse(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <g>
    <polyline points="0,0 1,1 2,0" />
    <polygon points="0,0 4,0 4,4 0,4" />
  </g>
</svg>`
	polygons, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Len(t, polygons[0], 4, "polygons come before polylines")
	assert.Len(t, polygons[1], 3)

	first, err := First(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, polygons[0], first)
}

func TestParse_NoPolygon(t *testing.T) {
	_, err := Parse(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg>`))
	assert.ErrorIs(t, err, ErrNoPolygon)
}
