package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/inkmesh"
)

func TestReadSamples(t *testing.T) {
	samples, err := readSamples(strings.NewReader(`# a short stroke
0 0
1.5 2 0.25

  3 -4 0.5
`))
	require.NoError(t, err)
	assert.Equal(t, []inkmesh.Sample{
		{Point: inkmesh.Point{X: 0, Y: 0}, Pressure: 1},
		{Point: inkmesh.Point{X: 1.5, Y: 2}, Pressure: 0.25},
		{Point: inkmesh.Point{X: 3, Y: -4}, Pressure: 0.5},
	}, samples)
}

func TestReadSamples_Errors(t *testing.T) {
	_, err := readSamples(strings.NewReader("0 0\n1\n"))
	assert.EqualError(t, err, "line 2: expected 2 to 3 numbers, got 1")

	_, err = readSamples(strings.NewReader("0 zero\n"))
	assert.ErrorContains(t, err, "line 1: field 2")
}

func TestReadPolygons(t *testing.T) {
	polygons, err := readPolygons(strings.NewReader(`0 0
4 0
4 4

# second
10 10
11 10
10 11
`))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Len(t, polygons[0], 3)
	assert.Equal(t, []inkmesh.Point{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11}}, polygons[1])

	_, err = readPolygons(strings.NewReader("0 0 1\n"))
	assert.EqualError(t, err, "line 1: expected 2 to 2 numbers, got 3")
}

func TestApplyStrokeFlags(t *testing.T) {
	opts := inkmesh.DefaultStrokeOptions()
	require.NoError(t, applyStrokeFlags(&opts, 0, "", 0))
	assert.Equal(t, inkmesh.DefaultStrokeOptions(), opts)

	require.NoError(t, applyStrokeFlags(&opts, 6, "flat", 3))
	assert.Equal(t, 6.0, opts.Width)
	assert.Equal(t, inkmesh.CapFlat, opts.Cap)
	assert.Equal(t, 3.0, opts.Subdivisions)

	assert.Error(t, applyStrokeFlags(&opts, 0, "square", 0))
}

func TestMergeMeshes(t *testing.T) {
	a, err := inkmesh.FillPolygon([]inkmesh.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.NoError(t, err)
	b, err := inkmesh.FillPolygon([]inkmesh.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}})
	require.NoError(t, err)

	merged := mergeMeshes([]*inkmesh.Mesh{a, b})
	assert.Len(t, merged.Vertices, 7)
	require.Len(t, merged.Triangles, 3)
	for _, tri := range merged.Triangles[1:] {
		for _, index := range tri {
			assert.GreaterOrEqual(t, index, 3)
		}
	}
	assert.InDelta(t, 1.5, merged.Area(), 1e-9)
}
