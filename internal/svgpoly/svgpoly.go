// Package svgpoly pulls vertex loops out of SVG documents. This is not a full
// (or even correct) SVG reader: only <polygon> and <polyline> elements are
// looked at, transforms are ignored, and the points attribute is taken as is.
package svgpoly

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/inkmesh/internal/geom"
)

var ErrNoPolygon = errors.New("no polygon or polyline element found")

// Parse returns the points of every polygon element, followed by every
// polyline element, in document order within each kind.
func Parse(r io.Reader) ([][]geom.Point, error) {
	// Points are checked below, with better errors than the validator gives.
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var result [][]geom.Point
	for _, kind := range []string{"polygon", "polyline"} {
		for i, el := range rootEl.FindAll(kind) {
			points, err := ParsePoints(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s %d", kind, i)
			}
			result = append(result, points)
		}
	}
	if len(result) == 0 {
		return nil, ErrNoPolygon
	}
	return result, nil
}

// First is Parse for documents where only the first shape matters.
func First(r io.Reader) ([]geom.Point, error) {
	polygons, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return polygons[0], nil
}

// ParsePoints reads a points attribute. Coordinates may be separated by
// commas, whitespace, or both.
func ParsePoints(attr string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}
