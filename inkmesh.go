// Package inkmesh turns pen strokes and closed polygons into triangle meshes.
//
// A stroke is a run of pressure weighted samples. BuildStrokeOutline offsets
// it into a single closed outline, and BuildStrokeMesh goes on to triangulate
// that outline so it can be filled on the GPU. Triangulate and FillPolygon do
// the same for any simple polygon, convex or not.
//
// Every function here is pure and safe for concurrent use.
package inkmesh

import (
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/inkmesh/internal/earclip"
	"github.com/osuushi/inkmesh/internal/geom"
	"github.com/osuushi/inkmesh/internal/logx"
	"github.com/osuushi/inkmesh/internal/stroke"
)

type Point = geom.Point
type Triangle = geom.Triangle
type Sample = stroke.Sample
type StrokeOptions = stroke.Options
type CapStyle = stroke.CapStyle

// JoinEvent is passed to StrokeOptions.Trace for every interior sample.
type JoinEvent = stroke.JoinEvent
type JoinKind = stroke.JoinKind

// TriangulateOption configures Triangulate and FillPolygon.
type TriangulateOption = earclip.Option

// TraceStep describes one ear clipped by Triangulate.
type TraceStep = earclip.Step

const (
	CapRound = stroke.CapRound
	CapFlat  = stroke.CapFlat

	JoinCollapsed = stroke.JoinCollapsed
	JoinMiter     = stroke.JoinMiter
	JoinRound     = stroke.JoinRound
)

var (
	ErrNonFinite    = errors.New("coordinate is not finite")
	ErrInvalidWidth = errors.New("stroke width must be positive")
)

func DefaultStrokeOptions() StrokeOptions {
	return stroke.DefaultOptions()
}

func ParseCapStyle(s string) (CapStyle, error) {
	return stroke.ParseCapStyle(s)
}

// WithTrace calls trace once per clipped ear, in order.
func WithTrace(trace func(TraceStep)) TriangulateOption {
	return earclip.WithTrace(trace)
}

// Triangulate converts a simple polygon into triangles indexing its points.
// Either winding is accepted. The result always has len(polygon)-2
// triangles, or none for fewer than three points.
//
// Self-intersecting or degenerate input does not fail, but the triangles may
// not cover the shape the way a renderer would.
func Triangulate(polygon []Point, opts ...TriangulateOption) (result []Triangle, err error) {
	defer func() {
		recoveredErr := geom.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := checkFinite(polygon); err != nil {
		return nil, err
	}
	result = earclip.Triangulate(polygon, opts...)
	logx.Logger().Debug("inkmesh: triangulated polygon", "points", len(polygon), "triangles", len(result))
	return result, nil
}

// BuildStrokeOutline returns the closed, clockwise outline of a stroke. See
// StrokeOptions for the shape parameters.
func BuildStrokeOutline(samples []Sample, opts StrokeOptions) (result []Point, err error) {
	defer func() {
		recoveredErr := geom.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := checkStroke(samples, opts); err != nil {
		return nil, err
	}
	result = stroke.BuildOutline(samples, opts)
	logx.Logger().Debug("inkmesh: built stroke outline", "samples", len(samples), "points", len(result))
	return result, nil
}

func checkFinite(points []Point) error {
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrNonFinite, "point %d (%v, %v)", i, p.X, p.Y)
		}
	}
	return nil
}

func checkStroke(samples []Sample, opts StrokeOptions) error {
	if !(opts.Width > 0) || math.IsInf(opts.Width, 0) {
		return errors.Wrapf(ErrInvalidWidth, "width %v", opts.Width)
	}
	for i, s := range samples {
		if !s.IsFinite() || math.IsNaN(s.Pressure) || math.IsInf(s.Pressure, 0) {
			return errors.Wrapf(ErrNonFinite, "sample %d (%v, %v, pressure %v)", i, s.X, s.Y, s.Pressure)
		}
	}
	return nil
}
