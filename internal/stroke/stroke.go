// Package stroke turns a pen stroke, recorded as a run of pressure weighted
// samples, into a single closed outline polygon.
//
// # Algorithm Overview
//
// The outline is built from two offset chains, one on each side of the
// centerline, at half the local width:
//  1. Start cap, from the right hand corner around the back to the left
//  2. Left chain, forward
//  3. End cap, from the left hand corner around the front to the right
//  4. Right chain, backward, returning to where the start cap began
//
// At every interior sample the incoming and outgoing segments are offset
// separately and then joined: nearly straight joints collapse to one point
// per side, moderate bends get a miter, and sharp bends fall back to a round
// join on the outside.
//
// The outline is clockwise for a y-up coordinate system and has no duplicated
// closing point.
package stroke

import (
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/inkmesh/internal/geom"
	"github.com/osuushi/inkmesh/internal/logx"
)

// Sample is one recorded input point. Pressure is usually in [0,1] but any
// non-negative weight works; negative values count as zero.
type Sample struct {
	geom.Point
	Pressure float64
}

// CapStyle specifies the shape of stroke endpoints.
type CapStyle int

const (
	// CapRound ends the stroke with a semicircle of the local width.
	CapRound CapStyle = iota
	// CapFlat ends the stroke exactly at the endpoint.
	CapFlat
)

func (c CapStyle) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapFlat:
		return "flat"
	default:
		return "unknown"
	}
}

func ParseCapStyle(s string) (CapStyle, error) {
	switch s {
	case "round":
		return CapRound, nil
	case "flat":
		return CapFlat, nil
	}
	return 0, errors.Errorf("unknown cap style %q", s)
}

const (
	// Chordal error allowed on arcs at a subdivision budget of 1, in the same
	// units as the samples.
	DefaultMaxError = 0.25
	// How far a miter tip may reach from its sample, in half widths.
	DefaultMiterLimit = 4.0
)

// Options defines the style of the stroke.
type Options struct {
	// Width at pressure 1.
	Width float64
	Cap   CapStyle
	// Subdivisions is the curve subdivision budget. The arc tolerance is
	// MaxError divided by this, so larger values give smoother caps and joins
	// at a higher vertex cost. Values below 1 count as 1.
	Subdivisions float64
	// MaxError is the arc tolerance before the budget is applied. Zero means
	// DefaultMaxError.
	MaxError float64
	// Zero means DefaultMiterLimit.
	MiterLimit float64
	// Trace, if set, is called once per interior joint.
	Trace TraceFunc
}

func DefaultOptions() Options {
	return Options{
		Width:        1,
		Cap:          CapRound,
		Subdivisions: 1,
		MaxError:     DefaultMaxError,
		MiterLimit:   DefaultMiterLimit,
	}
}

// Tolerance is the chordal error allowed when tessellating arcs.
func (o Options) Tolerance() float64 {
	maxError := o.MaxError
	if maxError <= 0 {
		maxError = DefaultMaxError
	}
	return maxError / math.Max(o.Subdivisions, 1)
}

func (o Options) miterLimit() float64 {
	if o.MiterLimit <= 0 {
		return DefaultMiterLimit
	}
	return o.MiterLimit
}

// BuildOutline returns the closed outline of the stroke. No samples gives no
// outline, a single sample (or a run of samples at one position) gives a
// circle, and two give a capsule.
func BuildOutline(samples []Sample, opts Options) []geom.Point {
	b := &builder{opts: opts, tolerance: opts.Tolerance()}
	centerline := b.merge(samples)

	var outline []geom.Point
	switch len(centerline) {
	case 0:
		return nil
	case 1:
		outline = b.dot(centerline[0])
	default:
		outline = b.outline(centerline)
	}

	outline = removeDuplicates(outline)
	for i, p := range outline {
		if !p.IsFinite() {
			geom.Fatalf("outline point %d is not finite: %v", i, p)
		}
	}
	return outline
}

type builder struct {
	opts      Options
	tolerance float64
}

// A centerline point after coincident samples have been merged.
type centerSample struct {
	pos       geom.Point
	halfWidth float64
	// Index of the first input sample merged into this one.
	source int
}

// merge drops samples that sit on top of the previous one, so every segment
// of the centerline has a direction. A merged sample keeps the widest of the
// widths it absorbed, so a stroke ending in a pile of samples still gets a
// cap of the right size.
func (b *builder) merge(samples []Sample) []centerSample {
	centerline := make([]centerSample, 0, len(samples))
	for i, s := range samples {
		halfWidth := b.opts.Width * math.Max(s.Pressure, 0) / 2
		if n := len(centerline); n > 0 && centerline[n-1].pos.Near(s.Point) {
			centerline[n-1].halfWidth = math.Max(centerline[n-1].halfWidth, halfWidth)
			continue
		}
		centerline = append(centerline, centerSample{pos: s.Point, halfWidth: halfWidth, source: i})
	}
	if merged := len(samples) - len(centerline); merged > 0 {
		logx.Logger().Debug("stroke: merged coincident samples", "merged", merged, "remaining", len(centerline))
	}
	return centerline
}

func (b *builder) outline(centerline []centerSample) []geom.Point {
	normals := make([]geom.Vec2, len(centerline)-1)
	directions := make([]geom.Vec2, len(centerline)-1)
	for i := range normals {
		direction, ok := centerline[i+1].pos.Sub(centerline[i].pos).Normalize()
		if !ok {
			geom.Fatalf("zero length segment %d survived merging", i)
		}
		directions[i] = direction
		normals[i] = direction.Perp()
	}

	joints := b.joints(centerline, directions, normals)

	first, last := centerline[0], centerline[len(centerline)-1]
	outline := b.startCap(first, normals[0])
	for _, j := range joints {
		outline = append(outline, j.left...)
	}
	outline = append(outline, b.endCap(last, normals[len(normals)-1])...)
	for i := len(joints) - 1; i >= 0; i-- {
		right := joints[i].right
		for k := len(right) - 1; k >= 0; k-- {
			outline = append(outline, right[k])
		}
	}
	return outline
}

// Drops points that repeat their predecessor, including a last point that
// repeats the first.
func removeDuplicates(points []geom.Point) []geom.Point {
	if len(points) == 0 {
		return points
	}
	result := points[:1]
	for _, p := range points[1:] {
		if !p.Near(result[len(result)-1]) {
			result = append(result, p)
		}
	}
	for len(result) > 1 && result[len(result)-1].Near(result[0]) {
		result = result[:len(result)-1]
	}
	return result
}
