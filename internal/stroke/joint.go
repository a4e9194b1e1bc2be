package stroke

import (
	"math"

	"github.com/osuushi/inkmesh/internal/geom"
)

// JoinKind says how an interior sample was joined.
type JoinKind int

const (
	// The bend is too small to see: one point per side.
	JoinCollapsed JoinKind = iota
	// One point on the inside, the miter tip on the outside.
	JoinMiter
	// The bend is too sharp for a miter. The inside keeps both offset points
	// and the outside is bridged with an arc.
	JoinRound
)

func (k JoinKind) String() string {
	switch k {
	case JoinCollapsed:
		return "collapsed"
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	default:
		return "unknown"
	}
}

type JoinEvent struct {
	// Index into the input samples.
	Sample int
	Kind   JoinKind
	// True when the stroke turns left (counterclockwise) here, which puts
	// the outside of the bend on the right.
	LeftTurn bool
}

type TraceFunc func(JoinEvent)

// One interior sample's contribution to the outline.
type joint struct {
	pos       geom.Point
	halfWidth float64

	// Offsets at this sample along the incoming and outgoing normals
	inLeft, inRight   geom.Point
	outLeft, outRight geom.Point

	// Outgoing offsets of the previous sample, where the incoming edges
	// start, and incoming offsets of the next sample, where the outgoing
	// edges end
	prevLeft, prevRight geom.Point
	nextLeft, nextRight geom.Point

	kind     JoinKind
	leftTurn bool

	// Points emitted for each side, both in forward order
	left, right []geom.Point
}

func (b *builder) joints(centerline []centerSample, directions, normals []geom.Vec2) []joint {
	if len(centerline) < 3 {
		return nil
	}
	joints := make([]joint, 0, len(centerline)-2)
	for i := 1; i < len(centerline)-1; i++ {
		prev, s, next := centerline[i-1], centerline[i], centerline[i+1]
		nIn, nOut := normals[i-1], normals[i]
		j := joint{
			pos:       s.pos,
			halfWidth: s.halfWidth,
			inLeft:    s.pos.Add(nIn.Scale(s.halfWidth)),
			inRight:   s.pos.Add(nIn.Scale(-s.halfWidth)),
			outLeft:   s.pos.Add(nOut.Scale(s.halfWidth)),
			outRight:  s.pos.Add(nOut.Scale(-s.halfWidth)),
			prevLeft:  prev.pos.Add(nIn.Scale(prev.halfWidth)),
			prevRight: prev.pos.Add(nIn.Scale(-prev.halfWidth)),
			nextLeft:  next.pos.Add(nOut.Scale(next.halfWidth)),
			nextRight: next.pos.Add(nOut.Scale(-next.halfWidth)),
		}
		b.join(&j, directions[i-1], directions[i])
		if b.opts.Trace != nil {
			b.opts.Trace(JoinEvent{Sample: s.source, Kind: j.kind, LeftTurn: j.leftTurn})
		}
		joints = append(joints, j)
	}
	return joints
}

// join classifies the joint and fills in the points for both sides.
func (b *builder) join(j *joint, dIn, dOut geom.Vec2) {
	cross := dIn.Cross(dOut)
	dot := dIn.Dot(dOut)

	// The offsets of the two segments are sin(angle)*halfWidth apart. Below
	// the arc tolerance there is nothing to join. This also catches the
	// near zero miter denominator of an almost straight joint.
	if dot > 0 && math.Abs(cross)*j.halfWidth <= b.tolerance {
		j.kind = JoinCollapsed
		j.left = []geom.Point{j.inLeft.Lerp(j.outLeft, 0.5)}
		j.right = []geom.Point{j.inRight.Lerp(j.outRight, 0.5)}
		return
	}

	// A full reversal has no turning direction; it is treated as a left turn.
	j.leftTurn = cross >= 0
	sweep := math.Abs(math.Atan2(cross, dot))
	if !j.leftTurn {
		sweep = -sweep
	}

	var (
		innerPrev, innerIn, innerOut, innerNext geom.Point
		outerPrev, outerIn, outerOut, outerNext geom.Point
		inner, outer                            *[]geom.Point
	)
	if j.leftTurn {
		innerPrev, innerIn, innerOut, innerNext = j.prevLeft, j.inLeft, j.outLeft, j.nextLeft
		outerPrev, outerIn, outerOut, outerNext = j.prevRight, j.inRight, j.outRight, j.nextRight
		inner, outer = &j.left, &j.right
	} else {
		innerPrev, innerIn, innerOut, innerNext = j.prevRight, j.inRight, j.outRight, j.nextRight
		outerPrev, outerIn, outerOut, outerNext = j.prevLeft, j.inLeft, j.outLeft, j.nextLeft
		inner, outer = &j.right, &j.left
	}

	miter, ok := geom.SegmentIntersection(innerPrev, innerIn, innerOut, innerNext)
	if !ok {
		// The bend is too sharp for the segment lengths; the inner edges
		// pass each other without meeting.
		j.kind = JoinRound
		*inner = []geom.Point{innerIn, innerOut}
		*outer = b.roundJoin(j.pos, outerIn, outerOut, sweep)
		return
	}

	*inner = []geom.Point{miter}
	tip, _, _, ok := geom.LineIntersection(outerPrev, outerIn, outerOut, outerNext)
	if ok && tip.Distance(j.pos) <= b.opts.miterLimit()*j.halfWidth {
		j.kind = JoinMiter
		*outer = []geom.Point{tip}
		return
	}
	j.kind = JoinRound
	*outer = b.roundJoin(j.pos, outerIn, outerOut, sweep)
}

// roundJoin bridges from outerIn to outerOut with an arc around the sample.
// The ends are pinned to the exact offset points.
func (b *builder) roundJoin(center, outerIn, outerOut geom.Point, sweep float64) []geom.Point {
	arc := geom.Arc(center, outerIn.Sub(center), sweep, b.tolerance)
	if len(arc) == 1 {
		return arc
	}
	arc[0] = outerIn
	arc[len(arc)-1] = outerOut
	return arc
}
