// Package earclip triangulates a simple polygon by repeatedly cutting off ears.
//
// The polygon's vertices live in an arena of nodes linked into a circular
// list by arena slot. Cutting an ear relinks the ear's neighbours to each
// other, so nothing is ever moved or freed until the whole arena is dropped at
// the end of the call.
//
// Nodes that are not convex are also kept in a coarse grid, since they are the
// only ones that can spoil an ear. An ear test looks at the grid cells its
// triangle covers, and a rejected candidate remembers the node that spoiled it
// until that node turns convex or is cut.
//
// Any winding is accepted. The arena is always linked counterclockwise, so a
// positive turn (Convex) means the interior angle is below 180 degrees.
//
// Self intersecting input is not detected. It still produces N-2 triangles,
// some of which will overlap.
package earclip

import (
	"github.com/osuushi/inkmesh/internal/geom"
	"github.com/osuushi/inkmesh/internal/logx"
)

type direction int

const (
	forward direction = iota
	reverse
)

func (d direction) flip() direction {
	if d == forward {
		return reverse
	}
	return forward
}

// Step describes one emitted triangle, for tracing.
type Step struct {
	Number   int
	Triangle geom.Triangle
	// The ear came from the fallback rather than passing the ear test.
	Desperate bool
}

type TraceFunc func(Step)

type Option func(*triangulator)

// WithTrace calls fn for every triangle as it is emitted.
func WithTrace(fn TraceFunc) Option {
	return func(t *triangulator) {
		t.trace = fn
	}
}

// Triangulate returns exactly len(coords)-2 triangles indexing into coords, or
// nil when there are fewer than three points.
func Triangulate(coords []geom.Point, opts ...Option) []geom.Triangle {
	if len(coords) < 3 {
		return nil
	}
	t := newTriangulator(coords)
	for _, opt := range opts {
		opt(t)
	}
	return t.run()
}

type triangulator struct {
	coords    []geom.Point
	list      *nodeList
	triangles []geom.Triangle
	trace     TraceFunc

	cursor    int32
	direction direction

	// Full ear tests run, and candidate points checked against a triangle
	earTests, pointTests int
}

func newTriangulator(coords []geom.Point) *triangulator {
	return &triangulator{
		coords:    coords,
		list:      newNodeList(coords),
		triangles: make([]geom.Triangle, 0, len(coords)-2),
		direction: forward,
	}
}

func (t *triangulator) run() []geom.Triangle {
	for t.list.remaining > 3 {
		ear, desperate := t.findEar()
		t.cut(ear, desperate)
	}

	// Whatever is left is the final triangle, ear or not
	n := t.list.nodes[t.cursor]
	t.emit(geom.Triangle{t.list.nodes[n.prev].index, n.index, t.list.nodes[n.next].index}, false)

	if len(t.triangles) != len(t.coords)-2 {
		geom.Fatalf("emitted %d triangles for %d points", len(t.triangles), len(t.coords))
	}
	logx.Logger().Debug("earclip: done",
		"points", len(t.coords),
		"earTests", t.earTests,
		"pointTests", t.pointTests)
	return t.triangles
}

// findEar walks the list from the cursor in the current direction, visiting
// each remaining node once, and returns the first valid ear. If there is none
// (only possible for degenerate or self touching input) it settles for the
// first node that is not concave, and failing that, the last node visited.
func (t *triangulator) findEar() (ear int32, desperate bool) {
	fallback := int32(-1)
	current := t.cursor
	for i := 0; i < t.list.remaining; i++ {
		if t.list.nodes[current].sign != geom.Concave {
			if t.isEar(current) {
				return current, false
			}
			if fallback < 0 {
				fallback = current
			}
		}
		if i < t.list.remaining-1 {
			current = t.step(current, t.direction)
		}
	}
	if fallback < 0 {
		fallback = current
	}
	logx.Logger().Debug("earclip: no valid ear, using fallback",
		"remaining", t.list.remaining,
		"sign", t.list.nodes[fallback].sign.String())
	return fallback, true
}

// A candidate is an ear if no other remaining vertex is inside or on the
// triangle it forms with its neighbours. Only non-convex vertices can be
// inside, so only the reflex index near the triangle is searched.
func (t *triangulator) isEar(slot int32) bool {
	nodes := t.list.nodes
	n := &nodes[slot]
	if n.blocker >= 0 && t.list.reflex.contains(n.blocker) {
		return false
	}

	t.earTests++
	v1 := t.coords[nodes[n.prev].index]
	v2 := t.coords[n.index]
	v3 := t.coords[nodes[n.next].index]
	lo := geom.Point{X: min(v1.X, v2.X, v3.X), Y: min(v1.Y, v2.Y, v3.Y)}
	hi := geom.Point{X: max(v1.X, v2.X, v3.X), Y: max(v1.Y, v2.Y, v3.Y)}

	n.blocker = -1
	t.list.reflex.query(lo, hi, func(other int32) bool {
		if other == slot || other == n.prev || other == n.next {
			return true
		}
		t.pointTests++
		if geom.InTriangle(v1, v2, v3, t.coords[nodes[other].index]) {
			n.blocker = other
			return false
		}
		return true
	})
	return n.blocker < 0
}

// cut emits the ear's triangle, unlinks it, and moves the cursor on. The
// search sweeps back and forth: when the node the cursor lands on is not
// convex, it takes one more step and the next search runs the other way. This
// keeps adversarial input from turning into one long fan of slivers.
func (t *triangulator) cut(slot int32, desperate bool) {
	nodes := t.list.nodes
	n := nodes[slot]
	t.emit(geom.Triangle{nodes[n.prev].index, n.index, nodes[n.next].index}, desperate)

	prev, next := n.prev, n.next
	t.list.unlink(slot)
	t.list.classify(prev)
	t.list.classify(next)
	nodes[prev].blocker = -1
	nodes[next].blocker = -1

	var start int32
	if t.direction == forward {
		start = nodes[next].next
	} else {
		start = nodes[prev].prev
	}
	if nodes[start].sign != geom.Convex {
		start = t.step(start, t.direction)
		t.direction = t.direction.flip()
	}
	t.cursor = start
}

func (t *triangulator) step(slot int32, d direction) int32 {
	if d == forward {
		return t.list.nodes[slot].next
	}
	return t.list.nodes[slot].prev
}

func (t *triangulator) emit(tri geom.Triangle, desperate bool) {
	t.triangles = append(t.triangles, tri)
	if t.trace != nil {
		t.trace(Step{Number: len(t.triangles), Triangle: tri, Desperate: desperate})
	}
}
