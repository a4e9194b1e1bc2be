package earclip

import "github.com/osuushi/inkmesh/internal/geom"

// One polygon vertex while triangulating. prev and next are arena slots, not
// vertex indices; index is the position in the caller's coordinate slice.
type node struct {
	prev, next int32
	index      int
	sign       geom.Sign
	// A non-convex node that was inside this node's ear triangle at the last
	// ear test, or -1. The verdict stands while the blocker stays in the
	// reflex index and this node keeps its neighbours.
	blocker int32
}

type nodeList struct {
	coords    []geom.Point
	nodes     []node
	reflex    *reflexIndex
	remaining int
}

// newNodeList links one node per vertex into a counterclockwise ring. Arena
// slot i always holds the i-th vertex visited, so a clockwise polygon gets
// its indexes assigned in descending order.
func newNodeList(coords []geom.Point) *nodeList {
	n := len(coords)
	list := &nodeList{
		coords:    coords,
		nodes:     make([]node, n),
		remaining: n,
	}

	// The trapezoid sum is negative for counterclockwise input. Zero area
	// input has no orientation to speak of, so it keeps the given order.
	ascending := geom.TrapezoidSum(coords) <= 0
	slotPoints := make([]geom.Point, n)
	for slot := range list.nodes {
		index := slot
		if !ascending {
			index = n - 1 - slot
		}
		list.nodes[slot] = node{
			prev:    int32(geom.CircularIndex(slot-1, n)),
			next:    int32(geom.CircularIndex(slot+1, n)),
			index:   index,
			blocker: -1,
		}
		slotPoints[slot] = coords[index]
	}
	list.reflex = newReflexIndex(slotPoints)
	for slot := range list.nodes {
		list.classify(int32(slot))
	}
	return list
}

// classify recomputes the node's sign and keeps the reflex index in step.
func (l *nodeList) classify(slot int32) {
	n := &l.nodes[slot]
	n.sign = geom.Orientation(
		l.coords[l.nodes[n.prev].index],
		l.coords[n.index],
		l.coords[l.nodes[n.next].index],
	)
	l.reflex.update(slot, l.coords[n.index], n.sign != geom.Convex)
}

// unlink joins the node's neighbours to each other. The node itself keeps its
// stale links but is no longer reachable.
func (l *nodeList) unlink(slot int32) {
	n := l.nodes[slot]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	l.reflex.remove(slot)
	l.remaining--
}
