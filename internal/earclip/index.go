package earclip

import (
	"math"

	"github.com/osuushi/inkmesh/internal/geom"
)

// reflexIndex is a uniform grid over the polygon's bounding box holding every
// node that is not convex. Only those nodes can block an ear, so the ear test
// asks the grid for the ones near its triangle instead of walking the list.
type reflexIndex struct {
	minX, minY     float64
	scaleX, scaleY float64
	side           int
	cells          [][]int32

	// Per arena slot: the cell holding the node or -1, and its position there
	cell []int32
	pos  []int32
}

// newReflexIndex sizes the grid at about one cell per vertex. points is
// indexed by arena slot.
func newReflexIndex(points []geom.Point) *reflexIndex {
	n := len(points)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	side := int(math.Sqrt(float64(n)))
	if side < 1 {
		side = 1
	}
	r := &reflexIndex{
		minX:   minX,
		minY:   minY,
		scaleX: gridScale(side, maxX-minX),
		scaleY: gridScale(side, maxY-minY),
		side:   side,
		cells:  make([][]int32, side*side),
		cell:   make([]int32, n),
		pos:    make([]int32, n),
	}
	for i := range r.cell {
		r.cell[i] = -1
	}
	return r
}

// A flat or unbounded extent puts everything in one row (or column).
func gridScale(side int, extent float64) float64 {
	if !(extent > 0) || math.IsInf(extent, 0) {
		return 0
	}
	return float64(side) / extent
}

func (r *reflexIndex) column(x float64) int {
	return r.clamp(int((x - r.minX) * r.scaleX))
}

func (r *reflexIndex) row(y float64) int {
	return r.clamp(int((y - r.minY) * r.scaleY))
}

func (r *reflexIndex) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= r.side {
		return r.side - 1
	}
	return i
}

func (r *reflexIndex) contains(slot int32) bool {
	return r.cell[slot] >= 0
}

// update adds or removes the node at p so that it is held exactly when member
// is true.
func (r *reflexIndex) update(slot int32, p geom.Point, member bool) {
	if !member {
		r.remove(slot)
		return
	}
	if r.contains(slot) {
		return
	}
	c := int32(r.row(p.Y)*r.side + r.column(p.X))
	r.cell[slot] = c
	r.pos[slot] = int32(len(r.cells[c]))
	r.cells[c] = append(r.cells[c], slot)
}

func (r *reflexIndex) remove(slot int32) {
	c := r.cell[slot]
	if c < 0 {
		return
	}
	cell := r.cells[c]
	i := r.pos[slot]
	last := cell[len(cell)-1]
	cell[i] = last
	r.pos[last] = i
	r.cells[c] = cell[:len(cell)-1]
	r.cell[slot] = -1
}

// query calls fn for every held node whose cell overlaps the box from lo to
// hi, until fn returns false. Nodes outside the box may be visited too.
func (r *reflexIndex) query(lo, hi geom.Point, fn func(slot int32) bool) {
	col0, col1 := r.column(lo.X), r.column(hi.X)
	for row := r.row(lo.Y); row <= r.row(hi.Y); row++ {
		for col := col0; col <= col1; col++ {
			for _, slot := range r.cells[row*r.side+col] {
				if !fn(slot) {
					return
				}
			}
		}
	}
}
