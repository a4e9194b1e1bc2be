package geom

// Lengths at or below this are treated as zero. Input coordinates are editor
// units (pixels at 1x zoom), so this is far below anything visible.
const Tolerance = 1e-9

func (p Point) Near(q Point) bool {
	return p.Distance(q) <= Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
