package view

// DragGain scales pointer movement in pixels into velocity impulses.
const DragGain = 5.0

// ToCell maps a pixel position on a grid drawn at scale pixels per cell to
// a cell, clamped to [0, size-1].
func ToCell(px, py, scale, size int) (int, int) {
	x := min(max(px/scale, 0), size-1)
	y := min(max(py/scale, 0), size-1)
	return x, y
}

// Pointer tracks the previous cursor position so drags can be turned into
// velocity.
type Pointer struct {
	x, y    int
	tracked bool
}

// Move records the new position and returns the movement since the last
// call while a button was held. The first call of a drag reports no
// movement.
func (p *Pointer) Move(x, y int, down bool) (dx, dy int) {
	if down && p.tracked {
		dx, dy = x-p.x, y-p.y
	}
	p.x, p.y = x, y
	p.tracked = down
	return dx, dy
}
