package fluid

// fieldPair holds the current and previous-step buffers of one tracked field.
type fieldPair struct {
	cur, prev []float64
}

func newFieldPair(numCells int) fieldPair {
	return fieldPair{
		cur:  make([]float64, numCells),
		prev: make([]float64, numCells),
	}
}

// swap exchanges the buffers without copying cells.
func (p *fieldPair) swap() {
	p.cur, p.prev = p.prev, p.cur
}

func (p *fieldPair) reset() {
	fill(p.cur, 0)
	fill(p.prev, 0)
}

func fill[T any](slice []T, val T) {
	for i := range slice {
		slice[i] = val
	}
}

// ix maps a cell to its buffer offset. Cells are stored x-major: i is the
// column (x) and j the row (y). No bounds checks.
func (f *Fluid) ix(i, j int) int {
	return i*f.size + j
}

// clampInterior maps any coordinate into [1, size-2], the cells that may
// receive sources.
func (f *Fluid) clampInterior(c int) int {
	return min(max(c, 1), f.size-2)
}
