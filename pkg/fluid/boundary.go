package fluid

type boundaryKind int

const (
	// scalarBoundary mirrors the adjacent interior value (density, pressure).
	scalarBoundary boundaryKind = iota
	// xBoundary negates the x component at the left and right walls.
	xBoundary
	// yBoundary negates the y component at the top and bottom walls.
	yBoundary
)

// setBoundary overwrites the ghost layer of x from its interior neighbours.
// Corners take the average of their two adjacent edge cells.
func (f *Fluid) setBoundary(b boundaryKind, x []float64) {
	last := f.size - 1
	for k := 1; k < last; k++ {
		// top and bottom rows
		if b == yBoundary {
			x[f.ix(k, 0)] = -x[f.ix(k, 1)]
			x[f.ix(k, last)] = -x[f.ix(k, last-1)]
		} else {
			x[f.ix(k, 0)] = x[f.ix(k, 1)]
			x[f.ix(k, last)] = x[f.ix(k, last-1)]
		}

		// left and right columns
		if b == xBoundary {
			x[f.ix(0, k)] = -x[f.ix(1, k)]
			x[f.ix(last, k)] = -x[f.ix(last-1, k)]
		} else {
			x[f.ix(0, k)] = x[f.ix(1, k)]
			x[f.ix(last, k)] = x[f.ix(last-1, k)]
		}
	}

	x[f.ix(0, 0)] = 0.5 * (x[f.ix(1, 0)] + x[f.ix(0, 1)])
	x[f.ix(0, last)] = 0.5 * (x[f.ix(1, last)] + x[f.ix(0, last-1)])
	x[f.ix(last, 0)] = 0.5 * (x[f.ix(last-1, 0)] + x[f.ix(last, 1)])
	x[f.ix(last, last)] = 0.5 * (x[f.ix(last-1, last)] + x[f.ix(last, last-1)])
}
