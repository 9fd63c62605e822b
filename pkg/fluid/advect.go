package fluid

import "math"

// advect moves d0 along (u, v) for one time step into d using
// semi-Lagrangian backtracing. Each destination cell only reads from d0, u
// and v, so rows are split across workers.
func (f *Fluid) advect(b boundaryKind, d, d0, u, v []float64) {
	n := f.size
	dt0 := f.dt * float64(n-2)

	parallelRange(1, n-1, func(i int) {
		for j := 1; j < n-1; j++ {
			x := float64(i) - dt0*u[i*n+j]
			y := float64(j) - dt0*v[i*n+j]
			d[i*n+j] = f.sample(d0, x, y)
		}
	})
	f.setBoundary(b, d)
}

// sample bilinearly interpolates field at the fractional cell position
// (x, y), clamped into [0.5, size-1.5] on both axes.
func (f *Fluid) sample(field []float64, x, y float64) float64 {
	n := f.size
	hi := float64(n) - 1.5
	x = max(min(x, hi), 0.5)
	y = max(min(y, hi), 0.5)

	i0 := int(math.Floor(x))
	i1 := i0 + 1
	j0 := int(math.Floor(y))
	j1 := j0 + 1

	s1 := x - float64(i0)
	s0 := 1 - s1
	t1 := y - float64(j0)
	t0 := 1 - t1

	return s0*(t0*field[i0*n+j0]+t1*field[i0*n+j1]) +
		s1*(t0*field[i1*n+j0]+t1*field[i1*n+j1])
}
