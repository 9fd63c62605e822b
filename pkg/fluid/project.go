package fluid

// project removes the divergent part of (u, v) by solving a Poisson
// equation for pressure and subtracting its gradient. p and div are scratch
// buffers; p keeps the last pressure solution for Pressure().
func (f *Fluid) project(u, v, p, div []float64) {
	n := f.size
	h := 1 / float64(n-2)

	parallelRange(1, n-1, func(i int) {
		for j := 1; j < n-1; j++ {
			div[i*n+j] = -0.5 * h * (u[(i+1)*n+j] - u[(i-1)*n+j] +
				v[i*n+j+1] - v[i*n+j-1])
			p[i*n+j] = 0
		}
	})
	f.setBoundary(scalarBoundary, div)
	f.setBoundary(scalarBoundary, p)

	f.linearSolve(scalarBoundary, p, div, 1, 4)

	parallelRange(1, n-1, func(i int) {
		for j := 1; j < n-1; j++ {
			u[i*n+j] -= 0.5 * (p[(i+1)*n+j] - p[(i-1)*n+j]) / h
			v[i*n+j] -= 0.5 * (p[i*n+j+1] - p[i*n+j-1]) / h
		}
	})
	f.setBoundary(xBoundary, u)
	f.setBoundary(yBoundary, v)
}
