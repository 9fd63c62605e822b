package fluid

// diffuse relaxes x toward the implicit (backward Euler) solution of
// dx/dt = k * laplacian(x) starting from x0.
func (f *Fluid) diffuse(b boundaryKind, x, x0 []float64, k float64) {
	n := float64(f.size - 2)
	a := f.dt * k * n * n
	f.linearSolve(b, x, x0, a, 1+4*a)
}

// linearSolve runs a fixed number of Gauss-Seidel sweeps over
// x = (x0 + a*(sum of 4 neighbours)) / c. The sweep updates x in place, so
// every cell sees the newest values of the neighbours already visited.
// The iteration count is fixed; there is no convergence check.
func (f *Fluid) linearSolve(b boundaryKind, x, x0 []float64, a, c float64) {
	n := f.size
	invC := 1 / c
	for range f.iterations {
		for i := 1; i < n-1; i++ {
			for j := 1; j < n-1; j++ {
				x[i*n+j] = (x0[i*n+j] + a*(x[(i-1)*n+j]+x[(i+1)*n+j]+
					x[i*n+j-1]+x[i*n+j+1])) * invC
			}
		}
		f.setBoundary(b, x)
	}
}
