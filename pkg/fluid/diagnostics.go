package fluid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TotalDensity returns the density summed over the interior cells.
func (f *Fluid) TotalDensity() float64 {
	return f.Density().InteriorSum()
}

// divergence writes the central-difference divergence of (u, v) for every
// interior cell into dst, in grid units.
func (f *Fluid) divergence(dst, u, v []float64) {
	n := f.size
	scale := 0.5 * float64(n-2)
	parallelRange(1, n-1, func(i int) {
		for j := 1; j < n-1; j++ {
			dst[i*n+j] = scale * (u[(i+1)*n+j] - u[(i-1)*n+j] +
				v[i*n+j+1] - v[i*n+j-1])
		}
	})
}

// MeanSquaredDivergence returns the mean of div(v)^2 over interior cells.
func (f *Fluid) MeanSquaredDivergence() float64 {
	div := make([]float64, f.numCells)
	f.divergence(div, f.u.cur, f.v.cur)
	interior := (f.size - 2) * (f.size - 2)
	return floats.Dot(div, div) / float64(interior)
}

// MaxDivergence returns the maximum absolute divergence over interior cells.
func (f *Fluid) MaxDivergence() float64 {
	div := make([]float64, f.numCells)
	f.divergence(div, f.u.cur, f.v.cur)
	return floats.Norm(div, math.Inf(1))
}

// Vorticity returns the curl dv/dx - du/dy at every interior cell.
func (f *Fluid) Vorticity() ScalarField {
	vals := make([]float64, f.numCells)
	f.computeCurl(vals)
	return newScalarField(f.size, vals)
}

func (f *Fluid) computeCurl(dst []float64) {
	n := f.size
	u, v := f.u.cur, f.v.cur
	scale := 0.5 * float64(n-2)
	parallelRange(1, n-1, func(i int) {
		for j := 1; j < n-1; j++ {
			dvdx := v[(i+1)*n+j] - v[(i-1)*n+j]
			dudy := u[i*n+j+1] - u[i*n+j-1]
			dst[i*n+j] = scale * (dvdx - dudy)
		}
	})
}

// VelocityMagnitude returns |v| at every cell.
func (f *Fluid) VelocityMagnitude() ScalarField {
	vals := make([]float64, f.numCells)
	for k := range vals {
		vals[k] = math.Hypot(f.u.cur[k], f.v.cur[k])
	}
	return newScalarField(f.size, vals)
}
