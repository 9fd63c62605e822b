package fluid

import "math"

// applyVorticityConfinement adds eps * (N x w) * dt to the velocity, where w
// is the curl and N the normalised gradient of |w|. It feeds back the small
// eddies that advection smears out.
func (f *Fluid) applyVorticityConfinement() {
	n := f.size
	curl := f.curl
	f.computeCurl(curl)
	f.setBoundary(scalarBoundary, curl)

	u, v := f.u.cur, f.v.cur
	scale := 0.5 * float64(n-2)
	strength := f.confinement * f.dt
	const eps = 1e-5

	parallelRange(1, n-1, func(i int) {
		for j := 1; j < n-1; j++ {
			gx := scale * (math.Abs(curl[(i+1)*n+j]) - math.Abs(curl[(i-1)*n+j]))
			gy := scale * (math.Abs(curl[i*n+j+1]) - math.Abs(curl[i*n+j-1]))
			mag := math.Hypot(gx, gy) + eps
			gx /= mag
			gy /= mag

			w := curl[i*n+j]
			u[i*n+j] += strength * gy * w
			v[i*n+j] -= strength * gx * w
		}
	})
	f.setBoundary(xBoundary, u)
	f.setBoundary(yBoundary, v)
}
