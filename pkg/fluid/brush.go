package fluid

import "math"

// AddDensityRadius adds amount with Gaussian falloff over a disc of the given
// radius around (cx, cy). Cells outside the interior are skipped rather than
// clamped so the brush keeps its shape near walls. A non-positive radius
// behaves like AddDensity.
func (f *Fluid) AddDensityRadius(cx, cy int, amount float64, radius int) {
	if radius <= 0 {
		f.AddDensity(cx, cy, amount)
		return
	}
	f.brush(cx, cy, radius, func(i, j int, w float64) {
		f.AddDensity(i, j, amount*w)
	})
}

// AddVelocityRadius is AddDensityRadius for velocity impulses.
func (f *Fluid) AddVelocityRadius(cx, cy int, dx, dy float64, radius int) {
	if radius <= 0 {
		f.AddVelocity(cx, cy, dx, dy)
		return
	}
	f.brush(cx, cy, radius, func(i, j int, w float64) {
		f.AddVelocity(i, j, dx*w, dy*w)
	})
}

func (f *Fluid) brush(cx, cy, radius int, apply func(i, j int, w float64)) {
	r2 := float64(radius * radius)
	for i := max(cx-radius, 1); i <= min(cx+radius, f.size-2); i++ {
		for j := max(cy-radius, 1); j <= min(cy+radius, f.size-2); j++ {
			dx := float64(i - cx)
			dy := float64(j - cy)
			dist2 := dx*dx + dy*dy
			if dist2 > r2 {
				continue
			}
			// exp(-3 * dist2/r2) leaves about 5% strength at the rim
			apply(i, j, math.Exp(-3*dist2/r2))
		}
	}
}

// SampleVelocity returns the bilinearly interpolated velocity at the
// fractional cell position (x, y), clamped like advection backtraces.
func (f *Fluid) SampleVelocity(x, y float64) (float64, float64) {
	return f.sample(f.u.cur, x, y), f.sample(f.v.cur, x, y)
}
