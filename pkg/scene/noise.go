// Package scene prepares initial states for a simulation.
package scene

import (
	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 24.0 // cells per noise period
)

// Target receives the seeded impulses; *fluid.Fluid and *fluid.SourceQueue
// both satisfy it.
type Target interface {
	AddDensity(x, y int, amount float64)
	AddVelocity(x, y int, dx, dy float64)
}

// SeedNoise deposits a perlin density pattern over the interior of a
// size x size grid, plus a swirl taken from the curl of the same noise,
// which is divergence free by construction. Equal seeds give equal scenes.
func SeedNoise(t Target, size int, seed int64, amount, swirl float64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	noise := func(i, j int) float64 {
		return p.Noise2D(float64(i)/noiseScale, float64(j)/noiseScale)
	}

	for i := 1; i < size-1; i++ {
		for j := 1; j < size-1; j++ {
			if d := noise(i, j); d > 0 {
				t.AddDensity(i, j, amount*d)
			}
			// u = dN/dy, v = -dN/dx
			u := 0.5 * (noise(i, j+1) - noise(i, j-1)) * noiseScale
			v := -0.5 * (noise(i+1, j) - noise(i-1, j)) * noiseScale
			t.AddVelocity(i, j, swirl*u, swirl*v)
		}
	}
}
