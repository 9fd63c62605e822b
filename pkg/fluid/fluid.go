package fluid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultIterations is the number of Gauss-Seidel sweeps used by the
// diffusion and pressure solves.
const DefaultIterations = 20

// Fluid is a stable-fluids solver on a square grid of Size() x Size() cells.
// The outermost ring of cells is a ghost layer owned by the boundary pass;
// sources only ever land in the interior [1, Size()-2].
//
// A Fluid is not safe for concurrent use. Producers running on other
// goroutines should go through Queue().
type Fluid struct {
	size     int
	numCells int

	dt        float64
	viscosity float64
	diffusion float64

	iterations  int
	dispersion  float64
	confinement float64

	density fieldPair
	u, v    fieldPair
	p, div  []float64
	curl    []float64
	queue   SourceQueue
	tick    uint64
}

// Option tunes a Fluid at construction time.
type Option func(*Fluid)

// WithIterations sets the number of relaxation sweeps per solve.
func WithIterations(n int) Option {
	return func(f *Fluid) { f.iterations = n }
}

// WithDispersion removes the fraction r of every density cell each step.
func WithDispersion(r float64) Option {
	return func(f *Fluid) { f.dispersion = r }
}

// WithConfinement enables vorticity confinement with strength eps. The force
// adds energy every step; strengths much above 1/(dt*size) can run away.
func WithConfinement(eps float64) Option {
	return func(f *Fluid) { f.confinement = eps }
}

// New builds a zeroed simulation with size cells per axis (ghost ring
// included), time step dt and the given viscosity and diffusion rates.
func New(size int, dt, viscosity, diffusion float64, opts ...Option) (*Fluid, error) {
	f := &Fluid{
		size:       size,
		dt:         dt,
		viscosity:  viscosity,
		diffusion:  diffusion,
		iterations: DefaultIterations,
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	f.numCells = size * size
	f.density = newFieldPair(f.numCells)
	f.u = newFieldPair(f.numCells)
	f.v = newFieldPair(f.numCells)
	f.p = make([]float64, f.numCells)
	f.div = make([]float64, f.numCells)
	if f.confinement > 0 {
		f.curl = make([]float64, f.numCells)
	}
	return f, nil
}

func (f *Fluid) validate() error {
	switch {
	case f.size < 3:
		return fmt.Errorf("%w: size %d, need at least 3", ErrInvalidConfiguration, f.size)
	case !finite(f.dt) || f.dt <= 0:
		return fmt.Errorf("%w: time step %v must be positive", ErrInvalidConfiguration, f.dt)
	case !finite(f.viscosity) || f.viscosity < 0:
		return fmt.Errorf("%w: viscosity %v must be non-negative", ErrInvalidConfiguration, f.viscosity)
	case !finite(f.diffusion) || f.diffusion < 0:
		return fmt.Errorf("%w: diffusion %v must be non-negative", ErrInvalidConfiguration, f.diffusion)
	case f.iterations < 1:
		return fmt.Errorf("%w: %d iterations, need at least 1", ErrInvalidConfiguration, f.iterations)
	case !finite(f.dispersion) || f.dispersion < 0 || f.dispersion >= 1:
		return fmt.Errorf("%w: dispersion %v outside [0, 1)", ErrInvalidConfiguration, f.dispersion)
	case !finite(f.confinement) || f.confinement < 0:
		return fmt.Errorf("%w: confinement %v must be non-negative", ErrInvalidConfiguration, f.confinement)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Size returns the number of cells per axis, ghost ring included.
func (f *Fluid) Size() int { return f.size }

func (f *Fluid) Dt() float64        { return f.dt }
func (f *Fluid) Viscosity() float64 { return f.viscosity }
func (f *Fluid) Diffusion() float64 { return f.diffusion }
func (f *Fluid) Iterations() int    { return f.iterations }

// Tick returns the number of completed steps.
func (f *Fluid) Tick() uint64 { return f.tick }

// Queue returns the staging queue drained at the start of every Step.
func (f *Fluid) Queue() *SourceQueue { return &f.queue }

// AddDensity adds amount at (x, y). Coordinates outside the interior are
// clamped to the nearest interior cell; non-finite amounts are ignored.
func (f *Fluid) AddDensity(x, y int, amount float64) {
	if !finite(amount) {
		return
	}
	f.density.cur[f.ix(f.clampInterior(x), f.clampInterior(y))] += amount
}

// AddVelocity adds (dx, dy) to the velocity at (x, y), clamped like AddDensity.
func (f *Fluid) AddVelocity(x, y int, dx, dy float64) {
	if !finite(dx) || !finite(dy) {
		return
	}
	cell := f.ix(f.clampInterior(x), f.clampInterior(y))
	f.u.cur[cell] += dx
	f.v.cur[cell] += dy
}

// Step advances the simulation by one time step: queued sources are
// applied, then velocity is diffused, projected, self-advected and
// projected again, then density is diffused and advected along the new
// velocity.
func (f *Fluid) Step() {
	f.flushSources()
	f.velocityStep()
	f.densityStep()
	f.tick++
}

func (f *Fluid) velocityStep() {
	f.u.swap()
	f.v.swap()
	f.diffuse(xBoundary, f.u.cur, f.u.prev, f.viscosity)
	f.diffuse(yBoundary, f.v.cur, f.v.prev, f.viscosity)
	f.project(f.u.cur, f.v.cur, f.p, f.div)

	f.u.swap()
	f.v.swap()
	f.advect(xBoundary, f.u.cur, f.u.prev, f.u.prev, f.v.prev)
	f.advect(yBoundary, f.v.cur, f.v.prev, f.u.prev, f.v.prev)
	if f.confinement > 0 {
		f.applyVorticityConfinement()
	}
	f.project(f.u.cur, f.v.cur, f.p, f.div)
}

func (f *Fluid) densityStep() {
	f.density.swap()
	f.diffuse(scalarBoundary, f.density.cur, f.density.prev, f.diffusion)
	f.density.swap()
	f.advect(scalarBoundary, f.density.cur, f.density.prev, f.u.cur, f.v.cur)
	if f.dispersion > 0 {
		floats.Scale(1-f.dispersion, f.density.cur)
	}
}

// Reset zeroes every field and drops queued sources. The tick counter keeps
// running.
func (f *Fluid) Reset() {
	f.density.reset()
	f.u.reset()
	f.v.reset()
	fill(f.p, 0)
	fill(f.div, 0)
	fill(f.curl, 0)
	f.queue.drain()
}
