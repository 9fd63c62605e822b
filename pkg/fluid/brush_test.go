package fluid

import (
	"math"
	"testing"
)

func TestAddVelocityRadius(t *testing.T) {
	f := mustNew(t, 22, 0.1, 0, 0)
	cx, cy := 10, 10
	f.AddVelocityRadius(cx, cy, 5.0, 0.0, 3)

	u := func(i, j int) float64 { return f.u.cur[f.ix(i, j)] }

	// Center should have full force
	if u(cx, cy) != 5.0 {
		t.Errorf("center should have full force, got %f", u(cx, cy))
	}

	// Edge of radius should have reduced force
	edgeU := u(cx+3, cy)
	if edgeU >= u(cx, cy) {
		t.Errorf("edge force should be less than center: edge=%f center=%f", edgeU, u(cx, cy))
	}
	if edgeU <= 0 {
		t.Errorf("edge force should be > 0, got %f", edgeU)
	}

	// Outside radius should have zero force
	if u(cx+4, cy) != 0 {
		t.Errorf("outside radius should be zero, got %f", u(cx+4, cy))
	}
	if f.v.cur[f.ix(cx, cy)] != 0 {
		t.Errorf("y component should be untouched, got %f", f.v.cur[f.ix(cx, cy)])
	}
}

func TestAddDensityRadiusSkipsGhostRing(t *testing.T) {
	f := mustNew(t, 10, 0.1, 0, 0)
	f.AddDensityRadius(1, 1, 1, 3)

	d := f.Density()
	for k := 0; k < f.Size(); k++ {
		if v, _ := d.Value(0, k); v != 0 {
			t.Errorf("ghost cell (0,%d) = %v", k, v)
		}
		if v, _ := d.Value(k, 0); v != 0 {
			t.Errorf("ghost cell (%d,0) = %v", k, v)
		}
	}
	if v, _ := d.Value(1, 1); v != 1 {
		t.Errorf("brush center = %v, want 1", v)
	}
	// Falloff is symmetric
	a, _ := d.Value(3, 1)
	b, _ := d.Value(1, 3)
	if a != b || a <= 0 {
		t.Errorf("expected symmetric positive falloff, got %v and %v", a, b)
	}
}

func TestBrushWithZeroRadiusIsSingleCell(t *testing.T) {
	f := mustNew(t, 8, 0.1, 0, 0)
	f.AddDensityRadius(3, 3, 2, 0)
	f.AddVelocityRadius(3, 3, 1, 1, -1)
	if f.TotalDensity() != 2 {
		t.Errorf("TotalDensity() = %v, want 2", f.TotalDensity())
	}
	if u, v, _ := f.Velocity().Value(3, 3); u != 1 || v != 1 {
		t.Errorf("velocity at (3,3) = (%v,%v), want (1,1)", u, v)
	}
}

func TestSampleVelocity(t *testing.T) {
	f := mustNew(t, 8, 0.1, 0, 0)
	f.AddVelocity(3, 3, 2, 0)
	f.AddVelocity(4, 3, 4, 0)

	u, v := f.SampleVelocity(3.5, 3)
	if math.Abs(u-3) > 1e-12 || v != 0 {
		t.Errorf("SampleVelocity(3.5,3) = (%v,%v), want (3,0)", u, v)
	}

	// Far outside the grid the sample is clamped, never out of bounds.
	u, v = f.SampleVelocity(-100, 1e9)
	if !finite(u) || !finite(v) {
		t.Errorf("clamped sample not finite: (%v,%v)", u, v)
	}
}
