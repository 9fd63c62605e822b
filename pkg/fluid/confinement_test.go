package fluid

import "testing"

// Test that the vorticity confinement force adds velocity at regions with curl.
func TestApplyVorticityConfinement(t *testing.T) {
	f := mustNew(t, 8, 0.1, 0, 0, WithConfinement(5))

	// Create a small 2x2 vortex in the middle of the grid.
	f.AddVelocity(4, 3, 1, 0)
	f.AddVelocity(3, 4, -1, 0)
	f.AddVelocity(3, 3, 0, 1)
	f.AddVelocity(4, 4, 0, -1)

	idx := f.ix(2, 3) // next to the vortex, where |curl| has a gradient
	u0 := f.u.cur[idx]
	v0 := f.v.cur[idx]
	f.applyVorticityConfinement()

	if f.u.cur[idx] == u0 && f.v.cur[idx] == v0 {
		t.Fatal("confinement force did not modify velocities")
	}
	assertFinite(t, f)
}

func TestVorticitySign(t *testing.T) {
	f := mustNew(t, 12, 0.1, 0, 0)
	c := 6
	// Counter-clockwise rotation around (c, c): v grows with x, u shrinks with y.
	for i := 1; i < f.Size()-1; i++ {
		for j := 1; j < f.Size()-1; j++ {
			f.AddVelocity(i, j, -float64(j-c), float64(i-c))
		}
	}
	w, err := f.Vorticity().Value(c, c)
	if err != nil {
		t.Fatal(err)
	}
	if w <= 0 {
		t.Errorf("expected positive curl for counter-clockwise rotation, got %v", w)
	}
}

func TestConfinementDisabledByDefault(t *testing.T) {
	f := mustNew(t, 8, 0.1, 0, 0)
	if f.curl != nil {
		t.Error("curl buffer allocated without confinement")
	}
}
