package fluid

import "testing"

func newBenchFluid(b *testing.B, opts ...Option) *Fluid {
	f, err := New(258, 1.0/120.0, 0.0001, 0.0001, opts...)
	if err != nil {
		b.Fatal(err)
	}
	return f
}

// Baseline: empty 256x256 interior.
func BenchmarkStep(b *testing.B) {
	f := newBenchFluid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Step()
	}
}

// With jet: a column of density and rightward velocity injected every frame.
func BenchmarkStepWithJet(b *testing.B) {
	f := newBenchFluid(b)
	mid := f.Size() / 2
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := mid - 50; j < mid+50; j++ {
			f.AddVelocity(1, j, 4, 0)
			f.AddDensity(1, j, 1)
		}
		f.Step()
	}
}

// Confinement adds a curl pass and an extra boundary sweep.
func BenchmarkStepConfinement(b *testing.B) {
	f := newBenchFluid(b, WithConfinement(2))
	mid := f.Size() / 2
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.AddVelocityRadius(mid, mid, 4, 1, 8)
		f.Step()
	}
}
