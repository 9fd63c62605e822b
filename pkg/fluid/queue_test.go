package fluid

import (
	"sync"
	"testing"
)

func TestQueueFlushedAtStep(t *testing.T) {
	f := mustNew(t, 10, 0.01, 0, 0)
	q := f.Queue()

	const producers, perProducer = 8, 50
	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perProducer {
				q.AddDensity(p+1, 4, 0.5)
			}
		}()
	}
	wg.Wait()

	if got := q.Len(); got != producers*perProducer {
		t.Fatalf("Len() = %d, want %d", got, producers*perProducer)
	}
	if f.TotalDensity() != 0 {
		t.Fatal("queued sources applied before Step")
	}

	f.Step()

	if q.Len() != 0 {
		t.Errorf("queue not drained: %d left", q.Len())
	}
	// No flow and no diffusion: every deposit stays where it landed.
	for p := range producers {
		if got := density(t, f, p+1, 4); got != 0.5*perProducer {
			t.Errorf("column %d: density %v, want %v", p+1, got, 0.5*perProducer)
		}
	}
}

func TestQueueClampsLikeDirectInjection(t *testing.T) {
	direct := mustNew(t, 8, 0.05, 0.001, 0.001)
	queued := mustNew(t, 8, 0.05, 0.001, 0.001)

	direct.AddDensity(-4, 3, 2)
	direct.AddVelocity(3, 50, 1, -1)
	queued.Queue().AddDensity(-4, 3, 2)
	queued.Queue().AddVelocity(3, 50, 1, -1)

	direct.Step()
	queued.Step()

	dd, qd := direct.Density().Values(), queued.Density().Values()
	for k := range dd {
		if dd[k] != qd[k] {
			t.Fatalf("offset %d: direct %v, queued %v", k, dd[k], qd[k])
		}
	}
}

func TestQueueAppliesVelocity(t *testing.T) {
	f := mustNew(t, 8, 0.01, 0, 0)
	f.Queue().AddVelocity(4, 4, 1, 0)
	f.Step()
	if f.VelocityMagnitude().Max() == 0 {
		t.Error("queued velocity impulse was not applied")
	}
}
