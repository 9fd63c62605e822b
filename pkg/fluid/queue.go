package fluid

import "sync"

type sourceKind int

const (
	densitySource sourceKind = iota
	velocitySource
)

type source struct {
	kind sourceKind
	x, y int
	a, b float64 // amount, or dx and dy
}

// SourceQueue stages injections coming from goroutines other than the one
// calling Step. Queued sources are applied in arrival order at the start of
// the next Step, never while a pass is running.
type SourceQueue struct {
	mu      sync.Mutex
	pending []source
}

// AddDensity queues amount to be added at (x, y).
func (q *SourceQueue) AddDensity(x, y int, amount float64) {
	q.push(source{kind: densitySource, x: x, y: y, a: amount})
}

// AddVelocity queues (dx, dy) to be added at (x, y).
func (q *SourceQueue) AddVelocity(x, y int, dx, dy float64) {
	q.push(source{kind: velocitySource, x: x, y: y, a: dx, b: dy})
}

// Len returns the number of sources waiting for the next Step.
func (q *SourceQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *SourceQueue) push(s source) {
	q.mu.Lock()
	q.pending = append(q.pending, s)
	q.mu.Unlock()
}

// drain hands back everything queued so far and leaves the queue empty.
func (q *SourceQueue) drain() []source {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

func (f *Fluid) flushSources() {
	for _, s := range f.queue.drain() {
		switch s.kind {
		case densitySource:
			f.AddDensity(s.x, s.y, s.a)
		case velocitySource:
			f.AddVelocity(s.x, s.y, s.a, s.b)
		}
	}
}
