package fluid

import (
	"runtime"
	"sync"
)

// minRowsPerWorker keeps small grids on the calling goroutine.
const minRowsPerWorker = 16

// parallelRange executes fn for each i in [start,end), splitting the range
// into contiguous chunks across available CPUs. fn must only write cells
// owned by row i.
func parallelRange(start, end int, fn func(i int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers := min(runtime.GOMAXPROCS(0), total/minRowsPerWorker)
	if workers <= 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers
	for s := start; s < end; s += chunk {
		e := min(s+chunk, end)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
