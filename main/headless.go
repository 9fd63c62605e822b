package main

import (
	"log"
	"time"

	"github.com/TheFellow/stablefluid/pkg/fluid"
	"github.com/TheFellow/stablefluid/pkg/stream"
)

const reportEvery = 60

// runHeadless steps the simulation at tps without a window, broadcasting
// every frame to hub when one is given. frames <= 0 runs forever.
func runHeadless(f *fluid.Fluid, hub *stream.Hub, tps, frames int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	lastReport := time.Now()
	for range ticker.C {
		f.Step()
		if hub != nil {
			hub.Broadcast(f.Tick(), f.Density())
		}

		if f.Tick()%reportEvery == 0 {
			elapsed := time.Since(lastReport)
			lastReport = time.Now()
			clients := 0
			if hub != nil {
				clients = hub.Clients()
			}
			log.Printf("tick %d: density %.4f, max divergence %.2e, %.1f steps/s, %d clients",
				f.Tick(), f.TotalDensity(), f.MaxDivergence(),
				float64(reportEvery)/elapsed.Seconds(), clients)
		}
		if frames > 0 && f.Tick() >= uint64(frames) {
			return
		}
	}
}
