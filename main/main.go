package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/TheFellow/stablefluid/pkg/fluid"
	"github.com/TheFellow/stablefluid/pkg/scene"
	"github.com/TheFellow/stablefluid/pkg/stream"
	"github.com/TheFellow/stablefluid/pkg/view"
)

const tps = 60

func main() {
	var (
		size        = flag.Int("size", 128, "grid cells per axis, including the wall ring")
		dt          = flag.Float64("dt", 0.005, "time step")
		visc        = flag.Float64("visc", 0.0005, "viscosity")
		diff        = flag.Float64("diff", 0, "density diffusion rate")
		iters       = flag.Int("iters", fluid.DefaultIterations, "relaxation sweeps per solve")
		dispersion  = flag.Float64("dispersion", 0.0005, "fraction of density removed each step")
		confinement = flag.Float64("confinement", 0, "vorticity confinement strength")
		scale       = flag.Int("scale", 5, "screen pixels per cell")
		paletteName = flag.String("palette", "inferno", "density palette: inferno or sci")
		listen      = flag.String("listen", "", "serve websocket frames on this address, e.g. :8080")
		headless    = flag.Bool("headless", false, "run without a window")
		frames      = flag.Int("frames", 0, "stop after this many steps in headless mode (0 runs forever)")
	)
	flag.Parse()

	if *scale < 1 {
		log.Fatalf("scale must be at least 1, got %d", *scale)
	}
	if _, ok := view.Index(view.Palettes(), *paletteName); !ok {
		log.Fatalf("unknown palette %q", *paletteName)
	}

	f, err := fluid.New(*size, *dt, *visc, *diff,
		fluid.WithIterations(*iters),
		fluid.WithDispersion(*dispersion),
		fluid.WithConfinement(*confinement),
	)
	if err != nil {
		log.Fatal(err)
	}

	var hub *stream.Hub
	if *listen != "" {
		hub = stream.NewHub(f.Size(), f.Queue())
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{
			Addr:              *listen,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Printf("streaming on ws://%s/ws", *listen)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatal(err)
			}
		}()
	}

	if *headless {
		scene.SeedNoise(f.Queue(), f.Size(), time.Now().UnixNano(), 1, 0.5)
		runHeadless(f, hub, tps, *frames)
		return
	}

	side := f.Size() * *scale
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle("StableFluid")
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(NewGame(f, hub, *scale, *paletteName)); err != nil {
		log.Fatal(err)
	}
}
