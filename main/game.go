package main

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/TheFellow/stablefluid/pkg/fluid"
	"github.com/TheFellow/stablefluid/pkg/scene"
	"github.com/TheFellow/stablefluid/pkg/stream"
	"github.com/TheFellow/stablefluid/pkg/view"
)

const (
	brushRadius = 1
	glyphStride = 4 // draw one velocity glyph every glyphStride cells
)

type Game struct {
	fluid *fluid.Fluid
	hub   *stream.Hub
	scale int

	palettes     []*view.Palette
	paletteIdx   int
	showVelocity bool
	pointer      view.Pointer

	pixels []byte
	canvas *ebiten.Image
}

func NewGame(f *fluid.Fluid, hub *stream.Hub, scale int, paletteName string) *Game {
	n := f.Size()
	g := &Game{
		fluid:    f,
		hub:      hub,
		scale:    scale,
		palettes: view.Palettes(),
		pixels:   make([]byte, n*n*4),
		canvas:   ebiten.NewImage(n, n),
	}
	g.paletteIdx, _ = view.Index(g.palettes, paletteName)
	return g
}

func (g *Game) Update() error {
	g.handleKeys()
	g.handlePointer()

	g.fluid.Step()
	if g.hub != nil {
		g.hub.Broadcast(g.fluid.Tick(), g.fluid.Density())
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.showVelocity = !g.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paletteIdx = (g.paletteIdx + 1) % len(g.palettes)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.fluid.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		scene.SeedNoise(g.fluid, g.fluid.Size(), time.Now().UnixNano(), 1, 0.5)
	}
}

func (g *Game) handlePointer() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	px, py := ebiten.CursorPosition()
	dx, dy := g.pointer.Move(px, py, left || right)
	if !left && !right {
		return
	}

	x, y := view.ToCell(px, py, g.scale, g.fluid.Size())
	if left {
		g.fluid.AddDensityRadius(x, y, 1, brushRadius)
	}
	if dx != 0 || dy != 0 {
		g.fluid.AddVelocity(x, y, float64(dx)*view.DragGain, float64(dy)*view.DragGain)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := g.palettes[g.paletteIdx]
	pal.Paint(g.pixels, g.fluid.Density().Values(), g.fluid.Size())
	g.canvas.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.canvas, op)

	if g.showVelocity {
		g.drawVelocity(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("StableFluid - tick %d - %s\nFPS: %0.2f  density: %0.3f",
		g.fluid.Tick(), pal.Name, ebiten.ActualFPS(), g.fluid.TotalDensity()))
}

func (g *Game) drawVelocity(screen *ebiten.Image) {
	vel := g.fluid.Velocity()
	n := g.fluid.Size()
	cell := float64(g.scale)
	length := cell * glyphStride * 0.9

	for i := 1; i < n-1; i += glyphStride {
		for j := 1; j < n-1; j += glyphStride {
			u, v, _ := vel.Value(i, j)
			mag := math.Hypot(u, v)
			if mag < 1e-4 {
				continue
			}
			x0 := (float64(i) + 0.5) * cell
			y0 := (float64(j) + 0.5) * cell
			x1 := x0 + u/mag*length
			y1 := y0 + v/mag*length
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1),
				1, view.DirectionColor(u, v), true)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.fluid.Size() * g.scale
	return side, side
}
