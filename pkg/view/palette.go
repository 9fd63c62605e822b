// Package view turns simulation fields into colours and pointer input into
// grid cells. It holds no rendering backend of its own.
package view

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
)

const lutSize = 256

// Palette maps a density in [0, 1] to a colour through a lookup table.
type Palette struct {
	Name string
	lut  [lutSize]color.RGBA
}

// At returns the colour for v, clamping v into [0, 1].
func (p *Palette) At(v float64) color.RGBA {
	if math.IsNaN(v) {
		v = 0
	}
	v = min(max(v, 0), 1)
	return p.lut[int(v*(lutSize-1))]
}

func newPalette(name string, at func(t float64) color.RGBA) *Palette {
	p := &Palette{Name: name}
	for i := range p.lut {
		p.lut[i] = at(float64(i) / (lutSize - 1))
	}
	return p
}

// Inferno is the black-purple-orange-yellow perceptual ramp.
func Inferno() *Palette {
	grad := colorgrad.Inferno()
	return newPalette("inferno", func(t float64) color.RGBA {
		return toRGBA(grad.At(t))
	})
}

// Sci is the blue-cyan-green-yellow-red ramp used for scientific plots.
func Sci() *Palette {
	return newPalette("sci", func(t float64) color.RGBA {
		return getSciValue(t, 0, 1)
	})
}

// Palettes lists the selectable palettes in cycling order.
func Palettes() []*Palette {
	return []*Palette{Inferno(), Sci()}
}

// Index returns the position of the palette called name.
func Index(all []*Palette, name string) (int, bool) {
	for i, p := range all {
		if p.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Paint writes the x-major density values of an n x n grid into pix as
// row-major RGBA, the layout image buffers expect.
func (p *Palette) Paint(pix []byte, values []float64, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := p.At(values[i*n+j])
			o := 4 * (j*n + i)
			pix[o] = c.R
			pix[o+1] = c.G
			pix[o+2] = c.B
			pix[o+3] = c.A
		}
	}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func getSciValue(val, minVal, maxVal float64) color.RGBA {
	t := 0.5
	if d := maxVal - minVal; d > 0 {
		t = (min(max(val, minVal), maxVal-0.0001) - minVal) / d
	}
	band := math.Floor(t / 0.25)
	s := t/0.25 - band

	var r, g, b float64
	switch band {
	case 0:
		g, b = s, 1
	case 1:
		g, b = 1, 1-s
	case 2:
		r, g = s, 1
	case 3:
		r, g = 1, 1-s
	}
	return color.RGBA{R: uint8(255 * r), G: uint8(255 * g), B: uint8(255 * b), A: 0xff}
}

// DirectionColor colours a velocity glyph by its heading.
func DirectionColor(u, v float64) color.RGBA {
	hue := math.Mod(math.Atan2(v, u)*180/math.Pi+360, 360)
	return toRGBA(colorful.Hsv(hue, 0.8, 1))
}
