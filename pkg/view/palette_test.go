package view

import (
	"image/color"
	"math"
	"testing"
)

func TestPaletteClampsInput(t *testing.T) {
	for _, p := range Palettes() {
		if p.At(-5) != p.At(0) {
			t.Errorf("%s: negative density should map like 0", p.Name)
		}
		if p.At(12) != p.At(1) {
			t.Errorf("%s: density above 1 should map like 1", p.Name)
		}
		if p.At(math.NaN()) != p.At(0) {
			t.Errorf("%s: NaN should map like 0", p.Name)
		}
		if p.At(0.5).A != 0xff {
			t.Errorf("%s: colours must be opaque", p.Name)
		}
	}
}

func TestInfernoRunsDarkToBright(t *testing.T) {
	p := Inferno()
	lum := func(c color.RGBA) int { return int(c.R) + int(c.G) + int(c.B) }
	if lum(p.At(0)) >= lum(p.At(1)) {
		t.Errorf("expected inferno to brighten with density: %v -> %v", p.At(0), p.At(1))
	}
	if lum(p.At(0)) > 60 {
		t.Errorf("expected empty cells to be near black, got %v", p.At(0))
	}
}

func TestSciRamp(t *testing.T) {
	p := Sci()
	if c := p.At(0); c.B != 0xff || c.R != 0 {
		t.Errorf("expected blue at 0, got %v", c)
	}
	if c := p.At(1); c.R != 0xff || c.B != 0 {
		t.Errorf("expected red at 1, got %v", c)
	}
	if c := getSciValue(0.5, 0, 1); c.G != 0xff {
		t.Errorf("expected green at midpoint, got %v", c)
	}
	// Degenerate range falls back to the midpoint colour.
	if getSciValue(3, 2, 2) != getSciValue(0.5, 0, 1) {
		t.Error("empty range should map to the midpoint")
	}
}

func TestIndex(t *testing.T) {
	all := Palettes()
	if i, ok := Index(all, "sci"); !ok || all[i].Name != "sci" {
		t.Errorf("Index(sci) = %d, %v", i, ok)
	}
	if _, ok := Index(all, "rainbow"); ok {
		t.Error("unknown palette should not be found")
	}
}

func TestPaintTransposesToRowMajor(t *testing.T) {
	p := Sci()
	n := 3
	values := make([]float64, n*n)
	values[2*n+0] = 1 // column 2, row 0
	pix := make([]byte, 4*n*n)
	p.Paint(pix, values, n)

	hot := p.At(1)
	o := 4 * (0*n + 2)
	if pix[o] != hot.R || pix[o+1] != hot.G || pix[o+2] != hot.B {
		t.Errorf("pixel (x=2,y=0) = %v, want %v", pix[o:o+4], hot)
	}
	cold := p.At(0)
	o = 4 * (2*n + 0)
	if pix[o] != cold.R || pix[o+2] != cold.B {
		t.Errorf("pixel (x=0,y=2) should be cold, got %v", pix[o:o+4])
	}
}

func TestDirectionColorDistinguishesHeadings(t *testing.T) {
	right := DirectionColor(1, 0)
	left := DirectionColor(-1, 0)
	if right == left {
		t.Errorf("opposite headings share a colour: %v", right)
	}
	if DirectionColor(2, 0) != right {
		t.Error("colour should depend on heading only")
	}
}
