package sink

import (
	"testing"

	"donut/hal"
	"donut/torus"
)

func TestGlyphCell(t *testing.T) {
	w, h := GlyphCell()
	if w <= 0 || h != glyphCellHeight {
		t.Fatalf("GlyphCell = %dx%d", w, h)
	}
}

func TestGlyphsDrawsInsideCell(t *testing.T) {
	cw, ch := GlyphCell()
	fb := hal.NewFramebuffer(cw*3, ch*2)
	g, err := NewGlyphs(fb)
	if err != nil {
		t.Fatalf("NewGlyphs: %v", err)
	}

	f := torus.Frame{Width: 3, Height: 2, Cells: []byte("  @   ")}
	if err := g.Present(f); err != nil {
		t.Fatalf("Present: %v", err)
	}

	lit := 0
	buf := fb.Buffer()
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			off := y*fb.StrideBytes() + x*2
			if buf[off] == 0 && buf[off+1] == 0 {
				continue
			}
			if x < 2*cw || y >= ch {
				t.Fatalf("pixel (%d,%d) lit outside cell (2,0)", x, y)
			}
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("expected '@' to light some pixels")
	}

	// A blank frame clears the previous one.
	if err := g.Present(torus.NewRaster(3, 2).Frame()); err != nil {
		t.Fatalf("Present: %v", err)
	}
	for i, b := range fb.Buffer() {
		if b != 0 {
			t.Fatalf("byte %d = %#x after blank frame", i, b)
		}
	}
}

func TestNewGlyphsNoFramebuffer(t *testing.T) {
	if _, err := NewGlyphs(nil); err == nil {
		t.Fatal("expected error without framebuffer")
	}
}

func TestShade(t *testing.T) {
	if shade(torus.Background) != 0 {
		t.Fatal("background must be black")
	}
	prev := uint8(0)
	for i := 0; i < len(torus.Ramp); i++ {
		s := shade(torus.Ramp[i])
		if s <= prev {
			t.Fatalf("shade(%q) = %d, not brighter than %d", torus.Ramp[i], s, prev)
		}
		prev = s
	}
	if prev != 255 {
		t.Fatalf("brightest shade = %d, want 255", prev)
	}
}
