package sink

import (
	"errors"
	"image/color"

	"donut/hal"
	"donut/torus"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var glyphFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// Line height and baseline offset for glyphFont.
const (
	glyphCellHeight = 10
	glyphBaseline   = 6
)

var (
	_ drivers.Displayer = (*fbDisplay)(nil)
	_ drivers.Displayer = cellDisplayer{}
)

// GlyphCell returns the pixel size of one character cell drawn by Glyphs.
func GlyphCell() (w, h int) {
	_, outboxWidth := tinyfont.LineWidth(glyphFont, "0")
	return int(outboxWidth), glyphCellHeight
}

// Glyphs draws frames as text onto an RGB565 framebuffer.
type Glyphs struct {
	fb    hal.Framebuffer
	d     *fbDisplay
	cellW int16
	cellH int16
}

// NewGlyphs returns a sink drawing into fb.
func NewGlyphs(fb hal.Framebuffer) (*Glyphs, error) {
	if fb == nil {
		return nil, errors.New("glyphs: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, errors.New("glyphs: framebuffer is not RGB565")
	}
	w, h := GlyphCell()
	if w <= 0 || h <= 0 {
		return nil, errors.New("glyphs: font has no cell size")
	}
	return &Glyphs{
		fb:    fb,
		d:     newFBDisplay(fb),
		cellW: int16(w),
		cellH: int16(h),
	}, nil
}

// Present clears the framebuffer, draws every lit cell and presents it.
func (g *Glyphs) Present(f torus.Frame) error {
	g.fb.ClearRGB(0, 0, 0)
	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		for x, c := range row {
			if c == torus.Background {
				continue
			}
			px := int16(x) * g.cellW
			py := int16(y) * g.cellH
			cell := cellDisplayer{
				base: g.d,
				x0:   px,
				y0:   py,
				x1:   px + g.cellW,
				y1:   py + g.cellH,
			}
			s := shade(c)
			tinyfont.DrawChar(cell, glyphFont, px, py+glyphBaseline, rune(c), color.RGBA{R: s, G: s, B: s, A: 0xFF})
		}
	}
	return g.d.Display()
}
