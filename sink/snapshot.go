package sink

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"donut/torus"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Snapshot encodes every presented frame as a grayscale PNG.
type Snapshot struct {
	w    io.Writer
	face font.Face
}

// NewSnapshot returns a sink writing PNG images to w.
func NewSnapshot(w io.Writer) *Snapshot {
	return &Snapshot{w: w, face: basicfont.Face7x13}
}

// Cell returns the pixel size of one character cell.
func (s *Snapshot) Cell() (w, h int) {
	adv, ok := s.face.GlyphAdvance('0')
	if !ok {
		adv = fixed.I(7)
	}
	return adv.Ceil(), s.face.Metrics().Height.Ceil()
}

// Image rasterizes f without encoding it.
func (s *Snapshot) Image(f torus.Frame) *image.Gray {
	cw, ch := s.Cell()
	ascent := s.face.Metrics().Ascent.Ceil()
	img := image.NewGray(image.Rect(0, 0, f.Width*cw, f.Height*ch))

	d := font.Drawer{Dst: img, Face: s.face}
	for y := 0; y < f.Height; y++ {
		for x, c := range f.Row(y) {
			if c == torus.Background {
				continue
			}
			d.Src = image.NewUniform(color.Gray{Y: shade(c)})
			d.Dot = fixed.P(x*cw, y*ch+ascent)
			d.DrawString(string(rune(c)))
		}
	}
	return img
}

// Present writes f as one PNG image.
func (s *Snapshot) Present(f torus.Frame) error {
	if f.Empty() {
		return errors.New("snapshot: empty frame")
	}
	return png.Encode(s.w, s.Image(f))
}
