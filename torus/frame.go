package torus

import "strings"

// Frame is one rendered screen: Height rows of Width glyphs, row-major.
type Frame struct {
	Width  int
	Height int
	Cells  []byte
}

// Empty reports whether the frame has no cells.
func (f Frame) Empty() bool { return f.Width <= 0 || f.Height <= 0 || len(f.Cells) == 0 }

// At returns the glyph at (x, y), or Background outside the frame.
func (f Frame) At(x, y int) byte {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Background
	}
	return f.Cells[y*f.Width+x]
}

// Row returns row y without copying. It returns nil outside the frame.
func (f Frame) Row(y int) []byte {
	if y < 0 || y >= f.Height {
		return nil
	}
	return f.Cells[y*f.Width : (y+1)*f.Width]
}

// String joins the rows with newlines.
func (f Frame) String() string {
	if f.Empty() {
		return ""
	}
	var b strings.Builder
	b.Grow(len(f.Cells) + f.Height)
	for y := 0; y < f.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(f.Row(y))
	}
	return b.String()
}

// Raster is a frame under construction: a glyph grid plus its depth buffer.
//
// The depth buffer stores the largest inverse depth plotted per cell; 0 means
// nothing has been drawn there yet.
type Raster struct {
	frame Frame
	depth []float64
}

// NewRaster returns a raster cleared to Background with an empty depth buffer.
func NewRaster(width, height int) *Raster {
	if width <= 0 || height <= 0 {
		return &Raster{}
	}
	n := width * height
	cells := make([]byte, n)
	for i := range cells {
		cells[i] = Background
	}
	return &Raster{
		frame: Frame{Width: width, Height: height, Cells: cells},
		depth: make([]float64, n),
	}
}

// Plot draws a sample at cell (x, y) with inverse depth ooz and luminance lum.
//
// The sample lands only if it is inside the raster, lit (lum > 0) and strictly
// nearer than whatever the cell already holds. Plot reports whether it landed.
func (r *Raster) Plot(x, y int, ooz, lum float64) bool {
	if x < 0 || y < 0 || x >= r.frame.Width || y >= r.frame.Height {
		return false
	}
	if !(lum > 0) {
		return false
	}
	i := y*r.frame.Width + x
	if !(ooz > r.depth[i]) {
		return false
	}
	r.depth[i] = ooz
	r.frame.Cells[i] = Glyph(lum)
	return true
}

// Depth returns the stored inverse depth at (x, y), 0 outside the raster.
func (r *Raster) Depth(x, y int) float64 {
	if x < 0 || y < 0 || x >= r.frame.Width || y >= r.frame.Height {
		return 0
	}
	return r.depth[y*r.frame.Width+x]
}

// Frame returns the glyph grid. The raster must not be plotted into afterwards.
func (r *Raster) Frame() Frame { return r.frame }

// merge folds a raster of the same size that was plotted with later samples.
// Ties keep the receiver's glyph, matching a single sequential pass.
func (r *Raster) merge(later *Raster) {
	for i, d := range later.depth {
		if d > r.depth[i] {
			r.depth[i] = d
			r.frame.Cells[i] = later.frame.Cells[i]
		}
	}
}
