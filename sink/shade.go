package sink

import "donut/torus"

// shade maps a glyph to a gray level; brighter ramp glyphs draw lighter.
// The background is black.
func shade(c byte) uint8 {
	lvl := torus.Level(c)
	if lvl < 0 {
		return 0
	}
	const lo, hi = 96, 255
	return uint8(lo + lvl*(hi-lo)/(len(torus.Ramp)-1))
}
