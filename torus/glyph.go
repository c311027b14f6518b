package torus

// Background fills cells no lit sample reached.
const Background byte = ' '

// Ramp orders glyphs from dimmest to brightest.
const Ramp = ".,-~:;=!*#$@"

// Glyph maps a luminance value onto the ramp.
//
// Non-positive (and NaN) luminance yields Background. The ramp index is
// floor(luminance*8) clamped to the last entry, since luminance peaks at √2.
func Glyph(luminance float64) byte {
	if !(luminance > 0) {
		return Background
	}
	last := len(Ramp) - 1
	scaled := luminance * 8
	if scaled >= float64(last) {
		return Ramp[last]
	}
	return Ramp[int(scaled)]
}

// IsGlyph reports whether c can appear in a rendered frame.
func IsGlyph(c byte) bool {
	if c == Background {
		return true
	}
	for i := 0; i < len(Ramp); i++ {
		if Ramp[i] == c {
			return true
		}
	}
	return false
}

// Level returns the ramp position of c, or -1 for the background and unknown bytes.
func Level(c byte) int {
	for i := 0; i < len(Ramp); i++ {
		if Ramp[i] == c {
			return i
		}
	}
	return -1
}
