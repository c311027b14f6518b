// Package sink holds the consumers rendered frames are presented to.
package sink

import (
	"bufio"
	"io"

	"donut/torus"
)

const (
	escHome       = "\x1b[H"
	escClear      = "\x1b[2J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
)

// ANSI writes frames to a VT100-compatible terminal, overwriting the previous
// frame in place.
type ANSI struct {
	w *bufio.Writer
}

// NewANSI returns a sink writing to w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriter(w)}
}

// Open clears the screen and hides the cursor.
func (s *ANSI) Open() error {
	s.w.WriteString(escClear)
	s.w.WriteString(escHideCursor)
	return s.w.Flush()
}

// Present homes the cursor and writes one line per frame row.
func (s *ANSI) Present(f torus.Frame) error {
	s.w.WriteString(escHome)
	for y := 0; y < f.Height; y++ {
		s.w.Write(f.Row(y))
		s.w.WriteByte('\n')
	}
	return s.w.Flush()
}

// Close restores the cursor.
func (s *ANSI) Close() error {
	s.w.WriteString(escShowCursor)
	return s.w.Flush()
}
