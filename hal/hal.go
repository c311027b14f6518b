package hal

import (
	"context"
	"errors"
	"io"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoTerminal reports that the terminal dimensions could not be read.
	ErrNoTerminal = errors.New("terminal size unavailable")

	// ErrStop is returned by a step function to end a run without error.
	ErrStop = errors.New("stop")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Terminal is the character device frames are written to.
type Terminal interface {
	// Size reports the terminal dimensions in character cells.
	Size() (width, height int, err error)
	Writer() io.Writer
}

// Time provides the wall clock and a cancellable sleep.
type Time interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Terminal() Terminal
	Display() Display
	Time() Time
}
