package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	term   *hostTerminal
	fb     *hostFramebuffer
	t      hostTime
}

// New returns a host HAL: frames go to stdout, log lines to stderr.
// It has no framebuffer; RunWindow provides one.
func New() HAL {
	return newHost(0, 0)
}

func newHost(fbWidth, fbHeight int) *hostHAL {
	h := &hostHAL{
		logger: &hostLogger{w: os.Stderr},
		term:   &hostTerminal{out: os.Stdout},
	}
	if fbWidth > 0 && fbHeight > 0 {
		h.fb = newHostFramebuffer(fbWidth, fbHeight)
	}
	return h
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Terminal() Terminal { return h.term }
func (h *hostHAL) Display() Display   { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Time() Time         { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer {
	if d.fb == nil {
		return nil
	}
	return d.fb
}

// NewLogger returns a Logger writing one line per call to w.
func NewLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
