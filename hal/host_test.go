package hal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestHostTimeSleep(t *testing.T) {
	var clock hostTime

	start := clock.Now()
	if err := clock.Sleep(context.Background(), 5*time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if clock.Now().Sub(start) < 5*time.Millisecond {
		t.Fatal("Sleep returned early")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := clock.Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("Sleep on cancelled ctx = %v, want context.Canceled", err)
	}
	if err := clock.Sleep(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("zero Sleep on cancelled ctx = %v, want context.Canceled", err)
	}
}

func TestHostTerminalNotATTY(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	term := &hostTerminal{out: w}
	if _, _, err := term.Size(); !errors.Is(err, ErrNoTerminal) {
		t.Fatalf("Size on a pipe = %v, want ErrNoTerminal", err)
	}
	if term.Writer() != w {
		t.Fatal("Writer should be the output file")
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.WriteLineString("donut: start")
	l.WriteLineBytes([]byte("donut: stop"))
	if got := buf.String(); got != "donut: start\ndonut: stop\n" {
		t.Fatalf("log = %q", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	if fb.StrideBytes() != 6 || len(fb.Buffer()) != 12 {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	for i, b := range fb.Buffer() {
		if b != 0xFF {
			t.Fatalf("byte %d = %#x after white clear", i, b)
		}
	}
	if NewFramebuffer(-1, 4).Width() != 0 {
		t.Fatal("negative width should clamp to 0")
	}
}

func TestHostDisplayWithoutFramebuffer(t *testing.T) {
	h := New()
	if fb := h.Display().Framebuffer(); fb != nil {
		t.Fatalf("expected nil framebuffer, got %T", fb)
	}
	if newHost(8, 8).Display().Framebuffer() == nil {
		t.Fatal("expected framebuffer when sized")
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0}, {0xFF, 0xFF, 0xFF}, {0xFF, 0, 0}, {0, 0xFF, 0}, {0, 0, 0xFF},
	}
	for _, c := range cases {
		r, g, b := RGB888(RGB565(c.r, c.g, c.b))
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("round trip %v = (%d,%d,%d)", c, r, g, b)
		}
	}
}

func TestWindowConfigDefaults(t *testing.T) {
	c := WindowConfig{Width: 100}.normalized()
	if c.Width != 100 || c.Height != 240 || c.Scale != 2 || c.TPS != 60 || c.Title != "donut" {
		t.Fatalf("normalized = %+v", c)
	}
}
