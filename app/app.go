package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"donut/driver"
	"donut/hal"
	"donut/internal/buildinfo"
	"donut/sink"
	"donut/torus"
)

// Mode selects where frames are presented.
type Mode uint8

const (
	// ModeTerminal animates on the controlling terminal.
	ModeTerminal Mode = iota
	// ModeWindow animates in a desktop window.
	ModeWindow
	// ModeSnapshot writes a single frame as a PNG image.
	ModeSnapshot
)

func (m Mode) String() string {
	switch m {
	case ModeTerminal:
		return "terminal"
	case ModeWindow:
		return "window"
	case ModeSnapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

type Config struct {
	Mode Mode

	// Cols and Rows size the grid in window and snapshot modes. The terminal mode
	// uses the terminal dimensions.
	Cols int
	Rows int

	// Workers is passed to torus.Renderer.SetWorkers when > 1.
	Workers int

	// SnapshotPath is the PNG file written in snapshot mode.
	SnapshotPath string

	Geometry torus.Geometry
	Driver   driver.Config
}

const (
	defaultCols = 80
	defaultRows = 24
)

// DefaultConfig returns the terminal animation with stock settings.
func DefaultConfig() Config {
	return Config{
		Mode:     ModeTerminal,
		Cols:     defaultCols,
		Rows:     defaultRows,
		Workers:  1,
		Geometry: torus.DefaultGeometry(),
		Driver:   driver.DefaultConfig(),
	}
}

func (c Config) normalized() Config {
	if c.Cols <= 0 {
		c.Cols = defaultCols
	}
	if c.Rows <= 0 {
		c.Rows = defaultRows
	}
	return c
}

func (c Config) renderer() *torus.Renderer {
	r := torus.NewRenderer(c.Geometry)
	if c.Workers > 1 {
		r.SetWorkers(c.Workers)
	}
	return r
}

// Run starts the selected mode on the host and blocks until it ends.
func Run(ctx context.Context, cfg Config) error {
	cfg = cfg.normalized()
	switch cfg.Mode {
	case ModeTerminal:
		return RunTerminal(ctx, hal.New(), cfg)
	case ModeWindow:
		cw, ch := sink.GlyphCell()
		return hal.RunWindow(ctx, hal.WindowConfig{
			Title:  "donut",
			Width:  cfg.Cols * cw,
			Height: cfg.Rows * ch,
		}, NewWindow(cfg))
	case ModeSnapshot:
		f, err := os.Create(cfg.SnapshotPath)
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		if err := RunSnapshot(ctx, hal.New(), cfg, f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unknown %s", cfg.Mode)
	}
}

// RunTerminal animates on h's terminal until ctx is done or the frame budget
// is spent. A terminal without known dimensions is a fatal error.
func RunTerminal(ctx context.Context, h hal.HAL, cfg Config) error {
	term := h.Terminal()
	w, ht, err := term.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	logf(h, "donut %s: terminal %dx%d", buildinfo.Short(), w, ht)

	out := sink.NewANSI(term.Writer())
	if err := out.Open(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	d := driver.New(cfg.renderer(), out, h.Time(), h.Logger(), w, ht, cfg.Driver)
	runErr := d.Run(ctx)
	if err := out.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close terminal: %w", err)
	}
	return runErr
}

// RunSnapshot renders the first frame of the animation as a PNG to w.
func RunSnapshot(ctx context.Context, h hal.HAL, cfg Config, w io.Writer) error {
	cfg = cfg.normalized()
	dc := cfg.Driver
	dc.Frames = 1
	dc.FrameDelay = 0

	d := driver.New(cfg.renderer(), sink.NewSnapshot(w), h.Time(), h.Logger(), cfg.Cols, cfg.Rows, dc)
	if err := d.Run(ctx); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	logf(h, "donut %s: snapshot %dx%d", buildinfo.Short(), cfg.Cols, cfg.Rows)
	return nil
}

// NewWindow returns the window app: a driver paced by the window update loop,
// drawing glyphs onto the window framebuffer.
func NewWindow(cfg Config) func(hal.HAL) func() error {
	cfg = cfg.normalized()
	return func(h hal.HAL) func() error {
		var fb hal.Framebuffer
		if disp := h.Display(); disp != nil {
			fb = disp.Framebuffer()
		}
		out, err := sink.NewGlyphs(fb)
		if err != nil {
			return func() error { return err }
		}
		logf(h, "donut %s: window %dx%d", buildinfo.Short(), cfg.Cols, cfg.Rows)
		d := driver.New(cfg.renderer(), out, h.Time(), h.Logger(), cfg.Cols, cfg.Rows, cfg.Driver)
		return d.Pacer()
	}
}

func logf(h hal.HAL, format string, args ...any) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}
