// Package driver runs the animation: it owns the rotation angles, renders one
// frame at a time, hands it to a Sink and paces the loop.
package driver

import (
	"context"
	"fmt"
	"time"

	"donut/hal"
	"donut/torus"
)

// FrameRenderer draws one frame for a pair of rotation angles.
type FrameRenderer interface {
	Render(a, b float64, width, height int) torus.Frame
}

// Sink consumes rendered frames.
type Sink interface {
	Present(f torus.Frame) error
}

// Config controls pacing and rotation speed.
type Config struct {
	// FrameDelay is slept after every presented frame.
	FrameDelay time.Duration
	// StepA and StepB are added to the angles after every frame (radians).
	StepA float64
	StepB float64
	// StartA and StartB are the initial angles.
	StartA float64
	StartB float64
	// Frames stops Run after this many frames (0 = run until ctx is done).
	Frames uint64
}

const (
	DefaultFrameDelay = 60 * time.Millisecond
	DefaultStepA      = 0.04
	DefaultStepB      = 0.08
)

// DefaultConfig returns the stock animation speed.
func DefaultConfig() Config {
	return Config{
		FrameDelay: DefaultFrameDelay,
		StepA:      DefaultStepA,
		StepB:      DefaultStepB,
	}
}

// Driver is the animation loop. It is not safe for concurrent use.
type Driver struct {
	r     FrameRenderer
	sink  Sink
	clock hal.Time
	log   hal.Logger
	cfg   Config

	width  int
	height int

	a, b   float64
	frames uint64
}

// New creates a driver rendering width x height frames.
// log may be nil.
func New(r FrameRenderer, sink Sink, clock hal.Time, log hal.Logger, width, height int, cfg Config) *Driver {
	if cfg.FrameDelay < 0 {
		cfg.FrameDelay = 0
	}
	return &Driver{
		r:      r,
		sink:   sink,
		clock:  clock,
		log:    log,
		cfg:    cfg,
		width:  width,
		height: height,
		a:      cfg.StartA,
		b:      cfg.StartB,
	}
}

// Angles returns the angles the next frame is rendered with.
func (d *Driver) Angles() (a, b float64) { return d.a, d.b }

// Frames returns how many frames have been presented.
func (d *Driver) Frames() uint64 { return d.frames }

// Config returns the driver configuration.
func (d *Driver) Config() Config { return d.cfg }

// Step renders and presents one frame, then advances the angles.
// A presentation failure is returned and leaves the angles unchanged.
func (d *Driver) Step() error {
	f := d.r.Render(d.a, d.b, d.width, d.height)
	if err := d.sink.Present(f); err != nil {
		return fmt.Errorf("present frame %d: %w", d.frames, err)
	}
	d.frames++
	d.a += d.cfg.StepA
	d.b += d.cfg.StepB
	return nil
}

// Done reports whether the frame budget is spent.
func (d *Driver) Done() bool {
	return d.cfg.Frames > 0 && d.frames >= d.cfg.Frames
}

// Run steps until ctx is done, the frame budget is spent, or a frame cannot be
// presented. It returns nil when the budget runs out and ctx.Err() on cancellation.
func (d *Driver) Run(ctx context.Context) error {
	d.logf("driver: %dx%d, delay %s, frames %d", d.width, d.height, d.cfg.FrameDelay, d.cfg.Frames)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Step(); err != nil {
			return err
		}
		if d.Done() {
			d.logf("driver: frame budget reached after %d frames", d.frames)
			return nil
		}
		if err := d.clock.Sleep(ctx, d.cfg.FrameDelay); err != nil {
			return err
		}
	}
}

// Pacer returns a step function for loops that call it at a fixed tick rate,
// such as a window update. It presents a frame once FrameDelay has elapsed since
// the previous one and returns hal.ErrStop when the frame budget is spent.
func (d *Driver) Pacer() func() error {
	var last time.Time
	return func() error {
		if d.Done() {
			return hal.ErrStop
		}
		now := d.clock.Now()
		if !last.IsZero() && now.Sub(last) < d.cfg.FrameDelay {
			return nil
		}
		last = now
		return d.Step()
	}
}

func (d *Driver) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}
