package torus

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Renderer draws torus frames for a fixed Geometry.
//
// Create it once and reuse it: sample angles are computed at construction.
// A Renderer is safe for concurrent use as long as SetWorkers is not called
// concurrently with Render.
type Renderer struct {
	geom    Geometry
	workers int

	thetas []angle
	phis   []angle
}

// NewRenderer creates a renderer. Zero geometry fields take their defaults.
func NewRenderer(g Geometry) *Renderer {
	g = g.normalized()
	return &Renderer{
		geom:    g,
		workers: 1,
		thetas:  samples(g.ThetaStep),
		phis:    samples(g.PhiStep),
	}
}

var defaultRenderer = NewRenderer(DefaultGeometry())

// Render draws one frame with the default geometry on a single goroutine.
func Render(a, b float64, width, height int) Frame {
	return defaultRenderer.Render(a, b, width, height)
}

// Geometry returns the normalized geometry the renderer draws.
func (r *Renderer) Geometry() Geometry { return r.geom }

// Workers returns the number of goroutines Render splits the theta range across.
func (r *Renderer) Workers() int { return r.workers }

// SetWorkers sets how many goroutines share the surface sampling.
//
// n <= 0 selects GOMAXPROCS. The output does not depend on n.
func (r *Renderer) SetWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	r.workers = n
}

// Render draws the torus rotated by a and b (radians) into a width x height frame.
// A non-positive dimension yields an empty frame.
func (r *Renderer) Render(a, b float64, width, height int) Frame {
	if width <= 0 || height <= 0 {
		return Frame{}
	}

	rot := newRotation(a, b)
	k1 := r.geom.Scale(width)

	n := r.workers
	if n > len(r.thetas) {
		n = len(r.thetas)
	}
	if n <= 1 {
		out := NewRaster(width, height)
		r.sample(out, rot, k1, r.thetas)
		return out.Frame()
	}

	// Each worker owns a contiguous theta slice and a private raster; merging
	// in slice order reproduces the sequential first-writer tie-break.
	parts := make([]*Raster, n)
	chunk := (len(r.thetas) + n - 1) / n
	var g errgroup.Group
	for i := range parts {
		lo := i * chunk
		hi := min(lo+chunk, len(r.thetas))
		parts[i] = NewRaster(width, height)
		if lo >= hi {
			continue
		}
		part := parts[i]
		thetas := r.thetas[lo:hi]
		g.Go(func() error {
			r.sample(part, rot, k1, thetas)
			return nil
		})
	}
	_ = g.Wait()

	out := parts[0]
	for _, p := range parts[1:] {
		out.merge(p)
	}
	return out.Frame()
}

// sample walks the given tube angles against every ring angle and plots each point.
func (r *Renderer) sample(out *Raster, rot rotation, k1 float64, thetas []angle) {
	w, h := out.frame.Width, out.frame.Height
	for _, theta := range thetas {
		for _, phi := range r.phis {
			p := rot.transform(r.geom, theta, phi)
			if p.Z <= 0 {
				continue
			}
			lum := rot.luminance(theta, phi)
			if !(lum > 0) {
				continue
			}
			x, y, ooz := project(p, k1, w, h)
			out.Plot(x, y, ooz, lum)
		}
	}
}
