package torus

import (
	"strings"
	"testing"
)

func TestRasterNearerWins(t *testing.T) {
	type sample struct{ ooz, lum float64 }
	near := sample{ooz: 0.5, lum: 1.4}
	far := sample{ooz: 0.25, lum: 0.1}

	cases := []struct {
		name        string
		first, last sample
	}{
		{"near first", near, far},
		{"far first", far, near},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRaster(3, 3)
			r.Plot(1, 1, tc.first.ooz, tc.first.lum)
			r.Plot(1, 1, tc.last.ooz, tc.last.lum)
			if got := r.Frame().At(1, 1); got != '@' {
				t.Fatalf("cell = %q, want '@' from the nearer sample", got)
			}
			if got := r.Depth(1, 1); got != near.ooz {
				t.Fatalf("depth = %v, want %v", got, near.ooz)
			}
		})
	}
}

func TestRasterTieKeepsFirst(t *testing.T) {
	r := NewRaster(2, 2)
	if !r.Plot(0, 0, 0.3, 0.1) {
		t.Fatal("expected first plot to land")
	}
	if r.Plot(0, 0, 0.3, 1.4) {
		t.Fatal("expected equal depth to be rejected")
	}
	if got := r.Frame().At(0, 0); got != '.' {
		t.Fatalf("cell = %q, want '.'", got)
	}
}

func TestRasterRejects(t *testing.T) {
	r := NewRaster(2, 2)
	cases := []struct {
		name     string
		x, y     int
		ooz, lum float64
	}{
		{"unlit", 0, 0, 0.5, 0},
		{"facing away", 0, 0, 0.5, -0.7},
		{"left", -1, 0, 0.5, 1},
		{"below", 0, 2, 0.5, 1},
		{"right", 2, 1, 0.5, 1},
		{"behind nothing", 1, 1, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if r.Plot(tc.x, tc.y, tc.ooz, tc.lum) {
				t.Fatalf("Plot(%d, %d, %v, %v) landed", tc.x, tc.y, tc.ooz, tc.lum)
			}
		})
	}
	if got := r.Frame().String(); got != "  \n  " {
		t.Fatalf("frame = %q, want untouched background", got)
	}
}

func TestRasterMergeMatchesSinglePass(t *testing.T) {
	type plot struct {
		x, y     int
		ooz, lum float64
	}
	early := []plot{{0, 0, 0.3, 0.2}, {1, 0, 0.4, 0.9}, {2, 0, 0.2, 1.0}}
	late := []plot{{0, 0, 0.5, 1.3}, {1, 0, 0.4, 0.1}, {2, 0, 0.1, 0.5}, {3, 0, 0.2, 0.6}}

	single := NewRaster(4, 1)
	for _, p := range append(append([]plot{}, early...), late...) {
		single.Plot(p.x, p.y, p.ooz, p.lum)
	}

	a, b := NewRaster(4, 1), NewRaster(4, 1)
	for _, p := range early {
		a.Plot(p.x, p.y, p.ooz, p.lum)
	}
	for _, p := range late {
		b.Plot(p.x, p.y, p.ooz, p.lum)
	}
	a.merge(b)

	if got, want := a.Frame().String(), single.Frame().String(); got != want {
		t.Fatalf("merged = %q, single pass = %q", got, want)
	}
}

func TestFrameAccessors(t *testing.T) {
	f := Frame{Width: 3, Height: 2, Cells: []byte("ab.cd@")}
	if got := f.String(); got != "ab.\ncd@" {
		t.Fatalf("String = %q", got)
	}
	if got := string(f.Row(1)); got != "cd@" {
		t.Fatalf("Row(1) = %q", got)
	}
	if f.Row(2) != nil || f.Row(-1) != nil {
		t.Fatal("expected nil rows outside the frame")
	}
	if got := f.At(2, 1); got != '@' {
		t.Fatalf("At(2,1) = %q", got)
	}
	if got := f.At(3, 0); got != Background {
		t.Fatalf("At(3,0) = %q, want background", got)
	}
	if f.Empty() {
		t.Fatal("frame should not be empty")
	}
	if !(Frame{}).Empty() {
		t.Fatal("zero frame should be empty")
	}
	if strings.Count(NewRaster(4, 3).Frame().String(), "\n") != 2 {
		t.Fatal("expected 3 rows")
	}
}
