package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"donut/app"
	"donut/hal"
	"donut/internal/buildinfo"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		window  bool
		version bool
	)
	flag.BoolVar(&window, "window", false, "Animate in a desktop window instead of the terminal.")
	flag.StringVar(&cfg.SnapshotPath, "snapshot", "", "Write the first frame as a PNG to `path` and exit.")
	flag.Uint64Var(&cfg.Driver.Frames, "frames", 0, "Stop after N frames (0 = run until interrupted).")
	flag.DurationVar(&cfg.Driver.FrameDelay, "delay", cfg.Driver.FrameDelay, "Delay between frames.")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Grid columns in window and snapshot modes.")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Grid rows in window and snapshot modes.")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Rasterizer goroutines (0 = GOMAXPROCS).")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	switch {
	case cfg.SnapshotPath != "":
		cfg.Mode = app.ModeSnapshot
	case window:
		cfg.Mode = app.ModeWindow
	}

	defer func() {
		if v := recover(); v != nil {
			app.ReportPanic(hal.New(), v, debug.Stack())
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
