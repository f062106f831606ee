//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"makerbadge/app"
	"makerbadge/badgeos/config"
	"makerbadge/hal"
)

func main() {
	var headless hal.HeadlessConfig
	var (
		cfgPath string
		tui     bool
		speed   float64
	)
	flag.StringVar(&cfgPath, "config", "badge.yaml", "Badge and simulator YAML file.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run in virtual time without a window.")
	flag.Uint64Var(&headless.Cycles, "cycles", 0, "Stop after N wake cycles in headless mode (0 = until idle).")
	flag.BoolVar(&headless.Show, "show", false, "Print every refreshed frame in headless mode.")
	flag.BoolVar(&tui, "tui", false, "Run the terminal front end.")
	flag.Float64Var(&speed, "speed", 1, "Simulated seconds per wall-clock second.")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal(err)
	}
	opts, err := hal.LoadHostOptions(cfgPath)
	if err != nil {
		fatal(err)
	}
	if speed <= 0 {
		fatal(fmt.Errorf("speed must be positive, got %g", speed))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cycle := func(h hal.HAL) { app.Cycle(h, cfg) }

	switch {
	case headless.Enabled:
		h := hal.NewHost(opts, hal.NewVirtualClock(), os.Stdout)
		err = hal.RunHeadless(ctx, h, cycle, headless)
	case tui:
		// The alternate screen owns the terminal; the log tail is shown
		// inside it.
		h := hal.NewHost(opts, hal.NewRealClock(speed), io.Discard)
		err = hal.RunTUI(ctx, hal.NewSimulator(h, cycle))
	default:
		h := hal.NewHost(opts, hal.NewRealClock(speed), os.Stdout)
		err = hal.RunWindow(ctx, hal.NewSimulator(h, cycle))
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
