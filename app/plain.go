package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/countdown"
	"github.com/ayoisaiah/countdown/internal/ui"
)

// printState writes a single line for s.
func printState(w io.Writer, s countdown.State) {
	var phase string

	switch s.Phase {
	case countdown.Running:
		phase = ui.Green(s.Phase)
	case countdown.Paused:
		phase = ui.Yellow(s.Phase)
	case countdown.Expired:
		phase = ui.Red(s.Phase)
	default:
		phase = ui.Blue(s.Phase)
	}

	fmt.Fprintf(w, "%s %s\n", phase, ui.Highlight(s.Display()))
}

// runPlain counts down the configured duration, printing every change to w.
// It returns once the countdown expires or the process is interrupted.
func runPlain(
	ctx context.Context,
	cfg *config.Config,
	w io.Writer,
	clock clockwork.Clock,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := countdown.NewRunner(clock, countdown.WithObserver(func(s countdown.State) {
		printState(w, s)

		if s.Phase == countdown.Expired {
			cancel()
		}
	}))

	go func() {
		_ = r.Run(ctx)
	}()

	err := r.SetDuration(cfg.Timer.Duration)
	if err != nil && ctx.Err() == nil {
		return err
	}

	<-r.Done()

	return nil
}
