package countdown

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/countdown/internal/apperr"
)

var errRunnerStopped = &apperr.Error{
	Message: "countdown runner has stopped",
}

// clockSource arms tickers on a clockwork clock. It is only touched from
// the Runner goroutine.
type clockSource struct {
	clock  clockwork.Clock
	active clockwork.Ticker
}

type clockHandle struct {
	src    *clockSource
	ticker clockwork.Ticker
}

func (c *clockSource) Start(period time.Duration) Handle {
	t := c.clock.NewTicker(period)
	c.active = t

	return &clockHandle{src: c, ticker: t}
}

func (c *clockSource) tick() <-chan time.Time {
	if c.active == nil {
		return nil
	}

	return c.active.Chan()
}

func (h *clockHandle) Stop() {
	h.ticker.Stop()

	if h.src.active == h.ticker {
		h.src.active = nil
	}
}

// Runner owns a Machine on a single goroutine. Operations from other
// goroutines are sent to it over a channel and executed between ticks.
type Runner struct {
	src     *clockSource
	machine *Machine
	ops     chan func(*Machine)
	done    chan struct{}
}

// NewRunner returns a runner whose ticks come from clock.
func NewRunner(clock clockwork.Clock, opts ...Option) *Runner {
	src := &clockSource{clock: clock}

	return &Runner{
		src:     src,
		machine: New(src, opts...),
		ops:     make(chan func(*Machine)),
		done:    make(chan struct{}),
	}
}

// Run processes operations and ticks until ctx is cancelled. The machine is
// closed before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	defer func() {
		_ = r.machine.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case op := <-r.ops:
			op(r.machine)
		case <-r.src.tick():
			r.machine.Tick()
		}
	}
}

// Done is closed once Run has returned.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// do hands op to the Run goroutine. It blocks until Run receives it.
func (r *Runner) do(op func(*Machine)) error {
	select {
	case r.ops <- op:
		return nil
	case <-r.done:
		return errRunnerStopped
	}
}

// SetDuration commits n seconds. See Machine.SetDuration.
func (r *Runner) SetDuration(n int) error {
	return r.do(func(m *Machine) { m.SetDuration(n) })
}

// Start begins or resumes the countdown.
func (r *Runner) Start() error {
	return r.do((*Machine).Start)
}

// Pause suspends the countdown.
func (r *Runner) Pause() error {
	return r.do((*Machine).Pause)
}

// Reset restores the committed duration.
func (r *Runner) Reset() error {
	return r.do((*Machine).Reset)
}

// State returns a snapshot taken on the Run goroutine.
func (r *Runner) State() (State, error) {
	ch := make(chan State, 1)

	err := r.do(func(m *Machine) {
		ch <- m.State()
	})
	if err != nil {
		return State{}, err
	}

	return <-ch, nil
}
