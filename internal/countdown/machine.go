// Package countdown implements a countdown timer as a state machine driven
// by a periodic one-second tick
package countdown

import (
	"log/slog"
	"time"
)

// Period is the interval between ticks.
const Period = time.Second

// Handle is an armed tick source. Stop releases it.
type Handle interface {
	Stop()
}

// Ticker arms a periodic tick. Implementations must deliver each tick by
// calling Machine.Tick on the goroutine that owns the machine.
type Ticker interface {
	Start(period time.Duration) Handle
}

// Observer is notified with a snapshot whenever the state changes.
type Observer func(State)

// Option configures a Machine.
type Option func(*Machine)

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		m.observers = append(m.observers, o)
	}
}

// WithLogger sets the logger used to record transitions.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		m.log = l
	}
}

// Machine is a countdown timer. A tick source is held if and only if the
// phase is Running.
//
// Machine is not safe for concurrent use. Operations and ticks must be
// serialised by the owner, e.g. a bubbletea update loop or a Runner.
type Machine struct {
	ticker    Ticker
	handle    Handle
	log       *slog.Logger
	observers []Observer
	duration  int
	remaining int
	phase     Phase
	closed    bool
}

// New returns an idle machine with no duration.
func New(ticker Ticker, opts ...Option) *Machine {
	m := &Machine{
		ticker: ticker,
		log:    slog.Default(),
		phase:  Idle,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// State returns a snapshot of the machine.
func (m *Machine) State() State {
	return State{
		Duration:  m.duration,
		Remaining: m.remaining,
		Phase:     m.phase,
	}
}

// SetDuration commits n seconds and starts counting down from it. A
// non-positive n clears the committed duration and leaves the countdown
// untouched.
func (m *Machine) SetDuration(n int) {
	if m.closed {
		return
	}

	if n <= 0 {
		if m.duration != 0 {
			m.duration = 0
			m.changed("duration cleared")
		}

		return
	}

	m.release()

	m.duration = n
	m.remaining = n

	m.acquire()
	m.phase = Running

	m.changed("duration set")
}

// Start begins or resumes the countdown. It does nothing when no time
// remains.
func (m *Machine) Start() {
	if m.closed || m.remaining <= 0 || m.phase == Running {
		return
	}

	m.acquire()
	m.phase = Running

	m.changed("started")
}

// Pause suspends a running countdown.
func (m *Machine) Pause() {
	if m.closed || m.phase != Running {
		return
	}

	m.release()
	m.phase = Paused

	m.changed("paused")
}

// Reset stops the countdown and restores the committed duration, or zero if
// none is set.
func (m *Machine) Reset() {
	if m.closed {
		return
	}

	m.release()

	m.remaining = m.duration
	m.phase = Idle

	m.changed("reset")
}

// Tick advances a running countdown by one second. Ticks that arrive while
// not Running are ignored.
func (m *Machine) Tick() {
	if m.closed || m.phase != Running {
		return
	}

	if m.remaining > 1 {
		m.remaining--
		m.changed("tick")

		return
	}

	m.remaining = 0
	m.release()
	m.phase = Expired

	m.changed("expired")
}

// Close releases the tick source. The machine ignores all further
// operations.
func (m *Machine) Close() error {
	m.release()
	m.closed = true

	return nil
}

func (m *Machine) acquire() {
	if m.handle == nil {
		m.handle = m.ticker.Start(Period)
	}
}

func (m *Machine) release() {
	if m.handle == nil {
		return
	}

	m.handle.Stop()
	m.handle = nil
}

func (m *Machine) changed(event string) {
	s := m.State()

	m.log.Debug(
		event,
		slog.String("phase", s.Phase.String()),
		slog.Int("remaining", s.Remaining),
		slog.Int("duration", s.Duration),
	)

	for _, o := range m.observers {
		o(s)
	}
}
