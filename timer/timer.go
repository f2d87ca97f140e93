// Package timer renders a countdown in the terminal and maps key presses to
// countdown operations
package timer

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/countdown"
)

// tickMsg is delivered once per period for the tick handle identified by id.
type tickMsg struct {
	id int
}

// tickSource arms ticks as bubbletea commands. Each acquisition gets a new
// id so that ticks scheduled for a released handle are dropped when they
// arrive.
type tickSource struct {
	pending []armedTick
	active  int
	nextID  int
}

// armedTick is a handle armed since the last flush.
type armedTick struct {
	period time.Duration
	id     int
}

type tickHandle struct {
	src *tickSource
	id  int
}

func (s *tickSource) Start(period time.Duration) countdown.Handle {
	s.nextID++
	s.active = s.nextID

	s.pending = append(s.pending, armedTick{period: period, id: s.active})

	return &tickHandle{src: s, id: s.active}
}

func (s *tickSource) live(id int) bool {
	return id != 0 && id == s.active
}

// flush returns the commands for handles armed since the last call that are
// still live. Handles released in the meantime are never scheduled.
func (s *tickSource) flush() tea.Cmd {
	var cmds []tea.Cmd

	for _, a := range s.pending {
		if s.live(a.id) {
			cmds = append(cmds, scheduleTick(a.period, a.id))
		}
	}

	s.pending = nil

	return tea.Batch(cmds...)
}

func (h *tickHandle) Stop() {
	if h.src.active == h.id {
		h.src.active = 0
	}
}

func scheduleTick(period time.Duration, id int) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Model is the bubbletea model for the countdown.
type Model struct {
	machine  *countdown.Machine
	src      *tickSource
	opts     *config.Config
	style    Style
	keys     keymap
	input    textinput.Model
	progress progress.Model
	help     help.Model
}

// New creates the model. A configured duration is committed immediately.
func New(cfg *config.Config, opts ...countdown.Option) *Model {
	src := &tickSource{}

	input := textinput.New()
	input.Placeholder = "Enter duration in seconds"
	input.Prompt = "> "
	input.CharLimit = 6
	input.Width = 26
	input.Focus()

	fill := cfg.Display.Color
	if fill == "" {
		fill = defaultColor
	}

	m := &Model{
		machine: countdown.New(src, opts...),
		src:     src,
		opts:    cfg,
		style:   newStyle(cfg.Display),
		keys:    defaultKeymap,
		input:   input,
		progress: progress.New(
			progress.WithSolidFill(fill),
			progress.WithoutPercentage(),
		),
		help: help.New(),
	}

	if cfg.Timer.Duration > 0 {
		m.input.SetValue(strconv.Itoa(cfg.Timer.Duration))
		m.machine.SetDuration(cfg.Timer.Duration)
	}

	return m
}

// State returns the current countdown state.
func (m *Model) State() countdown.State {
	return m.machine.State()
}

// Close releases the tick source.
func (m *Model) Close() error {
	return m.machine.Close()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.src.flush())
}
