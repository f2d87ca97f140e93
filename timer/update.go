package timer

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/countdown/internal/countdown"
)

// handleTick applies a tick and schedules the next one while the handle is
// still live.
func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if !m.src.live(msg.id) {
		return nil
	}

	m.machine.Tick()

	if !m.src.live(msg.id) {
		return nil
	}

	return scheduleTick(countdown.Period, msg.id)
}

// isDurationKey reports whether msg edits the duration input. Only digits
// are accepted as text.
func isDurationKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU:
		return true
	case tea.KeyRunes:
		if msg.Paste || len(msg.Runes) == 0 {
			return false
		}

		for _, r := range msg.Runes {
			if !unicode.IsDigit(r) {
				return false
			}
		}

		return true
	}

	return false
}

// editDuration forwards msg to the input. Text that is not a positive
// number blanks the field, leaving no pending duration.
func (m *Model) editDuration(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if _, ok := countdown.ParseInput(m.input.Value()); !ok {
		m.input.SetValue("")
	}

	return cmd
}

// pending returns the duration entered in the input, or zero when the input
// does not hold a valid one.
func (m *Model) pending() int {
	n, _ := countdown.ParseInput(m.input.Value())

	return n
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.quit):
		_ = m.machine.Close()

		return tea.Quit

	case key.Matches(msg, m.keys.set):
		m.machine.SetDuration(m.pending())

	case isDurationKey(msg):
		return m.editDuration(msg)

	case key.Matches(msg, m.keys.start):
		m.machine.Start()

	case key.Matches(msg, m.keys.pause):
		m.machine.Pause()

	case key.Matches(msg, m.keys.reset):
		m.machine.Reset()
	}

	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("update", slog.String("msg", spew.Sdump(msg)))
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		cmd = m.handleTick(msg)

	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

	default:
		m.input, cmd = m.input.Update(msg)
	}

	return m, tea.Batch(cmd, m.src.flush())
}
