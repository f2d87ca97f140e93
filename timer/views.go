package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/countdown/internal/countdown"
)

const title = "Countdown Timer"

// percentElapsed is the share of the committed duration already counted
// down.
func percentElapsed(s countdown.State) float64 {
	if s.Duration <= 0 {
		return 0
	}

	remaining := float64(s.Remaining) / float64(s.Duration)
	if remaining > 1 {
		remaining = 1
	}

	return 1 - remaining
}

func (m *Model) phaseView(s countdown.State) string {
	switch s.Phase {
	case countdown.Running:
		return m.style.Hint.Render("running")
	case countdown.Paused:
		return m.style.Secondary.Render("[Paused]")
	case countdown.Expired:
		return m.style.Secondary.Render("[Time's up]")
	}

	return m.style.Hint.Render("idle")
}

func (m *Model) helpView(s countdown.State) string {
	start := m.keys.start
	start.SetHelp("s", strings.ToLower(s.StartLabel()))

	return m.help.ShortHelpView([]key.Binding{
		m.keys.set,
		start,
		m.keys.pause,
		m.keys.reset,
		m.keys.quit,
	})
}

func (m *Model) View() string {
	s := m.machine.State()

	var b strings.Builder

	b.WriteString(m.style.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.style.Main.Render(s.Display()))
	b.WriteString(" ")
	b.WriteString(m.phaseView(s))

	if m.opts.Display.Progress {
		b.WriteString("\n\n")
		b.WriteString(m.progress.ViewAs(percentElapsed(s)))
	}

	b.WriteString("\n\n")
	b.WriteString(m.helpView(s))

	return m.style.Base.Render(b.String())
}
