package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/countdown/internal/config"
)

const (
	padding  = 2
	maxWidth = 60

	defaultColor = "#B0DB43"
)

// Style holds the lipgloss styles used to render the timer.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
}

func newStyle(d config.DisplayConfig) Style {
	color := d.Color
	if color == "" {
		color = defaultColor
	}

	hint := lipgloss.Color("#626262")
	secondary := lipgloss.Color("#3C3C3C")

	if d.DarkTheme {
		hint = lipgloss.Color("#9B9B9B")
		secondary = lipgloss.Color("#DDDDDD")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Bold(true),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint),
	}
}
