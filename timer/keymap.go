package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	set   key.Binding
	start key.Binding
	pause key.Binding
	reset key.Binding
	quit  key.Binding
}

var defaultKeymap = keymap{
	set: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "set"),
	),
	start: key.NewBinding(
		key.WithKeys("s", " "),
		key.WithHelp("s", "start"),
	),
	pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q", "quit"),
	),
}
