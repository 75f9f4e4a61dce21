package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Increase    key.Binding
	Decrease    key.Binding
	Toggle      key.Binding
	AllBrackets key.Binding
	NoBrackets  key.Binding
	Polygyny    key.Binding
	Reset       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "previous control"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "increase / next"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "decrease / previous"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		AllBrackets: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all ages"),
		),
		NoBrackets: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no ages"),
		),
		Polygyny: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "polygyny scenario"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Increase, k.Toggle, k.Polygyny, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Increase, k.Decrease},
		{k.Toggle, k.AllBrackets, k.NoBrackets},
		{k.Polygyny, k.Reset, k.Help, k.Quit},
	}
}
