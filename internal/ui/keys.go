package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global key bindings
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding

	// View switching
	Bible  key.Binding
	Topics key.Binding
	Picker key.Binding
}

// DefaultKeyMap returns the default vim-like key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		Bible: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "bible"),
		),
		Topics: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "topics"),
		),
		Picker: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "go to"),
		),
	}
}
