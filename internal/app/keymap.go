package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the app-level keybindings. Everything else goes to the
// focused row.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	NextRow key.Binding
	PrevRow key.Binding
	Reload  key.Binding
	Back    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		NextRow: key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab", "next row")),
		PrevRow: key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab", "prev row")),
		Reload:  key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reload config")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
