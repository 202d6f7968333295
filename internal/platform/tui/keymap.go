package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the hub menu and dashboard.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Favorite key.Binding
	Filter   key.Binding
	Stats    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard hub bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		Filter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Stats: key.NewBinding(
			key.WithKeys("tab", "s"),
			key.WithHelp("tab", "stats"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Favorite, k.Filter, k.Stats, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Favorite, k.Filter, k.Stats},
		{k.Back, k.Quit},
	}
}
