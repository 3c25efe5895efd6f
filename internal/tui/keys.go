package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	SwitchPane  key.Binding
	Promote     key.Binding
	Demote      key.Binding
	ClearQueue  key.Binding
	ClearFilter key.Binding
	FilterName  key.Binding
	FilterDesc  key.Binding
	Filter      key.Binding
	Sort        key.Binding
	Search      key.Binding
	Colorcode   key.Binding
	Exec        key.Binding
	Macro       key.Binding
	Reload      key.Binding
	Yank        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/home", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G/end", "go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page down"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Promote: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right", "add to queue"),
		),
		Demote: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "remove from queue"),
		),
		ClearQueue: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear queue"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filter"),
		),
		FilterName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "filter by name"),
		),
		FilterDesc: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "filter by description"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "sort"),
		),
		Search: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "search"),
		),
		Colorcode: key.NewBinding(
			key.WithKeys(";"),
			key.WithHelp(";", "colorcode"),
		),
		Exec: key.NewBinding(
			key.WithKeys("!"),
			key.WithHelp("!", "execute"),
		),
		Macro: key.NewBinding(
			key.WithKeys("@"),
			key.WithHelp("@", "macro"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank name"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
