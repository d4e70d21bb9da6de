package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Focus
	SwitchFocus key.Binding
	Enter       key.Binding
	Escape      key.Binding

	// Actions
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Filter      key.Binding
	Delete      key.Binding
	AddWatched  key.Binding
	ToggleLeft  key.Binding
	ToggleRight key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Focus
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select / search"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close movie"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter watched"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete watched"),
		),
		AddWatched: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to watchlist"),
		),
		ToggleLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "collapse results"),
		),
		ToggleRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "collapse watched"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
