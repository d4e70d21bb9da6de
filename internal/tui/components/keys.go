package components

import "github.com/charmbracelet/bubbles/key"

// ListKeyMap defines key bindings for scrollable list navigation
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
}

// DefaultListKeyMap returns the default list navigation bindings
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "half page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "half page down"),
		),
	}
}

// RatingKeyMap defines key bindings for the star rating
type RatingKeyMap struct {
	Decrease key.Binding
	Increase key.Binding
	Set      key.Binding
}

// DefaultRatingKeyMap returns the default star rating bindings
func DefaultRatingKeyMap() RatingKeyMap {
	return RatingKeyMap{
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "less"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "more"),
		),
		Set: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "rate"),
		),
	}
}

// FilterKeyMap defines key bindings while typing a filter
type FilterKeyMap struct {
	Escape key.Binding
	Enter  key.Binding
}

// DefaultFilterKeyMap returns the default filter bindings
func DefaultFilterKeyMap() FilterKeyMap {
	return FilterKeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
	}
}

// Package-level key map instances
var (
	ListKeys   = DefaultListKeyMap()
	RatingKeys = DefaultRatingKeyMap()
	FilterKeys = DefaultFilterKeyMap()
)
