package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		m.Shutdown()
		return m, tea.Quit
	}

	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	}

	// Typing in the search input
	if m.Focus == PaneSearch {
		return m.handleSearchInput(msg)
	}

	// Typing a watched filter
	if m.showingWatched() && m.Watched.IsFilterTyping() {
		var cmd tea.Cmd
		m.Watched, cmd = m.Watched.Update(msg)
		m.refreshWatched()
		return m, cmd
	}

	// Scoped subscriptions: Escape while a movie is open, Enter depending on focus
	if cmd, handled := m.Bus.Dispatch(msg); handled {
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		m.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.SwitchFocus):
		return m, m.setFocus(m.nextFocus())

	case key.Matches(msg, Keys.ToggleTheme):
		return m, m.toggleTheme()

	case key.Matches(msg, Keys.ToggleLeft):
		m.LeftBox.Toggle()
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.ToggleRight):
		m.RightBox.Toggle()
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.AddWatched) && !m.showingWatched():
		return m, m.addWatched()

	case key.Matches(msg, Keys.Filter) && m.showingWatched():
		m.setFocus(PaneRight)
		cmd := m.Watched.ToggleFilter()
		m.refreshWatched()
		return m, cmd

	case key.Matches(msg, Keys.Delete) && m.showingWatched() && m.Focus == PaneRight:
		return m, m.deleteWatched()
	}

	// Route to the focused component
	var cmds []tea.Cmd
	switch m.Focus {
	case PaneResults:
		var cmd tea.Cmd
		m.Results, cmd = m.Results.Update(msg)
		cmds = append(cmds, cmd)
	case PaneRight:
		if m.showingWatched() {
			var cmd tea.Cmd
			m.Watched, cmd = m.Watched.Update(msg)
			m.refreshWatched()
			cmds = append(cmds, cmd)
		}
	}

	// Rating keys reach the open movie from either pane
	if !m.showingWatched() {
		var cmd tea.Cmd
		m.Detail, cmd = m.Detail.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleSearchInput routes keys to the search input and issues a lookup on change
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.SwitchFocus):
		return m, m.setFocus(m.nextFocus())

	case key.Matches(msg, Keys.Escape):
		// Escape still closes an open movie while typing
		cmd, _ := m.Bus.Dispatch(msg)
		return m, cmd
	}

	prev := m.Search.Value()
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if m.Search.Value() == prev {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.setQuery(m.Search.Value()))
}

// showingWatched reports whether the right box shows the watched list
func (m Model) showingWatched() bool {
	return m.Session.SelectedID() == ""
}
