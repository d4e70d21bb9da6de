package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/fetch"
	"github.com/mmcdole/popcorn/internal/service"
)

// Command factories for async operations

// SearchCmd runs the search lookup for ticket
func SearchCmd(s *service.Session, t fetch.Ticket) tea.Cmd {
	return func() tea.Msg {
		return SearchResultMsg{Result: s.RunSearch(t)}
	}
}

// DetailCmd runs the detail lookup for ticket
func DetailCmd(s *service.Session, t fetch.Ticket) tea.Cmd {
	return func() tea.Msg {
		return DetailResultMsg{Result: s.RunDetail(t)}
	}
}

// msgCmd wraps a message in a command
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
