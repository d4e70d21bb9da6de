package tui

import (
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/fetch"
)

// Message types for the TUI

// SearchResultMsg carries a finished search lookup
type SearchResultMsg struct {
	Result fetch.Result[[]domain.SearchResult]
}

// DetailResultMsg carries a finished detail lookup
type DetailResultMsg struct {
	Result fetch.Result[domain.MovieDetail]
}

// CloseDetailMsg closes the open movie
type CloseDetailMsg struct{}

// FocusSearchMsg focuses the search input and clears the query
type FocusSearchMsg struct{}

// SelectResultMsg opens the result under the cursor
type SelectResultMsg struct{}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
