package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// SearchBar is the query input in the header
type SearchBar struct {
	input textinput.Model
}

// NewSearchBar creates a focused search input
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 100
	ti.Width = 30
	ti.Prompt = "🔍 "
	ti.Focus()

	return SearchBar{input: ti}
}

// SetTheme applies theme colors to the input
func (s *SearchBar) SetTheme(t styles.Theme) {
	s.input.PromptStyle = t.Logo
	s.input.TextStyle = t.NumResult
	s.input.PlaceholderStyle = t.NumResult.Faint(true)
	s.input.Cursor.Style = t.NumResult
}

// SetWidth sets the visible input width
func (s *SearchBar) SetWidth(width int) {
	s.input.Width = max(width, 10)
}

// Focus focuses the input
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes focus from the input
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the current query
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the query
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// Update routes messages to the input
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the input
func (s SearchBar) View() string {
	return s.input.View()
}
