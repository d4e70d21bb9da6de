package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// ScrollIndicatorLines is the space reserved for "↑ more" and "↓ more"
const ScrollIndicatorLines = 2

// ResultsList shows the search results, the loader or the error message
type ResultsList struct {
	results []domain.SearchResult
	nav     listCursor

	// Dimensions (content area)
	width   int
	height  int
	focused bool

	// Lookup state
	loading      bool
	spinnerFrame int
	err          string

	selectedID string // open detail, marked in the list
}

// NewResultsList creates an empty results list
func NewResultsList() ResultsList {
	return ResultsList{}
}

// SetResults replaces the list content and returns to the top
func (r *ResultsList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.nav.reset()
	r.nav.clamp(len(results))
}

// Results returns the displayed results
func (r ResultsList) Results() []domain.SearchResult {
	return r.results
}

// SetLoading toggles the loader
func (r *ResultsList) SetLoading(loading bool) {
	r.loading = loading
}

// SetError sets the message shown instead of the list ("" hides it)
func (r *ResultsList) SetError(msg string) {
	r.err = msg
}

// SetSpinnerFrame advances the loader animation
func (r *ResultsList) SetSpinnerFrame(frame int) {
	r.spinnerFrame = frame
}

// SetSelectedID marks the result whose detail is open
func (r *ResultsList) SetSelectedID(id string) {
	r.selectedID = id
}

// SetSize updates the content area dimensions
func (r *ResultsList) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.nav.setMaxVisible(height - ScrollIndicatorLines)
}

// SetFocused sets keyboard focus
func (r *ResultsList) SetFocused(focused bool) {
	r.focused = focused
}

// SelectedResult returns the result under the cursor
func (r ResultsList) SelectedResult() (domain.SearchResult, bool) {
	if r.loading || r.err != "" || len(r.results) == 0 {
		return domain.SearchResult{}, false
	}
	return r.results[r.nav.cursor], true
}

// Update handles navigation keys while focused
func (r ResultsList) Update(msg tea.Msg) (ResultsList, tea.Cmd) {
	if !r.focused {
		return r, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		r.nav.handleKey(msg, len(r.results))
	}
	return r, nil
}

// View renders the list content (without the surrounding box)
func (r ResultsList) View(t styles.Theme) string {
	if r.loading {
		return t.Dim.Render(Spinner(r.spinnerFrame) + " Loading...")
	}
	if r.err != "" {
		return t.Error.Render("⛔ " + r.err)
	}
	if len(r.results) == 0 {
		return t.Dim.Render("Search for a movie to get started")
	}

	start, end := r.nav.window(len(r.results))
	lines := make([]string, 0, end-start+ScrollIndicatorLines)

	// ALWAYS reserve space for header (even if empty) to prevent layout shifts
	header := " "
	if start > 0 {
		header = t.Dim.Render("↑ more")
	}
	lines = append(lines, header)

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(t, r.results[i], i == r.nav.cursor && r.focused))
	}

	footer := " "
	if end < len(r.results) {
		footer = t.Dim.Render("↓ more")
	}
	lines = append(lines, footer)

	return strings.Join(lines, "\n")
}

func (r ResultsList) renderResult(t styles.Theme, res domain.SearchResult, selected bool) string {
	year := "  🗓 " + res.Year
	marker := "  "
	if res.ID == r.selectedID {
		marker = "▸ "
	}
	titleWidth := r.width - 2 - len([]rune(marker)) - styles.TextWidth(year)

	accent := t.Palette.PrimaryLight
	dim := t.Palette.TextDark
	parts := []styles.RowPart{
		{Text: marker, Foreground: &accent},
		{Text: styles.Truncate(res.Title, titleWidth), Foreground: nil},
		{Text: year, Foreground: &dim},
	}
	return t.RenderListRow(parts, selected, r.width)
}
