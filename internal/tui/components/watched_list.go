package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/service"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// summaryLines is the height of the summary block above the list
const summaryLines = 3

// WatchedList shows the watched summary and the rated titles
type WatchedList struct {
	summary domain.WatchedSummary
	entries []service.WatchedMatch
	nav     listCursor

	// Dimensions (content area)
	width   int
	height  int
	focused bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
}

// NewWatchedList creates an empty watched list
func NewWatchedList() WatchedList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.CharLimit = 100

	return WatchedList{filterInput: ti}
}

// SetEntries replaces the displayed entries
func (w *WatchedList) SetEntries(entries []service.WatchedMatch) {
	w.entries = entries
	w.nav.clamp(len(entries))
}

// SetSummary sets the aggregate shown above the list
func (w *WatchedList) SetSummary(s domain.WatchedSummary) {
	w.summary = s
}

// SetSize updates the content area dimensions
func (w *WatchedList) SetSize(width, height int) {
	w.width = width
	w.height = height
	w.recalcMaxVisible()
}

// SetFocused sets keyboard focus
func (w *WatchedList) SetFocused(focused bool) {
	w.focused = focused
}

// SetTheme applies theme colors to the filter input
func (w *WatchedList) SetTheme(t styles.Theme) {
	w.filterInput.PromptStyle = t.Accent
	w.filterInput.TextStyle = t.Title
	w.filterInput.PlaceholderStyle = t.Dim
}

// SelectedEntry returns the entry under the cursor
func (w WatchedList) SelectedEntry() (domain.WatchedEntry, bool) {
	if len(w.entries) == 0 {
		return domain.WatchedEntry{}, false
	}
	return w.entries[w.nav.cursor].Entry, true
}

// ToggleFilter activates the filter input
func (w *WatchedList) ToggleFilter() tea.Cmd {
	w.filterActive = true
	w.recalcMaxVisible()
	return w.filterInput.Focus()
}

// IsFiltering returns true if filter mode is active
func (w WatchedList) IsFiltering() bool {
	return w.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (w WatchedList) IsFilterTyping() bool {
	return w.filterActive && w.filterInput.Focused()
}

// FilterQuery returns the current filter text
func (w WatchedList) FilterQuery() string {
	if !w.filterActive {
		return ""
	}
	return w.filterInput.Value()
}

// ClearFilter deactivates the filter and shows all items
func (w *WatchedList) ClearFilter() {
	w.filterActive = false
	w.filterInput.SetValue("")
	w.filterInput.Blur()
	w.nav.reset()
	w.recalcMaxVisible()
}

// Update handles navigation and filter typing while focused
func (w WatchedList) Update(msg tea.Msg) (WatchedList, tea.Cmd) {
	if !w.focused {
		return w, nil
	}

	// Handle filter input when active AND focused (typing mode)
	if w.IsFilterTyping() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, FilterKeys.Escape):
				w.ClearFilter()
				return w, nil
			case key.Matches(keyMsg, FilterKeys.Enter):
				// Accept filter, blur input to allow navigation
				w.filterInput.Blur()
				return w, nil
			case keyMsg.Type == tea.KeyBackspace && w.filterInput.Value() == "":
				w.ClearFilter()
				return w, nil
			}
		}

		var cmd tea.Cmd
		w.filterInput, cmd = w.filterInput.Update(msg)
		w.nav.reset()
		return w, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if w.filterActive && key.Matches(keyMsg, FilterKeys.Escape) {
			w.ClearFilter()
			return w, nil
		}
		w.nav.handleKey(keyMsg, len(w.entries))
	}
	return w, nil
}

// View renders the summary and list (without the surrounding box)
func (w WatchedList) View(t styles.Theme) string {
	var lines []string
	lines = append(lines, w.renderSummary(t)...)

	if len(w.entries) == 0 {
		msg := "No movies rated yet"
		if w.FilterQuery() != "" {
			msg = "No matches"
		}
		lines = append(lines, t.Dim.Render(msg))
	} else {
		start, end := w.nav.window(len(w.entries))
		header := " "
		if start > 0 {
			header = t.Dim.Render("↑ more")
		}
		lines = append(lines, header)
		for i := start; i < end; i++ {
			lines = append(lines, w.renderEntry(t, w.entries[i], i == w.nav.cursor && w.focused))
		}
		footer := " "
		if end < len(w.entries) {
			footer = t.Dim.Render("↓ more")
		}
		lines = append(lines, footer)
	}

	if w.filterActive {
		lines = append(lines, w.renderFilterBar(t))
	}
	return strings.Join(lines, "\n")
}

func (w WatchedList) renderSummary(t styles.Theme) []string {
	s := w.summary
	stats := fmt.Sprintf("#️⃣ %d movies  ⭐️ %.2f  🌟 %.2f  ⏳ %.0f min",
		s.Count, s.AvgIMDbRating, s.AvgUserRating, s.AvgRuntime)
	return []string{
		t.Title.Render("MOVIES YOU WATCHED"),
		t.Subtitle.Render(styles.Truncate(stats, w.width)),
		"",
	}
}

func (w WatchedList) renderEntry(t styles.Theme, m service.WatchedMatch, selected bool) string {
	e := m.Entry
	stats := fmt.Sprintf("  ⭐️ %.1f  🌟 %d  ⏳ %d min", e.IMDbRating, e.UserRating, e.Runtime)
	titleWidth := w.width - 2 - styles.TextWidth(stats)
	title := styles.Truncate(e.Title, titleWidth)

	dim := t.Palette.TextDark
	parts := highlightParts(t, title, m.MatchedIndexes)
	parts = append(parts, styles.RowPart{Text: stats, Foreground: &dim})
	return t.RenderListRow(parts, selected, w.width)
}

func (w WatchedList) renderFilterBar(t styles.Theme) string {
	countStr := ""
	if w.FilterQuery() != "" {
		countStr = t.Dim.Render(fmt.Sprintf(" [%d/%d]", len(w.entries), w.summary.Count))
	}
	return w.filterInput.View() + countStr
}

func (w *WatchedList) recalcMaxVisible() {
	// Reserve space for: summary + scroll indicators (header + footer)
	n := w.height - summaryLines - ScrollIndicatorLines
	// Reserve space for filter bar when active
	if w.filterActive {
		n--
	}
	w.nav.setMaxVisible(n)
}

// highlightParts splits title into row parts, accenting matched byte positions
func highlightParts(t styles.Theme, title string, matched []int) []styles.RowPart {
	if len(matched) == 0 {
		return []styles.RowPart{{Text: title}}
	}

	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	accent := t.Palette.PrimaryLight
	var parts []styles.RowPart
	var run strings.Builder
	runHit := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		part := styles.RowPart{Text: run.String()}
		if runHit {
			part.Foreground = &accent
		}
		parts = append(parts, part)
		run.Reset()
	}

	for i, r := range title {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run.WriteRune(r)
	}
	flush()
	return parts
}
