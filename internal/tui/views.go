package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	layout := m.calculateLayout()

	left := m.LeftBox.Render(m.Theme, "Results", m.Results.View(m.Theme),
		layout.leftWidth, layout.contentHeight, m.Focus == PaneResults)

	var right string
	if m.showingWatched() {
		right = m.RightBox.Render(m.Theme, "Watched", m.Watched.View(m.Theme),
			layout.rightWidth, layout.contentHeight, m.Focus == PaneRight)
	} else {
		right = m.RightBox.Render(m.Theme, "Movie", m.Detail.View(m.Theme),
			layout.rightWidth, layout.contentHeight, m.Focus == PaneRight)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)
}

// renderHeader renders the logo, search input, result count and theme icon
func (m Model) renderHeader() string {
	t := m.Theme

	logo := t.Logo.Render("🍿 usePopcorn")
	search := m.Search.View()

	results := ""
	if n := len(m.Results.Results()); n > 0 {
		results = t.NumResult.Render("Found ") + t.Logo.Render(fmt.Sprint(n)) + t.NumResult.Render(" results")
	}
	icon := t.Logo.Render(t.Icon())

	right := results + t.NumResult.Render("  ") + icon
	gap := m.Width - lipgloss.Width(logo) - lipgloss.Width(search) - lipgloss.Width(right) - 6
	if gap < 1 {
		gap = 1
	}
	line := logo + t.NumResult.Render("  ") + search + t.NumResult.Render(strings.Repeat(" ", gap)) + right
	return t.Header.Width(m.Width).MaxHeight(1).Render(line)
}

// renderFooter renders the status message and context hints
func (m Model) renderFooter() string {
	t := m.Theme

	// Left side: status message if any
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = t.Error.Render(m.StatusMsg)
		} else {
			left = t.Dim.Render(m.StatusMsg)
		}
	}

	// Center section: context-specific hints
	var hints []string
	hint := func(k, desc string) {
		hints = append(hints, t.HelpKey.Render(k)+t.HelpDesc.Render(" "+desc))
	}
	switch {
	case m.Focus == PaneSearch:
		hint("tab", "results")
	case !m.showingWatched():
		hint("1-0", "rate")
		if m.Detail.CanAdd() {
			hint("a", "add")
		}
		hint("esc", "close")
	case m.Focus == PaneRight:
		hint("/", "filter")
		hint("x", "delete")
	default:
		hint("enter", "open")
	}
	center := strings.Join(hints, "  ")

	// Right side: "? help" hint
	right := t.HelpKey.Render("?") + t.HelpDesc.Render(" help")

	// Layout: left + centered hints + right
	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	// Center the hints in available space
	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                      MOVIE
  tab        Switch focus          1-9, 0 Rate (0 = 10)
  j/k        Up/down               ←/→    Adjust rating
  g/G        First/last item       a      Add to watchlist
  Ctrl+u/d   Scroll half page      Esc    Close movie
  Enter      Open / search

WATCHED                         OTHER
  /          Filter                t      Toggle theme
  x/d        Delete                [ ]    Collapse boxes
                                   q      Quit
                                   ?      This help

Press esc to return...
`

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Palette.PrimaryLight).
		Foreground(m.Theme.Palette.Text).
		Padding(1, 2)

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		modal.Render(help))
}
