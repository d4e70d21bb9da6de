package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// Layout constants for boxes
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Title line inside the border
	BoxTitleLines = 1
)

// Box is a bordered panel that can be collapsed to its title line
type Box struct {
	collapsed bool
}

// Toggle collapses or expands the box
func (b *Box) Toggle() {
	b.collapsed = !b.collapsed
}

// Collapsed reports whether only the title line is shown
func (b Box) Collapsed() bool {
	return b.collapsed
}

// ContentSize returns the space available to the box content
func ContentSize(width, height int) (int, int) {
	return max(width-BorderWidth, 1), max(height-BorderHeight-BoxTitleLines, 1)
}

// Render draws the box with a title line and the toggle marker
func (b Box) Render(t styles.Theme, title, content string, width, height int, focused bool) string {
	style := t.InactiveBorder
	if focused {
		style = t.ActiveBorder
	}
	innerWidth := max(width-BorderWidth, 1)

	marker := "–"
	if b.collapsed {
		marker = "+"
	}
	markerView := t.ToggleButton.Render(" " + marker + " ")
	titleView := t.Accent.Render(styles.Truncate(title, innerWidth-lipgloss.Width(markerView)-1))
	gap := innerWidth - lipgloss.Width(titleView) - lipgloss.Width(markerView)
	titleLine := titleView + strings.Repeat(" ", max(gap, 0)) + markerView

	body := titleLine
	if !b.collapsed {
		body += "\n" + content
	}

	// Subtract frame (border) size so total rendered size equals width x height
	frameW, frameH := style.GetFrameSize()
	style = style.Width(width - frameW)
	if !b.collapsed {
		style = style.Height(height - frameH)
	}
	return style.Render(body)
}
