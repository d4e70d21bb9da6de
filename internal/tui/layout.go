package tui

import "github.com/mmcdole/popcorn/internal/tui/components"

// boxLayout holds calculated box widths for the View
type boxLayout struct {
	leftWidth     int
	rightWidth    int
	contentHeight int
}

// calculateLayout splits the screen between the results and the right box
func (m Model) calculateLayout() boxLayout {
	leftWidth := max(m.Width*LeftColumnPercent/100, MinColumnWidth)
	return boxLayout{
		leftWidth:     leftWidth,
		rightWidth:    max(m.Width-leftWidth, MinColumnWidth),
		contentHeight: max(m.Height-ChromeHeight, components.BorderHeight+components.BoxTitleLines+1),
	}
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	layout := m.calculateLayout()

	w, h := components.ContentSize(layout.leftWidth, layout.contentHeight)
	m.Results.SetSize(w, h)

	w, h = components.ContentSize(layout.rightWidth, layout.contentHeight)
	m.Detail.SetSize(w, h)
	m.Watched.SetSize(w, h)

	m.Search.SetWidth(m.Width / 3)
}
