package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner frames for loading animation
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner returns the frame for the given tick
func Spinner(frame int) string {
	return spinnerFrames[frame%len(spinnerFrames)]
}

// listCursor tracks selection and scroll offset of a vertical list
type listCursor struct {
	cursor     int
	offset     int
	maxVisible int
}

// setMaxVisible updates the number of rows that fit
func (l *listCursor) setMaxVisible(n int) {
	if n < 1 {
		n = 1
	}
	l.maxVisible = n
	l.ensureVisible()
}

// clamp keeps the cursor inside [0, count)
func (l *listCursor) clamp(count int) {
	if count == 0 {
		l.cursor = 0
		l.offset = 0
		return
	}
	if l.cursor >= count {
		l.cursor = count - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.ensureVisible()
}

// reset moves back to the first row
func (l *listCursor) reset() {
	l.cursor = 0
	l.offset = 0
}

// handleKey moves the cursor for navigation keys. Returns true if consumed.
func (l *listCursor) handleKey(msg tea.KeyMsg, count int) bool {
	if count == 0 {
		return false
	}

	switch {
	case key.Matches(msg, ListKeys.Down):
		if l.cursor < count-1 {
			l.cursor++
		}
	case key.Matches(msg, ListKeys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(msg, ListKeys.Home):
		l.cursor = 0
	case key.Matches(msg, ListKeys.End):
		l.cursor = count - 1
	case key.Matches(msg, ListKeys.HalfDown):
		l.cursor += l.maxVisible / 2
		if l.cursor >= count {
			l.cursor = count - 1
		}
	case key.Matches(msg, ListKeys.HalfUp):
		l.cursor -= l.maxVisible / 2
		if l.cursor < 0 {
			l.cursor = 0
		}
	default:
		return false
	}
	l.ensureVisible()
	return true
}

// window returns the visible [start, end) range
func (l *listCursor) window(count int) (int, int) {
	end := l.offset + l.maxVisible
	if end > count {
		end = count
	}
	return l.offset, end
}

func (l *listCursor) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}
