package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// DetailPanel displays the selected movie and its rating controls
type DetailPanel struct {
	detail  domain.MovieDetail
	loading bool

	// Watched entry for the open title, if already rated
	watched   domain.WatchedEntry
	isWatched bool
	rating    StarRating
	spinner   int
	offset    int // scroll offset
	width     int
	height    int
	focused   bool
}

// NewDetailPanel creates an empty detail panel
func NewDetailPanel() DetailPanel {
	return DetailPanel{}
}

// Open resets the panel for a new title
func (d *DetailPanel) Open() {
	d.detail = domain.MovieDetail{}
	d.loading = true
	d.isWatched = false
	d.watched = domain.WatchedEntry{}
	d.rating.Reset()
	d.offset = 0
}

// SetDetail sets the loaded record
func (d *DetailPanel) SetDetail(detail domain.MovieDetail) {
	d.detail = detail
}

// Detail returns the displayed record
func (d DetailPanel) Detail() domain.MovieDetail {
	return d.detail
}

// SetLoading toggles the loader
func (d *DetailPanel) SetLoading(loading bool) {
	d.loading = loading
}

// SetWatched records the existing entry for the open title
func (d *DetailPanel) SetWatched(entry domain.WatchedEntry, ok bool) {
	d.watched = entry
	d.isWatched = ok
}

// SetSpinnerFrame advances the loader animation
func (d *DetailPanel) SetSpinnerFrame(frame int) {
	d.spinner = frame
}

// SetSize updates the content area dimensions
func (d *DetailPanel) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetFocused sets keyboard focus
func (d *DetailPanel) SetFocused(focused bool) {
	d.focused = focused
}

// Rating returns the star rating picked so far
func (d DetailPanel) Rating() StarRating {
	return d.rating
}

// CanAdd reports whether the "+ add to watchlist" action is available
func (d DetailPanel) CanAdd() bool {
	return !d.loading && !d.isWatched && d.detail.ID != "" && d.rating.Rating() > 0
}

// Update handles rating keys, and scroll keys while focused
func (d DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {
	if d.loading {
		return d, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch {
	case d.focused && key.Matches(keyMsg, ListKeys.Down):
		d.offset++
	case d.focused && key.Matches(keyMsg, ListKeys.Up):
		if d.offset > 0 {
			d.offset--
		}
	case !d.isWatched:
		var cmd tea.Cmd
		d.rating, cmd = d.rating.Update(keyMsg)
		return d, cmd
	}
	return d, nil
}

// View renders the panel content (without the surrounding box)
func (d DetailPanel) View(t styles.Theme) string {
	if d.loading {
		return t.Dim.Render(Spinner(d.spinner) + " Loading...")
	}
	if d.detail.ID == "" {
		return t.Dim.Render("No details available")
	}

	lines := d.renderLines(t)

	// Clamp scroll offset
	maxOffset := max(len(lines)-d.height, 0)
	offset := min(d.offset, maxOffset)
	end := min(offset+d.height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}

func (d DetailPanel) renderLines(t styles.Theme) []string {
	width := max(d.width, 10)
	m := d.detail

	var lines []string
	lines = append(lines, t.Title.Render(styles.Truncate("← "+m.Title, width)))
	lines = append(lines, t.Subtitle.Render(styles.Truncate(m.Headline(), width)))
	if m.Genre != "" {
		lines = append(lines, t.Subtitle.Render(styles.Truncate(m.Genre, width)))
	}
	lines = append(lines, t.Star.Render("⭐ ")+t.Subtitle.Render(m.IMDbRating+" IMDB rating"))
	lines = append(lines, "")

	if d.isWatched {
		lines = append(lines, t.Accent.Render(fmt.Sprintf("you have Rated this movie %d🌟", d.watched.UserRating)))
	} else {
		lines = append(lines, d.rating.View(t))
		if d.rating.Rating() > 0 {
			lines = append(lines, t.Button.Render("+ add to watchlist")+t.Dim.Render("  (a)"))
		}
	}
	lines = append(lines, "")

	for _, l := range styles.Wrap(m.Plot, width) {
		lines = append(lines, t.Italic.Render(l))
	}
	lines = append(lines, "")

	for _, l := range styles.Wrap("Starring "+m.Actors, width) {
		lines = append(lines, t.Subtitle.Render(l))
	}
	for _, l := range styles.Wrap("Directed by "+m.Director, width) {
		lines = append(lines, t.Subtitle.Render(l))
	}
	return lines
}
