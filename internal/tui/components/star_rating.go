package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// StarRating is a 1-10 star picker that counts how often the value changed
type StarRating struct {
	rating    int
	decisions int
}

// Rating returns the chosen rating, 0 when unset
func (s StarRating) Rating() int {
	return s.rating
}

// Decisions returns how many times the rating was changed
func (s StarRating) Decisions() int {
	return s.decisions
}

// Set changes the rating, counting each distinct new value
func (s *StarRating) Set(n int) {
	n = min(max(n, domain.MinUserRating), domain.MaxUserRating)
	if n == s.rating {
		return
	}
	s.rating = n
	s.decisions++
}

// Reset clears the rating and the decision count
func (s *StarRating) Reset() {
	s.rating = 0
	s.decisions = 0
}

// Update handles rating keys. 1-9 set the rating, 0 means 10.
func (s StarRating) Update(msg tea.Msg) (StarRating, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, RatingKeys.Set):
		n := int(keyMsg.String()[0] - '0')
		if n == 0 {
			n = domain.MaxUserRating
		}
		s.Set(n)
	case key.Matches(keyMsg, RatingKeys.Increase):
		s.Set(s.rating + 1)
	case key.Matches(keyMsg, RatingKeys.Decrease):
		if s.rating > domain.MinUserRating {
			s.Set(s.rating - 1)
		}
	}
	return s, nil
}

// View renders the stars followed by the numeric value
func (s StarRating) View(t styles.Theme) string {
	var b strings.Builder
	for i := 1; i <= domain.MaxUserRating; i++ {
		if i <= s.rating {
			b.WriteString(t.Star.Render("★"))
		} else {
			b.WriteString(t.Dim.Render("☆"))
		}
	}
	value := ""
	if s.rating > 0 {
		value = fmt.Sprintf(" %d", s.rating)
	}
	return b.String() + t.Title.Render(value)
}
