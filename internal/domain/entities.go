package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// notAvailable is the catalog's placeholder for a missing attribute
const notAvailable = "N/A"

// SearchResult is a lightweight catalog entry returned by a search
type SearchResult struct {
	ID        string // Catalog identifier (IMDb ID)
	Title     string // Display title
	Year      string // Release year; may be a range for series ("2008–2013")
	PosterURL string // Poster image URL, "N/A" when the catalog has none
}

// MovieDetail is the full catalog record for one identifier
type MovieDetail struct {
	ID         string
	Title      string
	Year       string
	PosterURL  string
	Runtime    string // Raw runtime, e.g. "148 min" or "N/A"
	IMDbRating string // Raw rating, e.g. "8.8" or "N/A"
	Plot       string
	Released   string
	Actors     string
	Director   string
	Genre      string
}

// RuntimeMinutes returns the runtime as whole minutes (0 when unknown)
func (d MovieDetail) RuntimeMinutes() int {
	return ParseRuntime(d.Runtime)
}

// Rating returns the IMDb rating as a number (0 when unknown)
func (d MovieDetail) Rating() float64 {
	return ParseRating(d.IMDbRating)
}

// Headline returns the "released • runtime" line shown under the title
func (d MovieDetail) Headline() string {
	return fmt.Sprintf("%s • %s", d.Released, d.Runtime)
}

// WatchedEntry is a user-created record pairing a catalog identifier with a personal rating
type WatchedEntry struct {
	ID              string  `json:"imdbID"`
	Title           string  `json:"title"`
	Year            string  `json:"year"`
	PosterURL       string  `json:"poster"`
	IMDbRating      float64 `json:"imdbRating"`
	Runtime         int     `json:"runtime"` // minutes
	UserRating      int     `json:"userRating"`
	RatingDecisions int     `json:"userRatingDecisions"` // times the rating was changed before committing
}

// NewWatchedEntry denormalizes a detail record into a watched entry
func NewWatchedEntry(d MovieDetail, userRating, decisions int) (WatchedEntry, error) {
	if userRating < MinUserRating || userRating > MaxUserRating {
		return WatchedEntry{}, fmt.Errorf("%w: %d", ErrInvalidRating, userRating)
	}
	return WatchedEntry{
		ID:              d.ID,
		Title:           d.Title,
		Year:            d.Year,
		PosterURL:       d.PosterURL,
		IMDbRating:      d.Rating(),
		Runtime:         d.RuntimeMinutes(),
		UserRating:      userRating,
		RatingDecisions: decisions,
	}, nil
}

// User rating bounds
const (
	MinUserRating = 1
	MaxUserRating = 10
)

// ParseRuntime converts a raw runtime ("148 min") to minutes.
// "N/A", empty and non-numeric values yield 0.
func ParseRuntime(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == notAvailable {
		return 0
	}
	fields := strings.Fields(raw)
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseRating converts a raw rating ("7.9") to a number; unknown yields 0
func ParseRating(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == notAvailable {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

// HasPoster reports whether the catalog provided a poster URL
func HasPoster(url string) bool {
	return url != "" && url != notAvailable
}
