package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestParseRuntime(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"148 min", 148},
		{"90 min", 90},
		{"N/A", 0},
		{"", 0},
		{"  42 min ", 42},
		{"unknown", 0},
		{"-5 min", 0},
	}
	for _, tt := range tests {
		if got := ParseRuntime(tt.raw); got != tt.want {
			t.Errorf("ParseRuntime(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"8.8", 8.8},
		{"N/A", 0},
		{"", 0},
		{"bogus", 0},
	}
	for _, tt := range tests {
		if got := ParseRating(tt.raw); got != tt.want {
			t.Errorf("ParseRating(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNewWatchedEntry(t *testing.T) {
	detail := MovieDetail{
		ID:         "tt1375666",
		Title:      "Inception",
		Year:       "2010",
		PosterURL:  "https://example.com/inception.jpg",
		Runtime:    "148 min",
		IMDbRating: "8.8",
	}

	entry, err := NewWatchedEntry(detail, 8, 2)
	if err != nil {
		t.Fatalf("NewWatchedEntry() error: %v", err)
	}
	if entry.Runtime != 148 {
		t.Errorf("Runtime = %d, want 148", entry.Runtime)
	}
	if entry.IMDbRating != 8.8 {
		t.Errorf("IMDbRating = %v, want 8.8", entry.IMDbRating)
	}
	if entry.UserRating != 8 || entry.RatingDecisions != 2 {
		t.Errorf("got rating %d/%d, want 8/2", entry.UserRating, entry.RatingDecisions)
	}
	if entry.ID != detail.ID || entry.Title != detail.Title {
		t.Errorf("identity not carried over: %+v", entry)
	}

	detail.Runtime = "N/A"
	entry, err = NewWatchedEntry(detail, 5, 0)
	if err != nil {
		t.Fatalf("NewWatchedEntry() error: %v", err)
	}
	if entry.Runtime != 0 {
		t.Errorf("Runtime for N/A = %d, want 0", entry.Runtime)
	}
}

func TestNewWatchedEntryRejectsOutOfRange(t *testing.T) {
	for _, rating := range []int{0, -1, 11} {
		_, err := NewWatchedEntry(MovieDetail{ID: "tt1"}, rating, 0)
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"canceled", context.Canceled, ""},
		{"wrapped canceled", fmt.Errorf("search: %w", context.Canceled), ""},
		{"not found", fmt.Errorf("search hulk: %w", ErrMovieNotFound), MsgMovieNotFound},
		{"request failed", fmt.Errorf("%w: status 500", ErrRequestFailed), MsgRequestFailed},
		{"other", errors.New("boom"), MsgRequestFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
