package domain

import (
	"context"
	"errors"
)

// Sentinel errors for domain operations
var (
	// ErrMovieNotFound indicates the catalog reported no match
	ErrMovieNotFound = errors.New("movie not found")

	// ErrRequestFailed indicates a transport failure or non-success response
	ErrRequestFailed = errors.New("catalog request failed")

	// ErrInvalidRating indicates a user rating outside 1-10
	ErrInvalidRating = errors.New("user rating out of range")

	// ErrAlreadyWatched indicates the title is already on the watched list
	ErrAlreadyWatched = errors.New("movie already rated")
)

// User-visible messages for lookup failures
const (
	MsgMovieNotFound = "Movie not found!"
	MsgRequestFailed = "Something went wrong!!!"
)

// UserMessage maps a lookup error to the message shown to the user.
// Cancellation is not an error from the user's point of view and maps to "".
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return ""
	case errors.Is(err, ErrMovieNotFound):
		return MsgMovieNotFound
	default:
		return MsgRequestFailed
	}
}
