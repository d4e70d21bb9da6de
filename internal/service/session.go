package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/fetch"
	"github.com/mmcdole/popcorn/internal/store"
)

// SessionOptions configures a Session
type SessionOptions struct {
	RankResults bool // reorder search results by fuzzy closeness to the query
	DefaultDark bool // theme used when no preference is stored
}

// Session is the application state: query, selection, watched list and theme.
// It is mutated only through its command methods.
type Session struct {
	catalog domain.CatalogRepository
	logger  *slog.Logger

	search *fetch.Controller[[]domain.SearchResult]
	detail *fetch.Controller[domain.MovieDetail]

	watched *store.Cell[domain.WatchedList]
	dark    *store.Cell[bool]

	query      string
	selectedID string
}

// NewSession loads persisted state from kv and wires the lookup streams
func NewSession(ctx context.Context, catalog domain.CatalogRepository, kv domain.KV, opts SessionOptions, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watched, err := store.NewCell(ctx, kv, store.KeyWatched, domain.WatchedList{}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load watched list: %w", err)
	}
	dark, err := store.NewCell(ctx, kv, store.KeyDark, opts.DefaultDark, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}

	s := &Session{
		catalog: catalog,
		logger:  logger,
		watched: watched,
		dark:    dark,
	}

	searchFn := catalog.Search
	if opts.RankResults {
		searchFn = func(ctx context.Context, query string) ([]domain.SearchResult, error) {
			results, err := catalog.Search(ctx, query)
			if err != nil {
				return nil, err
			}
			return RankResults(results, query), nil
		}
	}

	s.search = fetch.NewController(searchFn,
		fetch.WithName("search"),
		fetch.WithLogger(logger),
		fetch.WithMessage(domain.UserMessage),
	)
	s.detail = fetch.NewController(catalog.Detail,
		fetch.WithName("detail"),
		fetch.WithLogger(logger),
		fetch.WithErrorSink(func(id string, err error) {
			logger.Error("detail lookup failed", "id", id, "error", err)
		}),
	)

	return s, nil
}

// === Search ===

// SetQuery records a new query and supersedes the running search.
// ok is false when no request needs to be issued.
func (s *Session) SetQuery(query string) (fetch.Ticket, bool) {
	if query == s.query {
		return fetch.Ticket{}, false
	}
	s.query = query
	return s.search.Submit(query)
}

// Query returns the current query
func (s *Session) Query() string { return s.query }

// RunSearch performs the lookup for ticket (blocking)
func (s *Session) RunSearch(t fetch.Ticket) fetch.Result[[]domain.SearchResult] {
	return s.search.Run(t)
}

// ApplySearch folds a finished search into the state
func (s *Session) ApplySearch(r fetch.Result[[]domain.SearchResult]) bool {
	return s.search.Apply(r)
}

// SearchState returns the results / loading / error snapshot
func (s *Session) SearchState() fetch.State[[]domain.SearchResult] {
	return s.search.State()
}

// === Selection ===

// Select toggles the selection: selecting the open title closes it,
// anything else opens it and starts a detail lookup.
func (s *Session) Select(id string) (fetch.Ticket, bool) {
	if id == "" || id == s.selectedID {
		s.Close()
		return fetch.Ticket{}, false
	}
	s.selectedID = id
	return s.detail.Submit(id)
}

// Close clears the selection and cancels its detail lookup
func (s *Session) Close() {
	s.selectedID = ""
	s.detail.Close()
}

// SelectedID returns the open title, "" when none
func (s *Session) SelectedID() string { return s.selectedID }

// RunDetail performs the lookup for ticket (blocking)
func (s *Session) RunDetail(t fetch.Ticket) fetch.Result[domain.MovieDetail] {
	return s.detail.Run(t)
}

// ApplyDetail folds a finished detail lookup into the state
func (s *Session) ApplyDetail(r fetch.Result[domain.MovieDetail]) bool {
	return s.detail.Apply(r)
}

// DetailState returns the detail snapshot
func (s *Session) DetailState() fetch.State[domain.MovieDetail] {
	return s.detail.State()
}

// === Watched ===

// Watched returns the watched list
func (s *Session) Watched() domain.WatchedList { return s.watched.Get() }

// WatchedEntry returns the entry for id if the title was already rated
func (s *Session) WatchedEntry(id string) (domain.WatchedEntry, bool) {
	return s.watched.Get().Find(id)
}

// AddWatched rates detail and appends it to the watched list, then closes the detail
func (s *Session) AddWatched(ctx context.Context, detail domain.MovieDetail, userRating, decisions int) error {
	entry, err := domain.NewWatchedEntry(detail, userRating, decisions)
	if err != nil {
		return err
	}

	var added bool
	err = s.watched.Update(ctx, func(l domain.WatchedList) domain.WatchedList {
		var next domain.WatchedList
		next, added = l.Add(entry)
		return next
	})
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("%s: %w", entry.Title, domain.ErrAlreadyWatched)
	}

	s.logger.Info("added to watched", "id", entry.ID, "title", entry.Title, "rating", entry.UserRating)
	s.Close()
	return nil
}

// DeleteWatched removes id from the watched list
func (s *Session) DeleteWatched(ctx context.Context, id string) error {
	err := s.watched.Update(ctx, func(l domain.WatchedList) domain.WatchedList {
		return l.Remove(id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("removed from watched", "id", id)
	return nil
}

// FilterWatched fuzzy-filters the watched list by title
func (s *Session) FilterWatched(query string) []WatchedMatch {
	return FilterWatched(s.watched.Get(), query)
}

// === Theme ===

// Dark reports whether the dark theme is active
func (s *Session) Dark() bool { return s.dark.Get() }

// ToggleTheme flips and persists the theme
func (s *Session) ToggleTheme(ctx context.Context) error {
	return s.dark.Update(ctx, func(v bool) bool { return !v })
}

// Shutdown cancels every in-flight lookup
func (s *Session) Shutdown() {
	s.search.Close()
	s.detail.Close()
}
