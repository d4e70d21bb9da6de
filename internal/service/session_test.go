package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/store"
)

// mockCatalog implements domain.CatalogRepository for testing.
type mockCatalog struct {
	mu       sync.Mutex
	results  map[string][]domain.SearchResult
	details  map[string]domain.MovieDetail
	searches []string
	lookups  []string
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		results: map[string][]domain.SearchResult{
			"hulk": {
				{ID: "tt0286716", Title: "Hulk", Year: "2003"},
				{ID: "tt0800080", Title: "The Incredible Hulk", Year: "2008"},
			},
		},
		details: map[string]domain.MovieDetail{
			"tt0286716": {ID: "tt0286716", Title: "Hulk", Year: "2003", Runtime: "138 min", IMDbRating: "5.6"},
			"tt0800080": {ID: "tt0800080", Title: "The Incredible Hulk", Year: "2008", Runtime: "N/A", IMDbRating: "6.6"},
		},
	}
}

func (m *mockCatalog) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches = append(m.searches, query)
	if r, ok := m.results[query]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("search %q: %w", query, domain.ErrMovieNotFound)
}

func (m *mockCatalog) Detail(ctx context.Context, id string) (domain.MovieDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = append(m.lookups, id)
	if d, ok := m.details[id]; ok {
		return d, nil
	}
	return domain.MovieDetail{}, domain.ErrRequestFailed
}

func newTestSession(t *testing.T, kv domain.KV) (*Session, *mockCatalog) {
	t.Helper()
	if kv == nil {
		kv = store.NewMemoryStore()
	}
	catalog := newMockCatalog()
	s, err := NewSession(context.Background(), catalog, kv, SessionOptions{DefaultDark: true}, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, catalog
}

func TestSessionSearchToWatchedScenario(t *testing.T) {
	ctx := context.Background()
	s, catalog := newTestSession(t, nil)

	ticket, ok := s.SetQuery("hulk")
	if !ok {
		t.Fatal("expected a search request")
	}
	if !s.ApplySearch(s.RunSearch(ticket)) {
		t.Fatal("search result should apply")
	}
	results := s.SearchState().Data
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	ticket, ok = s.Select(results[0].ID)
	if !ok {
		t.Fatal("expected a detail request")
	}
	s.ApplyDetail(s.RunDetail(ticket))
	detail := s.DetailState().Data
	if detail.ID != "tt0286716" {
		t.Fatalf("unexpected detail %+v", detail)
	}
	if len(catalog.lookups) != 1 || catalog.lookups[0] != "tt0286716" {
		t.Errorf("expected one detail lookup, got %v", catalog.lookups)
	}

	if err := s.AddWatched(ctx, detail, 8, 1); err != nil {
		t.Fatalf("AddWatched failed: %v", err)
	}
	watched := s.Watched()
	if len(watched) != 1 {
		t.Fatalf("expected 1 watched entry, got %d", len(watched))
	}
	if watched[0].UserRating != 8 || watched[0].Runtime != 138 {
		t.Errorf("unexpected entry %+v", watched[0])
	}
	if s.SelectedID() != "" {
		t.Error("adding should close the detail")
	}
}

func TestSessionSetQueryUnchangedIsNoop(t *testing.T) {
	s, catalog := newTestSession(t, nil)

	ticket, _ := s.SetQuery("hulk")
	s.ApplySearch(s.RunSearch(ticket))

	if _, ok := s.SetQuery("hulk"); ok {
		t.Error("unchanged query must not issue a request")
	}
	if len(catalog.searches) != 1 {
		t.Errorf("expected 1 search, got %d", len(catalog.searches))
	}
}

func TestSessionEmptyQueryClears(t *testing.T) {
	s, catalog := newTestSession(t, nil)

	ticket, _ := s.SetQuery("nothing")
	s.ApplySearch(s.RunSearch(ticket))
	if got := s.SearchState().Err; got != domain.MsgMovieNotFound {
		t.Fatalf("Err = %q, want %q", got, domain.MsgMovieNotFound)
	}

	if _, ok := s.SetQuery(""); ok {
		t.Error("empty query must not issue a request")
	}
	st := s.SearchState()
	if st.Err != "" || len(st.Data) != 0 || st.Loading {
		t.Errorf("expected cleared state, got %+v", st)
	}
	if len(catalog.searches) != 1 {
		t.Errorf("expected 1 search, got %v", catalog.searches)
	}
}

func TestSessionSelectToggles(t *testing.T) {
	s, _ := newTestSession(t, nil)

	first, ok := s.Select("tt0286716")
	if !ok {
		t.Fatal("expected detail request")
	}
	if _, ok := s.Select("tt0286716"); ok {
		t.Error("selecting the open title should close it")
	}
	if s.SelectedID() != "" {
		t.Errorf("SelectedID = %q, want empty", s.SelectedID())
	}
	if !first.Cancelled() {
		t.Error("closing should cancel the detail lookup")
	}
}

func TestSessionSelectSupersedesDetail(t *testing.T) {
	s, _ := newTestSession(t, nil)

	first, _ := s.Select("tt0286716")
	second, _ := s.Select("tt0800080")

	if s.ApplyDetail(s.RunDetail(first)) {
		t.Error("superseded detail must not apply")
	}
	s.ApplyDetail(s.RunDetail(second))
	if got := s.DetailState().Data.ID; got != "tt0800080" {
		t.Errorf("detail = %q, want tt0800080", got)
	}
}

func TestSessionDetailErrorNotShown(t *testing.T) {
	s, _ := newTestSession(t, nil)

	ticket, _ := s.Select("tt_missing")
	s.ApplyDetail(s.RunDetail(ticket))

	st := s.DetailState()
	if st.Err != "" {
		t.Errorf("detail errors are logged only, got %q", st.Err)
	}
	if st.Loading {
		t.Error("detail failure must clear loading")
	}
}

func TestSessionAddWatchedRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, nil)
	d := domain.MovieDetail{ID: "tt1", Title: "One", Runtime: "90 min"}

	if err := s.AddWatched(ctx, d, 7, 0); err != nil {
		t.Fatalf("AddWatched failed: %v", err)
	}
	err := s.AddWatched(ctx, d, 3, 0)
	if !errors.Is(err, domain.ErrAlreadyWatched) {
		t.Fatalf("expected ErrAlreadyWatched, got %v", err)
	}
	if e, _ := s.WatchedEntry("tt1"); e.UserRating != 7 {
		t.Errorf("existing rating changed to %d", e.UserRating)
	}
}

func TestSessionAddWatchedInvalidRating(t *testing.T) {
	s, _ := newTestSession(t, nil)
	err := s.AddWatched(context.Background(), domain.MovieDetail{ID: "tt1"}, 0, 0)
	if !errors.Is(err, domain.ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
	if len(s.Watched()) != 0 {
		t.Error("invalid rating must not add an entry")
	}
}

func TestSessionWatchedPersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()

	s, _ := newTestSession(t, kv)
	s.AddWatched(ctx, domain.MovieDetail{ID: "tt1", Title: "One", Runtime: "90 min"}, 9, 2)
	s.AddWatched(ctx, domain.MovieDetail{ID: "tt2", Title: "Two", Runtime: "100 min"}, 6, 0)
	if err := s.DeleteWatched(ctx, "tt1"); err != nil {
		t.Fatalf("DeleteWatched failed: %v", err)
	}
	if err := s.ToggleTheme(ctx); err != nil {
		t.Fatalf("ToggleTheme failed: %v", err)
	}

	restarted, _ := newTestSession(t, kv)
	watched := restarted.Watched()
	if len(watched) != 1 || watched[0].ID != "tt2" {
		t.Errorf("unexpected watched list after restart: %+v", watched)
	}
	if restarted.Dark() {
		t.Error("theme toggle should persist (default dark -> light)")
	}
}

func TestSessionShutdownCancels(t *testing.T) {
	s, _ := newTestSession(t, nil)
	search, _ := s.SetQuery("hulk")
	detail, _ := s.Select("tt0286716")

	s.Shutdown()

	if !search.Cancelled() || !detail.Cancelled() {
		t.Error("Shutdown should cancel all lookups")
	}
	if s.SearchState().Loading || s.DetailState().Loading {
		t.Error("Shutdown must clear loading flags")
	}
}
