package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/popcorn/internal/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", "test-key"), server
}

func TestSearch(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("apikey = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("s"); got != "hulk" {
			t.Errorf("s = %q, want hulk", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SearchResponse{
			Response: "True",
			Search: []SearchItem{
				{Title: "Hulk", Year: "2003", IMDbID: "tt0286716", Poster: "https://example.com/hulk.jpg"},
				{Title: "The Incredible Hulk", Year: "2008", IMDbID: "tt0800080", Poster: "N/A"},
			},
		})
	})

	results, err := client.Search(context.Background(), "hulk")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	want := domain.SearchResult{ID: "tt0286716", Title: "Hulk", Year: "2003", PosterURL: "https://example.com/hulk.jpg"}
	if results[0] != want {
		t.Errorf("results[0] = %+v, want %+v", results[0], want)
	}
}

func TestSearchEscapesQuery(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("s"); got != "fast & furious" {
			t.Errorf("s = %q, want %q", got, "fast & furious")
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Error("query injection overwrote apikey")
		}
		json.NewEncoder(w).Encode(SearchResponse{Response: "True"})
	})

	if _, err := client.Search(context.Background(), "fast & furious"); err != nil {
		t.Fatalf("Search() error: %v", err)
	}
}

func TestSearchNotFound(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	})

	results, err := client.Search(context.Background(), "zzzzzz")
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
	if msg := domain.UserMessage(err); msg != "Movie not found!" {
		t.Errorf("UserMessage = %q", msg)
	}
}

func TestSearchNonSuccessStatus(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := client.Search(context.Background(), "hulk")
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if msg := domain.UserMessage(err); msg != "Something went wrong!!!" {
		t.Errorf("UserMessage = %q", msg)
	}
}

func TestSearchMalformedBody(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})

	_, err := client.Search(context.Background(), "hulk")
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestSearchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(server.URL+"/", "test-key")
	server.Close()

	_, err := client.Search(context.Background(), "hulk")
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestSearchCancelled(t *testing.T) {
	started := make(chan struct{})
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Search(ctx, "hulk")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if msg := domain.UserMessage(err); msg != "" {
		t.Errorf("cancellation must not produce a message, got %q", msg)
	}
}

func TestDetail(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("i"); got != "tt0286716" {
			t.Errorf("i = %q, want tt0286716", got)
		}
		w.Write([]byte(`{
			"Title":"Hulk","Year":"2003","Released":"20 Jun 2003","Runtime":"138 min",
			"Genre":"Action, Sci-Fi","Director":"Ang Lee","Actors":"Eric Bana, Jennifer Connelly",
			"Plot":"Bruce Banner transforms.","Poster":"https://example.com/hulk.jpg",
			"imdbRating":"5.6","imdbID":"tt0286716","Response":"True"}`))
	})

	d, err := client.Detail(context.Background(), "tt0286716")
	if err != nil {
		t.Fatalf("Detail() error: %v", err)
	}
	if d.ID != "tt0286716" || d.Title != "Hulk" || d.Director != "Ang Lee" {
		t.Errorf("unexpected detail %+v", d)
	}
	if d.RuntimeMinutes() != 138 {
		t.Errorf("RuntimeMinutes = %d, want 138", d.RuntimeMinutes())
	}
	if d.Rating() != 5.6 {
		t.Errorf("Rating = %v, want 5.6", d.Rating())
	}
}

func TestDetailIncorrectID(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
	})

	_, err := client.Detail(context.Background(), "bogus")
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestRateLimitHonorsCancellation(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"True","Search":[]}`))
	})
	WithRateLimit(0.001)(client)

	// The first request consumes the only token.
	if _, err := client.Search(context.Background(), "a"); err != nil {
		t.Fatalf("first Search() error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.Search(ctx, "b")
	if err == nil {
		t.Fatal("expected the limiter wait to fail")
	}
	if errors.Is(err, domain.ErrMovieNotFound) {
		t.Errorf("unexpected classification: %v", err)
	}
}
