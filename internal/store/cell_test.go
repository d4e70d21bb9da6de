package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mmcdole/popcorn/internal/domain"
)

func TestNewCellUsesDefaultAndWritesIt(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()

	cell, err := NewCell(ctx, kv, KeyDark, true, nil)
	if err != nil {
		t.Fatalf("NewCell failed: %v", err)
	}
	if !cell.Get() {
		t.Error("expected default value true")
	}
	if raw, ok, _ := kv.Get(ctx, KeyDark); !ok || raw != "true" {
		t.Errorf("default should be persisted, got %q (ok=%v)", raw, ok)
	}
}

func TestCellRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "popcorn.db")

	kv, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("NewBoltStore failed: %v", err)
	}
	cell, err := NewCell(ctx, kv, KeyWatched, domain.WatchedList{}, nil)
	if err != nil {
		t.Fatalf("NewCell failed: %v", err)
	}
	want := domain.WatchedList{{ID: "tt1375666", Title: "Inception", Runtime: 148, UserRating: 8}}
	if err := cell.Set(ctx, want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	kv.Close()

	// Simulate an application restart.
	kv, err = NewBoltStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer kv.Close()

	fresh, err := NewCell(ctx, kv, KeyWatched, domain.WatchedList{{ID: "ignored"}}, nil)
	if err != nil {
		t.Fatalf("NewCell failed: %v", err)
	}
	got := fresh.Get()
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("round trip got %+v, want %+v", got, want)
	}
}

func TestCellUpdate(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()

	cell, err := NewCell(ctx, kv, KeyDark, false, nil)
	if err != nil {
		t.Fatalf("NewCell failed: %v", err)
	}
	if err := cell.Update(ctx, func(v bool) bool { return !v }); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !cell.Get() {
		t.Error("expected toggled value")
	}
	if raw, _, _ := kv.Get(ctx, KeyDark); raw != "true" {
		t.Errorf("stored %q, want \"true\"", raw)
	}
}

func TestCellDiscardsCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	kv.Set(ctx, KeyWatched, "{not json")

	cell, err := NewCell(ctx, kv, KeyWatched, domain.WatchedList{}, nil)
	if err != nil {
		t.Fatalf("NewCell failed: %v", err)
	}
	if len(cell.Get()) != 0 {
		t.Errorf("expected default, got %+v", cell.Get())
	}
	if raw, _, _ := kv.Get(ctx, KeyWatched); raw != "[]" {
		t.Errorf("corrupt value should be replaced by default, got %q", raw)
	}
}

type failingKV struct{ *MemoryStore }

func (failingKV) Set(context.Context, string, string) error { return context.DeadlineExceeded }

func TestCellSetFailureKeepsValue(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	mem.Set(ctx, KeyDark, "true")

	cell, err := NewCell[bool](ctx, failingKV{mem}, KeyDark, false, nil)
	if err != nil {
		t.Fatalf("NewCell failed: %v", err)
	}
	if err := cell.Set(ctx, false); err == nil {
		t.Fatal("expected write error")
	}
	if !cell.Get() {
		t.Error("value must not change when the write fails")
	}
}
