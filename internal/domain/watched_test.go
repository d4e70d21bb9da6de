package domain

import (
	"math"
	"reflect"
	"testing"
)

func sampleList() WatchedList {
	return WatchedList{
		{ID: "tt1375666", Title: "Inception", IMDbRating: 8.8, Runtime: 148, UserRating: 10},
		{ID: "tt0088763", Title: "Back to the Future", IMDbRating: 8.5, Runtime: 116, UserRating: 9},
	}
}

func TestWatchedListAddRejectsDuplicate(t *testing.T) {
	list := sampleList()

	out, ok := list.Add(WatchedEntry{ID: "tt1375666", UserRating: 1})
	if ok {
		t.Fatal("Add should refuse a duplicate ID")
	}
	if len(out) != 2 {
		t.Errorf("expected 2 entries, got %d", len(out))
	}
	if e, _ := out.Find("tt1375666"); e.UserRating != 10 {
		t.Errorf("existing entry was modified: %+v", e)
	}
}

func TestWatchedListAddThenRemoveRestores(t *testing.T) {
	list := sampleList()

	added, ok := list.Add(WatchedEntry{ID: "tt0468569", Title: "The Dark Knight"})
	if !ok {
		t.Fatal("Add should accept a new ID")
	}
	if !added.Contains("tt0468569") {
		t.Error("added entry not found")
	}
	if len(list) != 2 {
		t.Error("Add must not modify the receiver")
	}

	restored := added.Remove("tt0468569")
	if !reflect.DeepEqual(restored, list) {
		t.Errorf("add+remove did not restore list:\n got %+v\nwant %+v", restored, list)
	}
}

func TestWatchedListRemoveMissing(t *testing.T) {
	list := sampleList()
	out := list.Remove("tt9999999")
	if !reflect.DeepEqual(out, list) {
		t.Errorf("removing a missing ID changed the list: %+v", out)
	}
}

func TestWatchedSummary(t *testing.T) {
	s := sampleList().Summary()

	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	if math.Abs(s.AvgIMDbRating-8.65) > 1e-9 {
		t.Errorf("AvgIMDbRating = %v, want 8.65", s.AvgIMDbRating)
	}
	if math.Abs(s.AvgUserRating-9.5) > 1e-9 {
		t.Errorf("AvgUserRating = %v, want 9.5", s.AvgUserRating)
	}
	if math.Abs(s.AvgRuntime-132) > 1e-9 {
		t.Errorf("AvgRuntime = %v, want 132", s.AvgRuntime)
	}
}

func TestWatchedSummaryEmpty(t *testing.T) {
	s := WatchedList(nil).Summary()
	if s != (WatchedSummary{}) {
		t.Errorf("empty summary = %+v, want zero", s)
	}
}
