package domain

// WatchedList is the user's ordered watched list. At most one entry per ID.
type WatchedList []WatchedEntry

// Contains reports whether an entry with the given ID exists
func (l WatchedList) Contains(id string) bool {
	_, ok := l.Find(id)
	return ok
}

// Find returns the entry with the given ID
func (l WatchedList) Find(id string) (WatchedEntry, bool) {
	for _, e := range l {
		if e.ID == id {
			return e, true
		}
	}
	return WatchedEntry{}, false
}

// Add returns a new list with the entry appended.
// The list is returned unchanged with ok=false if the ID is already present.
func (l WatchedList) Add(e WatchedEntry) (WatchedList, bool) {
	if l.Contains(e.ID) {
		return l, false
	}
	out := make(WatchedList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, e), true
}

// Remove returns a new list without the entry with the given ID
func (l WatchedList) Remove(id string) WatchedList {
	out := make(WatchedList, 0, len(l))
	for _, e := range l {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// WatchedSummary aggregates the watched list for the summary header
type WatchedSummary struct {
	Count         int
	AvgIMDbRating float64
	AvgUserRating float64
	AvgRuntime    float64 // minutes
}

// Summary computes averages over the list. An empty list yields zeros.
func (l WatchedList) Summary() WatchedSummary {
	s := WatchedSummary{Count: len(l)}
	if len(l) == 0 {
		return s
	}
	n := float64(len(l))
	for _, e := range l {
		s.AvgIMDbRating += e.IMDbRating / n
		s.AvgUserRating += float64(e.UserRating) / n
		s.AvgRuntime += float64(e.Runtime) / n
	}
	return s
}
