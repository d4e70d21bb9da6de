package service

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/mmcdole/popcorn/internal/domain"
)

// RankResults orders catalog results by closeness of the title to query.
// Ties keep the catalog's order.
func RankResults(results []domain.SearchResult, query string) []domain.SearchResult {
	if len(results) == 0 {
		return results
	}

	query = strings.ToLower(query)

	ranked := make([]domain.SearchResult, len(results))
	copy(ranked, results)

	scores := make(map[string]int, len(ranked))
	for _, r := range ranked {
		scores[r.ID] = calculateMatchScore(strings.ToLower(r.Title), query)
	}

	// Sort by score (lower is better)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] < scores[ranked[j].ID]
	})
	return ranked
}

// calculateMatchScore calculates a match score for ranking
// Lower score = better match
func calculateMatchScore(title, query string) int {
	// Exact match is best
	if title == query {
		return 0
	}

	// Prefix match is very good
	if strings.HasPrefix(title, query) {
		return 10
	}

	// Contains match is good
	if strings.Contains(title, query) {
		return 50
	}

	return 100 + fuzzy.LevenshteinDistance(query, title)
}

// WatchedMatch is a watched entry with the title positions that matched
type WatchedMatch struct {
	Entry          domain.WatchedEntry
	MatchedIndexes []int
}

// watchedTitles implements sahilm/fuzzy.Source over a watched list
type watchedTitles domain.WatchedList

func (w watchedTitles) String(i int) string { return strings.ToLower(w[i].Title) }
func (w watchedTitles) Len() int            { return len(w) }

// FilterWatched returns entries whose title fuzzy-matches query, best first.
// An empty query returns the whole list in order.
func FilterWatched(list domain.WatchedList, query string) []WatchedMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]WatchedMatch, len(list))
		for i, e := range list {
			out[i] = WatchedMatch{Entry: e}
		}
		return out
	}

	matches := sfuzzy.FindFrom(strings.ToLower(query), watchedTitles(list))
	out := make([]WatchedMatch, len(matches))
	for i, m := range matches {
		out[i] = WatchedMatch{Entry: list[m.Index], MatchedIndexes: m.MatchedIndexes}
	}
	return out
}
