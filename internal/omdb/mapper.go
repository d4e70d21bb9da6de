package omdb

import "github.com/mmcdole/popcorn/internal/domain"

// MapSearchResults converts catalog search items to domain results
func MapSearchResults(items []SearchItem) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, domain.SearchResult{
			ID:        item.IMDbID,
			Title:     item.Title,
			Year:      item.Year,
			PosterURL: item.Poster,
		})
	}
	return results
}

// MapDetail converts a catalog detail body to the domain record.
// The requested id is used when the body omits imdbID.
func MapDetail(id string, d DetailResponse) domain.MovieDetail {
	if d.IMDbID != "" {
		id = d.IMDbID
	}
	return domain.MovieDetail{
		ID:         id,
		Title:      d.Title,
		Year:       d.Year,
		PosterURL:  d.Poster,
		Runtime:    d.Runtime,
		IMDbRating: d.IMDbRating,
		Plot:       d.Plot,
		Released:   d.Released,
		Actors:     d.Actors,
		Director:   d.Director,
		Genre:      d.Genre,
	}
}
