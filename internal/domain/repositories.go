package domain

import "context"

// CatalogRepository provides search and detail lookups against the movie catalog
type CatalogRepository interface {
	// Search returns catalog entries matching the query
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// Detail returns the full record for a catalog identifier
	Detail(ctx context.Context, id string) (MovieDetail, error)
}
