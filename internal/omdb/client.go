// Package omdb is a client for the OMDb movie catalog API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/mmcdole/popcorn/internal/domain"
)

const (
	// DefaultBaseURL is the public OMDb endpoint
	DefaultBaseURL = "https://www.omdbapi.com/"
	userAgent      = "Popcorn/1.0"
)

// Client implements domain.CatalogRepository for OMDb
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit caps requests per second; 0 or less means unlimited
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new OMDb API client.
// Requests carry no overall timeout; callers cancel through the context.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// doRequest performs a GET with the API key and the given parameters
func (c *Client) doRequest(ctx context.Context, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	query := u.Query()
	query.Set("apikey", c.apiKey)
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("omdb request", "params", params.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("omdb request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("omdb request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrRequestFailed, resp.StatusCode)
	}

	return body, nil
}

// Search returns catalog entries whose title matches query
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	body, err := c.doRequest(ctx, url.Values{"s": {query}})
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrRequestFailed, err)
	}
	if resp.Response == responseFalse {
		c.logger.Debug("omdb search miss", "query", query, "reason", resp.Error)
		return nil, fmt.Errorf("search %q: %w", query, domain.ErrMovieNotFound)
	}

	return MapSearchResults(resp.Search), nil
}

// Detail returns the full record for an IMDb identifier
func (c *Client) Detail(ctx context.Context, id string) (domain.MovieDetail, error) {
	body, err := c.doRequest(ctx, url.Values{"i": {id}})
	if err != nil {
		return domain.MovieDetail{}, err
	}

	var resp DetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return domain.MovieDetail{}, fmt.Errorf("%w: failed to parse response: %v", domain.ErrRequestFailed, err)
	}
	if resp.Response == responseFalse {
		return domain.MovieDetail{}, fmt.Errorf("detail %s: %w", id, domain.ErrMovieNotFound)
	}

	return MapDetail(id, resp), nil
}
