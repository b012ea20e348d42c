package gapscan

import "context"

// FetchResult is the outcome of fetching one page.
type FetchResult struct {
	// HTML is the raw response body.
	HTML string

	// FinalURL is the URL after following redirects.
	FinalURL string

	// StatusCode is the HTTP status of the final response.
	StatusCode int
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url, following redirects.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
