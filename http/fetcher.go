// Package http provides an HTTP-based implementation of gapscan.Fetcher
// for retrieving the pages under comparison.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/gapscan"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent mirrors a desktop browser; editorial sites routinely
// serve reduced markup to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120 Safari/537.36"

// Ensure Fetcher implements gapscan.Fetcher at compile time.
var _ gapscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url, following redirects. The result
// carries the final URL so callers can report the resolved origin.
// Responses with status >= 400 return an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*gapscan.FetchResult, error) {
	if url == "" {
		return nil, gapscan.Errorf(gapscan.EINVALID, "empty URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, gapscan.Errorf(gapscan.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, gapscan.Errorf(gapscan.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	if resp.StatusCode >= 400 {
		return nil, gapscan.Errorf(gapscan.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, gapscan.Errorf(gapscan.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return &gapscan.FetchResult{
		HTML:       string(body),
		FinalURL:   finalURL,
		StatusCode: resp.StatusCode,
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
