package gapscan

import (
	"context"
	"time"
)

// Page is an archived fetched page: the markdown rendering of its main
// content plus provenance. Archival supports reproducing a report later
// without refetching.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	FinalURL    string    `json:"finalUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageService represents a service for archiving fetched pages.
type PageService interface {
	// CreatePage archives a page, assigning its ID, hash, and timestamp.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByURL retrieves the most recent archived page for a URL.
	// Returns ENOTFOUND if no page exists.
	FindPageByURL(ctx context.Context, url string) (*Page, error)
}
