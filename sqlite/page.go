package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/gapscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ gapscan.PageService = (*PageService)(nil)

// PageService implements gapscan.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreatePage archives a page, assigning its ID, hash, and timestamp.
func (s *PageService) CreatePage(ctx context.Context, page *gapscan.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, final_url, title, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.FinalURL, page.Title, page.Content, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPageByURL retrieves the most recent archived page for a URL.
func (s *PageService) FindPageByURL(ctx context.Context, url string) (*gapscan.Page, error) {
	var page gapscan.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, final_url, title, content, content_hash, fetched_at
		FROM pages
		WHERE url = ?
		ORDER BY fetched_at DESC, id
		LIMIT 1
	`, url).Scan(&page.ID, &page.URL, &page.FinalURL, &page.Title,
		&page.Content, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, gapscan.Errorf(gapscan.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &page, nil
}
