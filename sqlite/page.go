package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/edhgrab"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ edhgrab.PageCacheService = (*PageCacheService)(nil)

// PageCacheService implements edhgrab.PageCacheService using SQLite.
type PageCacheService struct {
	db *DB
}

// NewPageCacheService creates a new PageCacheService.
func NewPageCacheService(db *DB) *PageCacheService {
	return &PageCacheService{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// FindPageByURL retrieves the cached copy of a page.
func (s *PageCacheService) FindPageByURL(ctx context.Context, url string) (*edhgrab.Page, error) {
	var page edhgrab.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, html, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.ID, &page.URL, &page.HTML, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, edhgrab.Errorf(edhgrab.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// SavePage inserts or replaces the cached copy for the page's URL.
// ID, ContentHash and FetchedAt are filled in when unset.
func (s *PageCacheService) SavePage(ctx context.Context, page *edhgrab.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}
	page.ContentHash = hashContent(page.HTML)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.ID, page.URL, page.HTML, page.ContentHash,
		page.FetchedAt.UTC().Format(time.RFC3339))

	return err
}

// DeletePagesBefore removes pages fetched before the cutoff and returns
// the number removed. RFC3339 UTC strings order chronologically, so the
// comparison happens in SQL.
func (s *PageCacheService) DeletePagesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM pages WHERE fetched_at < ?",
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}
