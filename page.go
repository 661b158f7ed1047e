package edhgrab

import (
	"context"
	"time"
)

// Page is a locally cached copy of a fetched page.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	HTML        string    `json:"html"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.HTML == "" {
		return Errorf(EINVALID, "page HTML required")
	}
	return nil
}

// PageCacheService stores fetched pages for reuse across runs.
type PageCacheService interface {
	// FindPageByURL returns the cached copy of a page.
	// Returns ENOTFOUND if no copy is cached.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// SavePage inserts or replaces the cached copy for the page's URL.
	SavePage(ctx context.Context, page *Page) error

	// DeletePagesBefore removes pages fetched before the cutoff and
	// returns the number removed.
	DeletePagesBefore(ctx context.Context, cutoff time.Time) (int, error)
}
