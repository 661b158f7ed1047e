package edhgrab

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use plain HTTP, a read-through mirror, or browser
// automation for JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the page at the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
