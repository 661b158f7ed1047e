package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/edhgrab"
)

// DefaultPathDelay is the pause between access-path attempts.
const DefaultPathDelay = 300 * time.Millisecond

var _ edhgrab.Fetcher = (*FallbackFetcher)(nil)

// FallbackFetcher tries a prioritized list of access paths in order:
// typically the direct fetcher, then read-through mirrors, then the
// headless browser. Attempts are strictly sequential with a fixed pause
// between them; no backoff, no jitter. The first success wins.
type FallbackFetcher struct {
	paths []edhgrab.Fetcher
	delay time.Duration
}

// FallbackOption configures a FallbackFetcher.
type FallbackOption func(*FallbackFetcher)

// WithPathDelay overrides the pause between attempts.
func WithPathDelay(d time.Duration) FallbackOption {
	return func(f *FallbackFetcher) {
		f.delay = d
	}
}

// NewFallbackFetcher creates a fetcher that chains the given access
// paths. The FallbackFetcher owns the paths: closing it closes each one.
func NewFallbackFetcher(paths []edhgrab.Fetcher, opts ...FallbackOption) (*FallbackFetcher, error) {
	if len(paths) == 0 {
		return nil, edhgrab.Errorf(edhgrab.EINVALID, "at least one access path required")
	}

	f := &FallbackFetcher{
		paths: paths,
		delay: DefaultPathDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch tries each access path in order and returns the first success.
// Exhausting every path is an EFETCH error listing each attempt.
func (f *FallbackFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var attempts []string

	for i, path := range f.paths {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(f.delay):
			}
		}

		html, err := path.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		// A canceled caller aborts the chain; the next path would only
		// fail the same way.
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		attempts = append(attempts, fmt.Sprintf("path %d: %v", i+1, err))
	}

	return "", edhgrab.Errorf(edhgrab.EFETCH,
		"all %d access paths failed for %s: %s",
		len(f.paths), url, strings.Join(attempts, "; "))
}

// Close closes every access path and returns the first error.
func (f *FallbackFetcher) Close() error {
	var firstErr error
	for _, path := range f.paths {
		if err := path.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
