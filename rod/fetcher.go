package rod

import (
	"context"
	"time"

	"github.com/fwojciec/edhgrab"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single rendered fetch.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements edhgrab.Fetcher at compile time.
var _ edhgrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation. The
// current site is a React application, so article and commander pages
// fetched without a browser can come back as an empty hydration shell.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager     *BrowserManager
	timeout     time.Duration
	settleDelay time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each fetch. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithSettleDelay waits the given duration after the load event before
// reading the page, giving client-side rendering time to fill in
// content that the load event does not cover.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settleDelay = d
	}
}

// WithManager uses the given browser manager instead of launching a
// new one. The Fetcher takes ownership and closes it on Close.
func WithManager(manager *BrowserManager) Option {
	return func(f *Fetcher) {
		f.manager = manager
	}
}

// NewFetcher creates a new Fetcher backed by a recycling headless
// Chrome browser. Close must be called when the Fetcher is no longer
// needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.manager == nil {
		manager, err := NewBrowserManager()
		if err != nil {
			return nil, err
		}
		f.manager = manager
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", edhgrab.Errorf(edhgrab.EFETCH, "open page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fetchError(ctx, "navigate %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", fetchError(ctx, "wait for load %s: %v", url, err)
	}

	if f.settleDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.settleDelay):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", fetchError(ctx, "read page %s: %v", url, err)
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// fetchError wraps a page operation failure, keeping context sentinel
// errors intact so callers can match cancellation and deadlines.
func fetchError(ctx context.Context, format string, args ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return edhgrab.Errorf(edhgrab.EFETCH, format, args...)
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
