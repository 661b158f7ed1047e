package mock

import (
	"context"

	"github.com/fwojciec/edhgrab"
)

// Compile-time interface verification.
var (
	_ edhgrab.URLFrontier   = (*URLFrontier)(nil)
	_ edhgrab.LinkExtractor = (*LinkExtractor)(nil)
	_ edhgrab.DomainLimiter = (*DomainLimiter)(nil)
)

// URLFrontier is a mock implementation of edhgrab.URLFrontier.
type URLFrontier struct {
	PushFn func(link edhgrab.DiscoveredLink) bool
	PopFn  func() (edhgrab.DiscoveredLink, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(link edhgrab.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (edhgrab.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

// LinkExtractor is a mock implementation of edhgrab.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]edhgrab.DiscoveredLink, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]edhgrab.DiscoveredLink, error) {
	return e.ExtractLinksFn(html, baseURL)
}

// DomainLimiter is a mock implementation of edhgrab.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
