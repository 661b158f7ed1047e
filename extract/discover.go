package extract

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/edhgrab"
)

// Frontier configuration for the article walk.
const (
	// frontierExpectedURLs sizes the Bloom filter.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable dedup false positive rate.
	frontierFalsePositiveRate = 0.01
)

// DefaultMaxPages caps how many pages a discovery walk fetches.
const DefaultMaxPages = 1000

// ProgressEvent reports one processed page during a discovery walk.
type ProgressEvent struct {
	Processed int
	Queued    int
	URL       string
	Err       error
}

// ProgressFunc is a callback for reporting discovery progress.
type ProgressFunc func(event ProgressEvent)

// Discoverer finds upgrade-guide article URLs on a site. Sitemap
// discovery runs first; when the sitemaps yield nothing, it walks the
// article index following same-site links.
type Discoverer struct {
	Sitemaps edhgrab.SitemapService
	Fetcher  edhgrab.Fetcher
	Links    edhgrab.LinkExtractor
	Limiter  edhgrab.DomainLimiter

	// MaxPages caps the walk's fetch budget. Defaults to DefaultMaxPages.
	MaxPages int

	// Progress, when set, receives an event per processed page.
	Progress ProgressFunc
}

// FindGuideURLs returns the upgrade-guide article URLs discovered on
// the site, deduplicated, index pages first.
func (d *Discoverer) FindGuideURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, edhgrab.Errorf(edhgrab.EINVALID, "invalid base URL %q", baseURL)
	}

	if d.Sitemaps != nil {
		urls, err := d.Sitemaps.DiscoverURLs(ctx, baseURL, edhgrab.GuideURLFilter())
		if err == nil && len(urls) > 0 {
			return urls, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// An unreachable or empty sitemap falls through to the walk.
	}

	return d.walkArticles(ctx, base)
}

// walkArticles follows links from the article index, collecting guide
// URLs. The walk is sequential: one page in flight, rate limited per
// domain, capped at MaxPages fetches.
func (d *Discoverer) walkArticles(ctx context.Context, base *url.URL) ([]string, error) {
	seed := *base
	seed.Path = "/articles/"
	seed.RawQuery = ""
	seed.Fragment = ""

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(edhgrab.DiscoveredLink{
		URL:      seed.String(),
		Priority: edhgrab.PriorityIndex,
		Source:   "index",
	})

	maxPages := d.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	var guides []string
	processed := 0

	for processed < maxPages {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		processed++

		// The frontier only ever pops a URL once, so collection here
		// cannot duplicate.
		if edhgrab.IsGuideURL(link.URL) {
			guides = append(guides, link.URL)
		}

		fetchErr := d.expand(ctx, link, base, frontier)
		if fetchErr != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if d.Progress != nil {
			d.Progress(ProgressEvent{
				Processed: processed,
				Queued:    frontier.Len(),
				URL:       link.URL,
				Err:       fetchErr,
			})
		}
	}

	// The budget can run out with guide links still queued; they were
	// discovered, so collect them without fetching.
	for {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if edhgrab.IsGuideURL(link.URL) {
			guides = append(guides, link.URL)
		}
	}

	return guides, nil
}

// expand fetches one page and pushes its in-scope links. A fetch
// failure only costs that page's links, not the walk.
func (d *Discoverer) expand(ctx context.Context, link edhgrab.DiscoveredLink, base *url.URL, frontier *Frontier) error {
	linkURL, err := url.Parse(link.URL)
	if err != nil {
		return err
	}

	if d.Limiter != nil {
		if err := d.Limiter.Wait(ctx, linkURL.Host); err != nil {
			return err
		}
	}

	html, err := d.Fetcher.Fetch(ctx, link.URL)
	if err != nil {
		return err
	}

	links, err := d.Links.ExtractLinks(html, link.URL)
	if err != nil {
		return err
	}

	for _, discovered := range links {
		if !inArticleScope(discovered.URL, base) {
			continue
		}
		frontier.Push(discovered)
	}

	return nil
}

// inArticleScope reports whether the URL stays on the site's article
// subtree.
func inArticleScope(rawURL string, base *url.URL) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != base.Host {
		return false
	}
	return strings.HasPrefix(u.Path, "/articles")
}
