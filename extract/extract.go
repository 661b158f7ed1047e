// Package extract provides guide and commander-stat extraction
// orchestration. It coordinates fetching through the access-path chain,
// site-specific parsing, content-locator fallback, and the local page
// cache.
package extract

import (
	"context"

	"github.com/fwojciec/edhgrab"
)

// Compile-time interface verification.
var (
	_ edhgrab.GuideService = (*Extractor)(nil)
	_ edhgrab.StatsService = (*Extractor)(nil)
)

// Extractor runs the extraction pipeline: fetch, parse, classify,
// validate. Phase failures carry typed error codes; the caller decides
// how to present them.
type Extractor struct {
	Fetcher edhgrab.Fetcher
	Parsers edhgrab.ParserRegistry
	Stats   edhgrab.StatsParser

	// Locator, when set, recovers from unrecognized article markup by
	// locating the main content generically and classifying that region.
	Locator edhgrab.ContentLocator

	// Pages, when set, is consulted before fetching and written through
	// after. Cache failures never fail an extraction.
	Pages edhgrab.PageCacheService
}

// ExtractGuide fetches, parses and validates an upgrade guide.
func (e *Extractor) ExtractGuide(ctx context.Context, url string) (*edhgrab.Guide, error) {
	if url == "" {
		return nil, edhgrab.Errorf(edhgrab.EINVALID, "article URL required")
	}

	html, err := e.pageHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	parser := e.Parsers.GetForHTML(html)
	if parser == nil {
		return nil, edhgrab.Errorf(edhgrab.EPARSE, "no parser available for %s", url)
	}

	guide, err := parser.ParseGuide(html, url)
	if err != nil {
		if e.Locator == nil || edhgrab.ErrorCode(err) != edhgrab.EPARSE {
			return nil, err
		}
		guide, err = e.locateGuide(html, url)
		if err != nil {
			return nil, err
		}
	}

	if err := guide.Validate(); err != nil {
		return nil, err
	}

	return guide, nil
}

// ExtractStats fetches, parses and validates a commander page.
// The commander name is derived from the URL slug.
func (e *Extractor) ExtractStats(ctx context.Context, url string) (*edhgrab.CommanderStats, error) {
	slug := edhgrab.CommanderSlug(url)
	if slug == "" {
		return nil, edhgrab.Errorf(edhgrab.EINVALID, "not a commander page URL: %q", url)
	}
	commander := edhgrab.NameFromSlug(slug)

	html, err := e.pageHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	stats, err := e.Stats.ParseStats(html, commander)
	if err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, err
	}

	return stats, nil
}

// locateGuide recovers from unrecognized markup: the locator pulls the
// main content out of the page, and the located region is classified by
// whichever parser the registry picks for it (the permissive one, since
// located content carries no site markers).
func (e *Extractor) locateGuide(html, url string) (*edhgrab.Guide, error) {
	located, err := e.Locator.Locate(html)
	if err != nil {
		return nil, err
	}

	parser := e.Parsers.GetForHTML(located.ContentHTML)
	if parser == nil {
		return nil, edhgrab.Errorf(edhgrab.EPARSE, "no parser available for located content of %s", url)
	}

	guide, err := parser.ParseGuide(located.ContentHTML, url)
	if err != nil {
		return nil, err
	}
	if guide.Title == "" {
		guide.Title = located.Title
	}

	return guide, nil
}

// pageHTML returns the page HTML, consulting the page cache first and
// writing through after a fetch.
func (e *Extractor) pageHTML(ctx context.Context, url string) (string, error) {
	if e.Pages != nil {
		if page, err := e.Pages.FindPageByURL(ctx, url); err == nil {
			return page.HTML, nil
		}
	}

	html, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if e.Pages != nil {
		// Best effort; the fetched page is used either way.
		_ = e.Pages.SavePage(ctx, &edhgrab.Page{URL: url, HTML: html})
	}

	return html, nil
}
