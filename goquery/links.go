package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/edhgrab"
)

// SelectorConfig defines a CSS selector with its priority and source label.
type SelectorConfig struct {
	Selector string
	Priority edhgrab.LinkPriority
	Source   string
}

// ArticleSelector extracts article and pagination links from article
// index pages. Links are deduplicated by URL, keeping the highest
// priority version, and external hosts are filtered out. Anchors under
// the fallback path prefix are picked up at low priority so index
// pages with unrecognized markup still yield links.
type ArticleSelector struct {
	configs        []SelectorConfig
	fallbackPrefix string
}

var _ edhgrab.LinkExtractor = (*ArticleSelector)(nil)

// NewArticleSelector creates a link extractor for article index pages.
func NewArticleSelector() *ArticleSelector {
	return &ArticleSelector{
		configs: []SelectorConfig{
			{Selector: ".pagination a[href], a[class*='Pagination']", Priority: edhgrab.PriorityIndex, Source: "pagination"},
			{Selector: "a[class*='ArticleCard']", Priority: edhgrab.PriorityContent, Source: "article-card"},
			{Selector: "article h2 a[href], .article-preview a[href]", Priority: edhgrab.PriorityContent, Source: "article-link"},
		},
		fallbackPrefix: "/articles/",
	}
}

// ExtractLinks implements edhgrab.LinkExtractor. The returned links
// maintain document order based on first occurrence.
func (s *ArticleSelector) ExtractLinks(html string, baseURL string) ([]edhgrab.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, edhgrab.Errorf(edhgrab.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, edhgrab.Errorf(edhgrab.EPARSE, "parse HTML: %v", err)
	}

	// Track seen URLs with their index in the result slice for O(1) updates.
	seen := make(map[string]int)
	var links []edhgrab.DiscoveredLink

	add := func(sel *goquery.Selection, priority edhgrab.LinkPriority, source string) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !isSameHost(base, resolved) {
			return
		}
		link := edhgrab.DiscoveredLink{
			URL:      resolved,
			Priority: priority,
			Text:     strings.TrimSpace(sel.Text()),
			Source:   source,
		}
		if idx, ok := seen[resolved]; ok {
			if priority > links[idx].Priority {
				links[idx] = link
			}
			return
		}
		seen[resolved] = len(links)
		links = append(links, link)
	}

	for _, config := range s.configs {
		doc.Find(config.Selector).Each(func(_ int, sel *goquery.Selection) {
			add(sel, config.Priority, config.Source)
		})
	}

	// Fallback: any same-host anchor under the article path prefix.
	// Links already found via semantic selectors keep their higher
	// priority through the deduplication above.
	if s.fallbackPrefix != "" {
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" || isNonHTTPLink(href) {
				return
			}
			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}
			u, err := url.Parse(resolved)
			if err != nil || !strings.HasPrefix(u.Path, s.fallbackPrefix) {
				return
			}
			add(sel, edhgrab.PriorityFallback, "fallback")
		})
	}

	return links, nil
}

// resolveURL resolves a relative URL against a base URL. Returns empty
// string if the href cannot be parsed or resolves to the base page
// itself. Fragments are stripped for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
// Exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
