package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/edhgrab"
)

// Detector identifies the markup generation of a fetched page. It
// checks for generation-specific script tags, CSS-module class name
// patterns, and structural markers.
type Detector struct{}

var _ edhgrab.SiteDetector = (*Detector)(nil)

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified markup generation.
// Returns SiteUnknown if the generation cannot be determined.
func (d *Detector) Detect(html string) edhgrab.Site {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return edhgrab.SiteUnknown
	}

	// The framework data script is the most reliable marker when present.
	if d.hasSelector(doc, "script#__NEXT_DATA__") || d.hasSelector(doc, "#__next") {
		return edhgrab.SiteNext
	}

	// CSS-module class suffixes like Card_container__ab12c only appear
	// in the current markup.
	if d.hasSelector(doc, "div[class*='ArticleContent']") ||
		d.hasSelector(doc, "div[class*='_container__']") {
		return edhgrab.SiteNext
	}

	// Legacy markers: static ids and data attributes from the old site.
	if d.hasSelector(doc, "#article-body") ||
		d.hasSelector(doc, ".article-body") ||
		d.hasSelector(doc, ".panel-body") ||
		d.hasSelector(doc, "[data-card-name]") {
		return edhgrab.SiteLegacy
	}

	return edhgrab.SiteUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
