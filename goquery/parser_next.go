package goquery

import "github.com/fwojciec/edhgrab"

// NextParser extracts guides from the current React markup. It is
// strict: when no known content container matches, parsing fails so the
// caller can fall back to a generic locator instead of shipping page
// furniture as content.
type NextParser struct {
	profile *profile
}

var _ edhgrab.GuideParser = (*NextParser)(nil)

// NewNextParser creates a parser for the current markup generation.
func NewNextParser() *NextParser {
	return &NextParser{profile: nextProfile()}
}

// Name implements edhgrab.GuideParser.
func (p *NextParser) Name() string {
	return p.profile.name
}

// ParseGuide implements edhgrab.GuideParser.
func (p *NextParser) ParseGuide(html string, url string) (*edhgrab.Guide, error) {
	return parseGuide(p.profile, html, url)
}
