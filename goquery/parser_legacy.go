package goquery

import "github.com/fwojciec/edhgrab"

// LegacyParser extracts guides from the old static markup. It is
// permissive: the document body is classified when no known content
// container matches, and individually marked-up cards are emitted as
// card references.
type LegacyParser struct {
	profile *profile
}

var _ edhgrab.GuideParser = (*LegacyParser)(nil)

// NewLegacyParser creates a parser for the old markup generation.
func NewLegacyParser() *LegacyParser {
	return &LegacyParser{profile: legacyProfile()}
}

// Name implements edhgrab.GuideParser.
func (p *LegacyParser) Name() string {
	return p.profile.name
}

// ParseGuide implements edhgrab.GuideParser.
func (p *LegacyParser) ParseGuide(html string, url string) (*edhgrab.Guide, error) {
	return parseGuide(p.profile, html, url)
}
