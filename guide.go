package edhgrab

import "context"

// Guide represents an extracted upgrade-guide article.
type Guide struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Date   string `json:"date,omitempty"`

	// Blocks holds the article content in document order.
	Blocks []Block `json:"blocks"`

	// UpgradeCards lists card names recommended by the guide,
	// in order of first mention, deduplicated.
	UpgradeCards []string `json:"upgradeCards,omitempty"`
}

// Validate returns an error if the guide contains invalid fields.
func (g *Guide) Validate() error {
	if g.URL == "" {
		return Errorf(EINVALID, "guide URL required")
	}
	if len(g.Blocks) == 0 {
		return Errorf(ECONTENT, "guide %q has no content blocks", g.URL)
	}
	return nil
}

// CardNames returns every card name referenced by the guide's blocks,
// in document order, deduplicated. It covers paragraph mentions, card
// lists, decklist entries and individual card references.
func (g *Guide) CardNames() []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, block := range g.Blocks {
		switch b := block.(type) {
		case *Paragraph:
			for _, name := range b.CardNames {
				add(name)
			}
		case *CardList:
			for _, item := range b.Items {
				add(item)
			}
		case *Decklist:
			for _, section := range b.Sections {
				for _, card := range section.Cards {
					add(card.Name)
				}
			}
		case *CardRef:
			add(b.Name)
		}
	}
	return names
}

// Site identifies a page markup generation.
type Site string

// Supported page markup generations.
const (
	SiteUnknown Site = ""
	SiteNext    Site = "next"
	SiteLegacy  Site = "legacy"
)

// GuideParser extracts a guide from article HTML.
type GuideParser interface {
	// ParseGuide classifies the article content into typed blocks.
	// Returns EPARSE if the page structure is not recognized.
	ParseGuide(html string, url string) (*Guide, error)

	// Name returns the parser's identifier (e.g., "next", "legacy").
	Name() string
}

// StatsParser extracts commander card statistics from commander page HTML.
type StatsParser interface {
	// ParseStats collects card inclusion stats grouped by section.
	// Returns EPARSE if the page structure is not recognized.
	ParseStats(html string, commander string) (*CommanderStats, error)
}

// SiteDetector identifies the markup generation from HTML.
type SiteDetector interface {
	// Detect analyzes HTML and returns the identified site generation.
	// Returns SiteUnknown if the markup cannot be determined.
	Detect(html string) Site
}

// ParserRegistry manages site-specific guide parsers.
type ParserRegistry interface {
	// Get returns the parser for a specific site generation.
	// Returns nil if no parser is registered.
	Get(site Site) GuideParser

	// GetForHTML detects the site generation and returns the matching
	// parser. Falls back to the permissive parser if unknown.
	GetForHTML(html string) GuideParser

	// Register adds a parser for a site generation.
	Register(site Site, parser GuideParser)

	// List returns all registered site generations.
	List() []Site
}

// GuideService extracts guides end to end.
type GuideService interface {
	// ExtractGuide fetches, parses and validates an upgrade guide.
	ExtractGuide(ctx context.Context, url string) (*Guide, error)
}

// StatsService extracts commander statistics end to end.
type StatsService interface {
	// ExtractStats fetches, parses and validates a commander page.
	ExtractStats(ctx context.Context, url string) (*CommanderStats, error)
}
