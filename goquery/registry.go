package goquery

import "github.com/fwojciec/edhgrab"

var _ edhgrab.ParserRegistry = (*Registry)(nil)

// Registry manages markup-specific guide parsers and auto-detects the
// markup generation from HTML content. It uses a SiteDetector to
// identify the generation and returns the appropriate parser, falling
// back to a permissive parser when the generation is unknown or no
// specific parser is registered.
type Registry struct {
	detector edhgrab.SiteDetector
	fallback edhgrab.GuideParser
	parsers  map[edhgrab.Site]edhgrab.GuideParser
}

// NewRegistry creates a new Registry with the given detector and fallback parser.
// The fallback parser is used when GetForHTML cannot find a specific parser
// for the detected markup generation.
func NewRegistry(detector edhgrab.SiteDetector, fallback edhgrab.GuideParser) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback,
		parsers:  make(map[edhgrab.Site]edhgrab.GuideParser),
	}
}

// Get returns the parser for a specific markup generation.
// Returns nil if no parser is registered for the generation.
func (r *Registry) Get(site edhgrab.Site) edhgrab.GuideParser {
	return r.parsers[site]
}

// GetForHTML detects the markup generation from HTML and returns the
// appropriate parser. Falls back to the fallback parser if the
// generation is unknown or no parser is registered for it.
func (r *Registry) GetForHTML(html string) edhgrab.GuideParser {
	site := r.detector.Detect(html)
	if parser, ok := r.parsers[site]; ok {
		return parser
	}
	return r.fallback
}

// Register adds a parser for a markup generation.
// If a parser is already registered for the generation, it is replaced.
func (r *Registry) Register(site edhgrab.Site, parser edhgrab.GuideParser) {
	r.parsers[site] = parser
}

// List returns all registered markup generations.
func (r *Registry) List() []edhgrab.Site {
	sites := make([]edhgrab.Site, 0, len(r.parsers))
	for s := range r.parsers {
		sites = append(sites, s)
	}
	return sites
}

// NewDefaultRegistry wires the standard parser set: the strict current
// parser keyed by its generation, with the permissive legacy parser
// registered and doubling as the fallback.
func NewDefaultRegistry() *Registry {
	legacy := NewLegacyParser()
	r := NewRegistry(NewDetector(), legacy)
	r.Register(edhgrab.SiteNext, NewNextParser())
	r.Register(edhgrab.SiteLegacy, legacy)
	return r
}
