package mock

import (
	"context"

	"github.com/fwojciec/edhgrab"
)

// Compile-time interface verification.
var (
	_ edhgrab.GuideParser    = (*GuideParser)(nil)
	_ edhgrab.StatsParser    = (*StatsParser)(nil)
	_ edhgrab.SiteDetector   = (*SiteDetector)(nil)
	_ edhgrab.ParserRegistry = (*ParserRegistry)(nil)
	_ edhgrab.GuideService   = (*GuideService)(nil)
	_ edhgrab.StatsService   = (*StatsService)(nil)
)

// GuideParser is a mock implementation of edhgrab.GuideParser.
type GuideParser struct {
	ParseGuideFn func(html string, url string) (*edhgrab.Guide, error)
	NameFn       func() string
}

func (p *GuideParser) ParseGuide(html string, url string) (*edhgrab.Guide, error) {
	return p.ParseGuideFn(html, url)
}

func (p *GuideParser) Name() string {
	return p.NameFn()
}

// StatsParser is a mock implementation of edhgrab.StatsParser.
type StatsParser struct {
	ParseStatsFn func(html string, commander string) (*edhgrab.CommanderStats, error)
}

func (p *StatsParser) ParseStats(html string, commander string) (*edhgrab.CommanderStats, error) {
	return p.ParseStatsFn(html, commander)
}

// SiteDetector is a mock implementation of edhgrab.SiteDetector.
type SiteDetector struct {
	DetectFn func(html string) edhgrab.Site
}

func (d *SiteDetector) Detect(html string) edhgrab.Site {
	return d.DetectFn(html)
}

// ParserRegistry is a mock implementation of edhgrab.ParserRegistry.
type ParserRegistry struct {
	GetFn        func(site edhgrab.Site) edhgrab.GuideParser
	GetForHTMLFn func(html string) edhgrab.GuideParser
	RegisterFn   func(site edhgrab.Site, parser edhgrab.GuideParser)
	ListFn       func() []edhgrab.Site
}

func (r *ParserRegistry) Get(site edhgrab.Site) edhgrab.GuideParser {
	return r.GetFn(site)
}

func (r *ParserRegistry) GetForHTML(html string) edhgrab.GuideParser {
	return r.GetForHTMLFn(html)
}

func (r *ParserRegistry) Register(site edhgrab.Site, parser edhgrab.GuideParser) {
	r.RegisterFn(site, parser)
}

func (r *ParserRegistry) List() []edhgrab.Site {
	return r.ListFn()
}

// GuideService is a mock implementation of edhgrab.GuideService.
type GuideService struct {
	ExtractGuideFn func(ctx context.Context, url string) (*edhgrab.Guide, error)
}

func (s *GuideService) ExtractGuide(ctx context.Context, url string) (*edhgrab.Guide, error) {
	return s.ExtractGuideFn(ctx, url)
}

// StatsService is a mock implementation of edhgrab.StatsService.
type StatsService struct {
	ExtractStatsFn func(ctx context.Context, url string) (*edhgrab.CommanderStats, error)
}

func (s *StatsService) ExtractStats(ctx context.Context, url string) (*edhgrab.CommanderStats, error) {
	return s.ExtractStatsFn(ctx, url)
}
