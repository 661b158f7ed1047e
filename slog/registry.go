package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/edhgrab"
)

// Ensure LoggingRegistry implements edhgrab.ParserRegistry.
var _ edhgrab.ParserRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ParserRegistry with debug logging for site detection.
type LoggingRegistry struct {
	next     edhgrab.ParserRegistry
	detector edhgrab.SiteDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next edhgrab.ParserRegistry, detector edhgrab.SiteDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(site edhgrab.Site) edhgrab.GuideParser {
	return r.next.Get(site)
}

// GetForHTML detects the site generation, logs it, and returns the appropriate parser.
func (r *LoggingRegistry) GetForHTML(html string) edhgrab.GuideParser {
	begin := time.Now()
	site := r.detector.Detect(html)
	siteName := string(site)
	if site == edhgrab.SiteUnknown {
		siteName = "(unknown)"
	}
	r.logger.Info("site detection",
		"site", siteName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(site edhgrab.Site, parser edhgrab.GuideParser) {
	r.next.Register(site, parser)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []edhgrab.Site {
	return r.next.List()
}
