package goquery

import "github.com/fwojciec/edhgrab"

// profile holds every site-specific literal used during classification.
// Markup changes on the source site are absorbed by editing a profile,
// not the classification algorithm.
type profile struct {
	name string
	site edhgrab.Site

	// mainContent lists article container selectors in priority order.
	mainContent []string

	// bodyFallback classifies from <body> when no container matches
	// instead of failing.
	bodyFallback bool

	// Page furniture: matching elements are never classified or
	// recursed into. skipClasses match whole class tokens.
	skipSelectors []string
	skipClasses   []string

	// sentinels clip the walk at trailing related-content sections.
	sentinels []string

	// Card grid containers feeding the guide's upgrade card names.
	cardContainers   []string
	cardNameSelector string
	cardNameAttr     string

	// Embedded decklist widgets.
	decklist string

	// maxHeaderLevel bounds recognized heading tags (h1..hN).
	maxHeaderLevel int

	minTextLen      int
	minParagraphLen int

	// Individual card markers (legacy markup only).
	cardRefs         bool
	cardRefSelectors []string
	cardRefAttr      string

	// Page metadata selectors, first match wins.
	title  []string
	author []string
	date   []string
}

// nextProfile matches the current React markup with CSS-module class
// names. Content selectors are strict: a page that matches none of them
// is reported as unparseable rather than guessed at.
func nextProfile() *profile {
	return &profile{
		name: "next",
		site: edhgrab.SiteNext,
		mainContent: []string{
			"div[class*='ArticleContent']",
			"div[class*='article__content']",
			"main article",
		},
		skipSelectors: []string{
			"script", "style", "noscript", "iframe", "form", "nav", "aside", "footer",
		},
		skipClasses: []string{
			"ad", "ads", "advert", "sidebar", "share", "social", "nav", "menu",
			"footer", "comments", "newsletter", "breadcrumbs",
		},
		sentinels: []string{
			"related articles", "more from this author", "read more articles",
		},
		cardContainers: []string{
			"div[class*='CardGrid']", "div[class*='cards__container']", ".cards",
		},
		cardNameSelector: "[class*='Card_name'], .card__name",
		cardNameAttr:     "data-card-name",
		decklist:         ".edhrecp__deck",
		maxHeaderLevel:   4,
		minTextLen:       10,
		minParagraphLen:  20,
		title:            []string{"main h1", "h1", "title"},
		author:           []string{"[class*='ArticleByline'] a", ".article__author", "meta[name='author']"},
		date:             []string{"time[datetime]", "[class*='ArticleByline'] time", ".article__date"},
	}
}

// legacyProfile matches the old static markup. It is permissive: the
// document body is classified when no content container matches, and
// individually marked-up cards are extracted as card references.
func legacyProfile() *profile {
	return &profile{
		name: "legacy",
		site: edhgrab.SiteLegacy,
		mainContent: []string{
			"#article-body", ".article-body", ".panel-body", ".content",
		},
		bodyFallback: true,
		skipSelectors: []string{
			"script", "style", "noscript", "iframe", "form", "nav", "aside",
			"footer", "header",
		},
		skipClasses: []string{
			"ad", "ads", "advert", "sidebar", "share", "social", "nav", "menu",
			"footer", "comments", "navbar",
		},
		sentinels: []string{
			"related articles", "you may also like", "more articles",
		},
		cardContainers: []string{
			".cards", ".card-row",
		},
		cardNameSelector: ".card__name, .card-name",
		cardNameAttr:     "data-card-name",
		decklist:         ".edhrecp__deck",
		maxHeaderLevel:   6,
		minTextLen:       10,
		minParagraphLen:  20,
		cardRefs:         true,
		cardRefSelectors: []string{"[data-card-name]", ".card", ".card-image"},
		cardRefAttr:      "data-card-name",
		title:            []string{".article-title", "h1", "title"},
		author:           []string{".article-author", ".byline a"},
		date:             []string{".article-date", ".byline time"},
	}
}
