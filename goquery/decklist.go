package goquery

import (
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/edhgrab"
)

var deckEntryRe = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// parseDecklist extracts a structured decklist from its widget markup.
// The first heading-4 is the title, each heading-5 opens a section, and
// a section's cards come from the nearest following sibling list.
// Returns nil when nothing recognizable is inside.
func parseDecklist(sel *goquery.Selection) *edhgrab.Decklist {
	d := &edhgrab.Decklist{
		Title: edhgrab.CleanText(sel.Find("h4").First().Text()),
	}
	sel.Find("h5").Each(func(_ int, h *goquery.Selection) {
		list := h.NextAllFiltered("ul, ol").First()
		if list.Length() == 0 {
			return
		}
		section := edhgrab.DeckSection{Name: edhgrab.CleanText(h.Text())}
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if entry, ok := parseDeckEntry(li.Text()); ok {
				section.Cards = append(section.Cards, entry)
			}
		})
		d.Sections = append(d.Sections, section)
	})
	if d.Title == "" && len(d.Sections) == 0 {
		return nil
	}
	return d
}

// parseDeckEntry parses a "<quantity> <name>" list item. Items with a
// different shape are skipped rather than treated as errors.
func parseDeckEntry(text string) (edhgrab.DeckEntry, bool) {
	m := deckEntryRe.FindStringSubmatch(collapseText(text))
	if m == nil {
		return edhgrab.DeckEntry{}, false
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil || qty <= 0 {
		return edhgrab.DeckEntry{}, false
	}
	name := edhgrab.CleanText(m[2])
	if name == "" {
		return edhgrab.DeckEntry{}, false
	}
	return edhgrab.DeckEntry{Quantity: qty, Name: name}, true
}
