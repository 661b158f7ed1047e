package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fwojciec/edhgrab"
)

// Run executes the commander command.
func (c *CommanderCmd) Run(deps *Dependencies) error {
	url := c.Target
	if !edhgrab.IsCommanderURL(url) {
		url = commanderURL(c.Target)
	}

	stats, err := deps.Stats.ExtractStats(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edhgrab.ErrorMessage(err))
		return err
	}

	if c.MinInclusion > 0 {
		stats = stats.FilterByInclusion(c.MinInclusion)
	}

	if stats.DeckCountLabel != "" {
		fmt.Fprintf(deps.Stdout, "%s (%s decks)\n\n", stats.Commander, stats.DeckCountLabel)
	} else {
		fmt.Fprintf(deps.Stdout, "%s\n\n", stats.Commander)
	}

	var byName map[string]*edhgrab.CardDetails
	if c.Enrich && deps.Enricher != nil {
		names := stats.CardNames()
		details, err := deps.Enricher.EnrichNames(deps.Ctx, names)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", edhgrab.ErrorMessage(err))
			return err
		}
		byName = make(map[string]*edhgrab.CardDetails, len(names))
		for i, name := range names {
			byName[name] = details[i]
		}
	}

	renderStatSections(deps.Stdout, stats, byName)

	if deps.Symbols != nil && byName != nil {
		c.cacheSymbols(deps, byName)
	}

	if c.Export != "" {
		if err := os.WriteFile(c.Export, []byte(edhgrab.FormatCardList(stats)), 0644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Export)
	}

	return nil
}

// cacheSymbols fetches the symbol file for each distinct set among the
// enriched cards. A failed symbol is skipped, not fatal.
func (c *CommanderCmd) cacheSymbols(deps *Dependencies, byName map[string]*edhgrab.CardDetails) {
	seen := make(map[string]bool)
	saved := 0
	for _, d := range byName {
		set := d.Set
		if set.Code == "" || set.SymbolURL == "" || seen[set.Code] {
			continue
		}
		seen[set.Code] = true
		if _, err := deps.Symbols.SymbolPath(deps.Ctx, set.Code, set.SymbolURL); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip symbol %s: %s\n", set.Code, edhgrab.ErrorMessage(err))
			continue
		}
		saved++
	}
	fmt.Fprintf(deps.Stdout, "Cached %d set symbols in %s\n", saved, c.SymbolDir)
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// commanderURL builds a commander page URL from a display name.
func commanderURL(name string) string {
	slug := strings.Trim(slugStrip.ReplaceAllString(strings.ToLower(name), "-"), "-")
	return "https://edhrec.com/commanders/" + slug
}
