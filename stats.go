package edhgrab

// CardStat is a card's inclusion rate on a commander page.
type CardStat struct {
	Name string `json:"name"`

	// Inclusion is the percentage of decks running the card, 0-100.
	Inclusion float64 `json:"inclusion"`

	// Label is the inclusion as displayed on the page (e.g. "68%").
	Label string `json:"label,omitempty"`
}

// StatSection groups card stats under a page section (e.g. "High Synergy Cards").
type StatSection struct {
	Name  string     `json:"name"`
	Cards []CardStat `json:"cards"`
}

// CommanderStats represents the card statistics of a commander page.
type CommanderStats struct {
	Commander string `json:"commander"`

	// DeckCount is the number of decks the stats are drawn from.
	// Zero means the count could not be determined.
	DeckCount int `json:"deckCount"`

	// DeckCountLabel is the count formatted for display (e.g. "12,345").
	DeckCountLabel string `json:"deckCountLabel,omitempty"`

	Sections []StatSection `json:"sections"`
}

// Validate returns an error if the stats contain invalid fields.
func (s *CommanderStats) Validate() error {
	if s.Commander == "" {
		return Errorf(EINVALID, "commander name required")
	}
	if len(s.Sections) == 0 {
		return Errorf(ECONTENT, "commander %q has no card sections", s.Commander)
	}
	return nil
}

// FilterByInclusion returns a copy containing only cards at or above the
// minimum inclusion percentage. Sections left empty by the cutoff are
// dropped. The receiver is not modified.
func (s *CommanderStats) FilterByInclusion(min float64) *CommanderStats {
	out := &CommanderStats{
		Commander:      s.Commander,
		DeckCount:      s.DeckCount,
		DeckCountLabel: s.DeckCountLabel,
	}
	for _, section := range s.Sections {
		var kept []CardStat
		for _, card := range section.Cards {
			if card.Inclusion >= min {
				kept = append(kept, card)
			}
		}
		if len(kept) > 0 {
			out.Sections = append(out.Sections, StatSection{Name: section.Name, Cards: kept})
		}
	}
	return out
}

// CardNames returns every card name across all sections, in section order,
// deduplicated.
func (s *CommanderStats) CardNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, section := range s.Sections {
		for _, card := range section.Cards {
			if _, ok := seen[card.Name]; ok {
				continue
			}
			seen[card.Name] = struct{}{}
			names = append(names, card.Name)
		}
	}
	return names
}
