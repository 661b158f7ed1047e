package edhgrab_test

import (
	"testing"

	"github.com/fwojciec/edhgrab"
	"github.com/stretchr/testify/assert"
)

func TestFormatGuide(t *testing.T) {
	t.Parallel()

	t.Run("renders every block variant", func(t *testing.T) {
		t.Parallel()

		g := &edhgrab.Guide{
			URL:    "https://edhrec.com/articles/goreclaw-upgrade",
			Title:  "Upgrading Goreclaw",
			Author: "Jane",
			Date:   "2024-03-01",
			Blocks: []edhgrab.Block{
				&edhgrab.Header{Level: 2, Text: "The Deck"},
				&edhgrab.Paragraph{Text: "Big creatures, cheap."},
				&edhgrab.CardList{Items: []string{"Rampant Growth", "Beast Whisperer"}},
				&edhgrab.Decklist{Title: "Deck", Sections: []edhgrab.DeckSection{
					{Name: "Lands", Cards: []edhgrab.DeckEntry{{Quantity: 1, Name: "Command Tower"}}},
				}},
				&edhgrab.CardRef{Name: "Ghalta, Primal Hunger"},
			},
			UpgradeCards: []string{"Rishkar's Expertise"},
		}

		got := edhgrab.FormatGuide(g)

		assert.Contains(t, got, "Upgrading Goreclaw\n")
		assert.Contains(t, got, "Jane, 2024-03-01\n")
		assert.Contains(t, got, "## The Deck\n")
		assert.Contains(t, got, "Big creatures, cheap.\n")
		assert.Contains(t, got, "- Rampant Growth\n")
		assert.Contains(t, got, "Lands:\n  1 Command Tower\n")
		assert.Contains(t, got, "[Ghalta, Primal Hunger]\n")
		assert.Contains(t, got, "Upgrade cards:\n- Rishkar's Expertise\n")
	})

	t.Run("numbers ordered lists", func(t *testing.T) {
		t.Parallel()

		g := &edhgrab.Guide{
			Title:  "Top Picks",
			Blocks: []edhgrab.Block{&edhgrab.CardList{Ordered: true, Items: []string{"Sol Ring", "Arcane Signet"}}},
		}

		got := edhgrab.FormatGuide(g)

		assert.Contains(t, got, "1. Sol Ring\n2. Arcane Signet\n")
	})
}

func TestFormatStats(t *testing.T) {
	t.Parallel()

	stats := &edhgrab.CommanderStats{
		Commander:      "Ghalta, Primal Hunger",
		DeckCount:      12345,
		DeckCountLabel: "12,345",
		Sections: []edhgrab.StatSection{
			{Name: "High Synergy Cards", Cards: []edhgrab.CardStat{
				{Name: "Rishkar's Expertise", Inclusion: 68, Label: "68%"},
				{Name: "Fyndhorn Elves"},
			}},
		},
	}

	got := edhgrab.FormatStats(stats)

	assert.Contains(t, got, "Ghalta, Primal Hunger\n")
	assert.Contains(t, got, "12,345 decks\n")
	assert.Contains(t, got, "High Synergy Cards (2)\n")
	assert.Contains(t, got, "  Rishkar's Expertise - 68%\n")
	assert.Contains(t, got, "  Fyndhorn Elves\n")
}
