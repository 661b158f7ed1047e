package edhgrab_test

import (
	"testing"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("uses plain text without a converter", func(t *testing.T) {
		t.Parallel()

		g := &edhgrab.Guide{
			Title: "Upgrading Goreclaw",
			Blocks: []edhgrab.Block{
				&edhgrab.Paragraph{Text: "Big creatures.", HTML: "<em>Big</em> creatures."},
			},
		}

		got, err := edhgrab.ExportMarkdown(g, nil)
		require.NoError(t, err)

		assert.Contains(t, got, "# Upgrading Goreclaw\n")
		assert.Contains(t, got, "Big creatures.\n")
	})

	t.Run("converts paragraph HTML when a converter is set", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "*Big* creatures.", nil
			},
		}
		g := &edhgrab.Guide{
			Title: "Upgrading Goreclaw",
			Blocks: []edhgrab.Block{
				&edhgrab.Paragraph{Text: "Big creatures.", HTML: "<em>Big</em> creatures."},
			},
		}

		got, err := edhgrab.ExportMarkdown(g, conv)
		require.NoError(t, err)

		assert.Contains(t, got, "*Big* creatures.\n")
	})

	t.Run("adds a table of contents for three or more headers", func(t *testing.T) {
		t.Parallel()

		g := &edhgrab.Guide{
			Title: "Upgrading Goreclaw",
			Blocks: []edhgrab.Block{
				&edhgrab.Header{Level: 2, Text: "The Deck"},
				&edhgrab.Header{Level: 2, Text: "Upgrades"},
				&edhgrab.Header{Level: 3, Text: "Ramp Package"},
			},
		}

		got, err := edhgrab.ExportMarkdown(g, nil)
		require.NoError(t, err)

		assert.Contains(t, got, "- [The Deck](#the-deck)\n")
		assert.Contains(t, got, "- [Upgrades](#upgrades)\n")
		assert.Contains(t, got, "    - [Ramp Package](#ramp-package)\n")
	})

	t.Run("renders decklists as nested headings", func(t *testing.T) {
		t.Parallel()

		g := &edhgrab.Guide{
			Title: "Upgrading Goreclaw",
			Blocks: []edhgrab.Block{
				&edhgrab.Decklist{Title: "Deck", Sections: []edhgrab.DeckSection{
					{Name: "Lands", Cards: []edhgrab.DeckEntry{
						{Quantity: 1, Name: "Command Tower"},
						{Quantity: 2, Name: "Forest"},
					}},
				}},
			},
		}

		got, err := edhgrab.ExportMarkdown(g, nil)
		require.NoError(t, err)

		assert.Contains(t, got, "#### Deck\n")
		assert.Contains(t, got, "##### Lands\n")
		assert.Contains(t, got, "- 1 Command Tower\n- 2 Forest\n")
	})

	t.Run("renders upgrade cards and card references", func(t *testing.T) {
		t.Parallel()

		g := &edhgrab.Guide{
			Title: "Upgrading Goreclaw",
			Blocks: []edhgrab.Block{
				&edhgrab.CardRef{Name: "Ghalta, Primal Hunger"},
			},
			UpgradeCards: []string{"Rishkar's Expertise", "Beast Whisperer"},
		}

		got, err := edhgrab.ExportMarkdown(g, nil)
		require.NoError(t, err)

		assert.Contains(t, got, "**Ghalta, Primal Hunger**\n")
		assert.Contains(t, got, "## Upgrade Cards\n\n- Rishkar's Expertise\n- Beast Whisperer\n")
	})
}
