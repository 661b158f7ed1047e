package goquery_test

import (
	"testing"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsParser_ParseStats(t *testing.T) {
	t.Parallel()

	t.Run("sorts cards by descending inclusion within a section", func(t *testing.T) {
		t.Parallel()
		html := `<html><body>
<div class="cardlist" id="highSynergyCards">
  <h3 class="subheader">High Synergy Cards</h3>
  <div class="card"><span class="card__name">Skullclamp</span><div class="card__label">12% of 8039 decks</div></div>
  <div class="card"><span class="card__name">Pitiless Plunderer</span><div class="card__label">68% of 8039 decks</div></div>
  <div class="card"><span class="card__name">Beast Within</span><div class="card__label">5% of 8039 decks</div></div>
</div>
</body></html>`

		parser := goquery.NewStatsParser()
		stats, err := parser.ParseStats(html, "Korvold, Fae-Cursed King")
		require.NoError(t, err)

		assert.Equal(t, "Korvold, Fae-Cursed King", stats.Commander)
		require.Len(t, stats.Sections, 1)
		section := stats.Sections[0]
		assert.Equal(t, "High Synergy Cards", section.Name)
		require.Len(t, section.Cards, 3)
		assert.Equal(t, "Pitiless Plunderer", section.Cards[0].Name)
		assert.Equal(t, 68.0, section.Cards[0].Inclusion)
		assert.Equal(t, "68%", section.Cards[0].Label)
		assert.Equal(t, "Skullclamp", section.Cards[1].Name)
		assert.Equal(t, "Beast Within", section.Cards[2].Name)
	})

	t.Run("deduplicates card names within a section keeping the first", func(t *testing.T) {
		t.Parallel()
		html := `<html><body>
<div class="cardlist">
  <h3>Artifacts</h3>
  <div class="card"><span class="card__name">Sol Ring</span><div class="card__label">99% of 8039 decks</div></div>
  <div class="card"><span class="card__name">Sol Ring</span><div class="card__label">42% of 8039 decks</div></div>
</div>
</body></html>`

		parser := goquery.NewStatsParser()
		stats, err := parser.ParseStats(html, "Korvold, Fae-Cursed King")
		require.NoError(t, err)

		require.Len(t, stats.Sections, 1)
		require.Len(t, stats.Sections[0].Cards, 1)
		assert.Equal(t, 99.0, stats.Sections[0].Cards[0].Inclusion)
	})

	t.Run("rejects labels carrying prices instead of inclusion rates", func(t *testing.T) {
		t.Parallel()
		html := `<html><body>
<div class="cardlist">
  <h3>Utility Artifacts</h3>
  <div class="card"><span class="card__name">Mind Stone</span><div class="card__label">31% of 8039 decks</div></div>
  <div class="card"><span class="card__name">Mana Crypt</span><div class="card__label">$189.99</div></div>
  <div class="card"><span class="card__name">Mana Vault</span><div class="card__label">In 50% of decks ($45.00)</div></div>
</div>
</body></html>`

		parser := goquery.NewStatsParser()
		stats, err := parser.ParseStats(html, "Korvold, Fae-Cursed King")
		require.NoError(t, err)

		require.Len(t, stats.Sections, 1)
		require.Len(t, stats.Sections[0].Cards, 1)
		assert.Equal(t, "Mind Stone", stats.Sections[0].Cards[0].Name)
	})

	t.Run("derives section names from camel case container ids", func(t *testing.T) {
		t.Parallel()
		html := `<html><body>
<div class="cardlist" id="utilityArtifacts">
  <div class="card"><span class="card__name">Wayfarer's Bauble</span><div class="card__label">22% of 8039 decks</div></div>
</div>
</body></html>`

		parser := goquery.NewStatsParser()
		stats, err := parser.ParseStats(html, "Korvold, Fae-Cursed King")
		require.NoError(t, err)

		require.Len(t, stats.Sections, 1)
		assert.Equal(t, "Utility Artifacts", stats.Sections[0].Name)
	})

	t.Run("repairs duplicated name artifacts before grouping", func(t *testing.T) {
		t.Parallel()
		html := `<html><body>
<div class="cardlist">
  <h3>Creatures</h3>
  <div class="card"><span class="card__name">Goreclaw, Terror of Qal SismaGoreclaw, Terror of Qal Sisma</span><div class="card__label">44% of 8039 decks</div></div>
</div>
</body></html>`

		parser := goquery.NewStatsParser()
		stats, err := parser.ParseStats(html, "Goreclaw, Terror of Qal Sisma")
		require.NoError(t, err)

		require.Len(t, stats.Sections, 1)
		assert.Equal(t, "Goreclaw, Terror of Qal Sisma", stats.Sections[0].Cards[0].Name)
	})

	t.Run("reads the deck count from the embedded data blob first", func(t *testing.T) {
		t.Parallel()
		html := `<html><body>
<script id="__NEXT_DATA__" type="application/json">{"props":{"numDecks":12345}}</script>
<p>Based on 99 decks from somewhere else on the page.</p>
<div class="cardlist">
  <h3>Lands</h3>
  <div class="card"><span class="card__name">Command Tower</span><div class="card__label">91% of 12345 decks</div></div>
</div>
</body></html>`

		parser := goquery.NewStatsParser()
		stats, err := parser.ParseStats(html, "Korvold, Fae-Cursed King")
		require.NoError(t, err)

		assert.Equal(t, 12345, stats.DeckCount)
		assert.Equal(t, "12,345", stats.DeckCountLabel)
	})

	t.Run("falls back to visible deck count text with comma grouping", func(t *testing.T) {
		t.Parallel()
		html := `<html><body>
<h1>Korvold, Fae-Cursed King (Commander)</h1>
<p>8,039 decks</p>
<div class="cardlist">
  <h3>Lands</h3>
  <div class="card"><span class="card__name">Command Tower</span><div class="card__label">91% of 8039 decks</div></div>
</div>
</body></html>`

		parser := goquery.NewStatsParser()
		stats, err := parser.ParseStats(html, "Korvold, Fae-Cursed King")
		require.NoError(t, err)

		assert.Equal(t, 8039, stats.DeckCount)
		assert.Equal(t, "8,039", stats.DeckCountLabel)
	})

	t.Run("fails with parse error when no stat containers match", func(t *testing.T) {
		t.Parallel()
		html := `<html><body><p>Not a commander page at all, just some text.</p></body></html>`

		parser := goquery.NewStatsParser()
		_, err := parser.ParseStats(html, "Korvold, Fae-Cursed King")
		require.Error(t, err)
		assert.Equal(t, edhgrab.EPARSE, edhgrab.ErrorCode(err))
	})
}
