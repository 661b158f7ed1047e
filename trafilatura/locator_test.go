package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("locates article content in unrecognized markup", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Korvold Upgrade Guide | EDHREC</title></head>
<body>
<nav><a href="/">Home</a><a href="/articles">Articles</a></nav>
<div class="totally-custom-wrapper">
<h1>Korvold Upgrade Guide</h1>
<p>The precon engine stalls out around turn six, so the first round of
upgrades goes after the mana curve and the sacrifice fodder density.</p>
<p>Treasure tokens do double duty here as ramp and as dragon food.</p>
</div>
<footer>Copyright 2023 Example Corp</footer>
</body>
</html>`

		loc := trafilatura.NewLocator()
		located, err := loc.Locate(html)

		require.NoError(t, err)
		assert.Contains(t, located.ContentHTML, "sacrifice fodder density")
		assert.Contains(t, located.ContentHTML, "dragon food")
		assert.NotContains(t, located.ContentHTML, "Copyright 2023 Example Corp")
	})

	t.Run("extracts the page title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Budget Mana Bases - EDHREC</title>
<meta property="og:title" content="Budget Mana Bases">
</head>
<body>
<article>
<h1>Budget Mana Bases</h1>
<p>A five color mana base does not need to cost more than the rest of the deck.</p>
</article>
</body>
</html>`

		loc := trafilatura.NewLocator()
		located, err := loc.Locate(html)

		require.NoError(t, err)
		assert.NotEmpty(t, located.Title)
	})

	t.Run("preserves card list markup", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Ramp Package</h1>
<p>These are the two cheapest pieces of acceleration to add first.</p>
<ul>
<li>Sol Ring</li>
<li>Arcane Signet</li>
</ul>
</article>
</body>
</html>`

		loc := trafilatura.NewLocator()
		located, err := loc.Locate(html)

		require.NoError(t, err)
		assert.Contains(t, located.ContentHTML, "Sol Ring")
		assert.Contains(t, located.ContentHTML, "Arcane Signet")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		loc := trafilatura.NewLocator()
		_, err := loc.Locate("")

		require.Error(t, err)
		assert.Equal(t, edhgrab.EINVALID, edhgrab.ErrorCode(err))
	})
}
