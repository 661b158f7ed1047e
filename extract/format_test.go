package extract_test

import (
	"testing"

	"github.com/fwojciec/edhgrab/extract"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	t.Run("returns URL unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://x.com", extract.TruncateURL("https://x.com", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		url := "https://edhrec.com/articles/korvold-upgrade-guide"
		result := extract.TruncateURL(url, 20)
		assert.Equal(t, "...old-upgrade-guide", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns URL unchanged when exactly max length", func(t *testing.T) {
		t.Parallel()
		url := "https://edhrec.com"
		assert.Equal(t, url, extract.TruncateURL(url, len(url)))
	})

	t.Run("returns empty string when maxLen is zero", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, extract.TruncateURL("https://edhrec.com", 0))
	})

	t.Run("returns empty string when maxLen is negative", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, extract.TruncateURL("https://edhrec.com", -1))
	})

	t.Run("returns prefix of URL when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		// When maxLen < 4, we can't fit "..." prefix, so return URL prefix
		assert.Equal(t, "htt", extract.TruncateURL("https://edhrec.com", 3))
		assert.Equal(t, "ht", extract.TruncateURL("https://edhrec.com", 2))
		assert.Equal(t, "h", extract.TruncateURL("https://edhrec.com", 1))
	})

	t.Run("handles short URL with small maxLen", func(t *testing.T) {
		t.Parallel()
		// URL shorter than maxLen should return unchanged
		assert.Equal(t, "ab", extract.TruncateURL("ab", 3))
		assert.Equal(t, "a", extract.TruncateURL("a", 2))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	t.Run("formats bytes as B", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "512 B", extract.FormatBytes(512))
	})

	t.Run("formats kilobytes as KB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.5 KB", extract.FormatBytes(1536))
	})

	t.Run("formats megabytes as MB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2.0 MB", extract.FormatBytes(2*1024*1024))
	})
}
