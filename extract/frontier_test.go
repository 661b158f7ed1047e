package extract_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/extract"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := extract.NewFrontier(1000, 0.01)

	link := edhgrab.DiscoveredLink{
		URL:      "https://edhrec.com/articles/page1",
		Priority: edhgrab.PriorityContent,
	}

	// First push should succeed
	ok := f.Push(link)
	assert.True(t, ok, "first push should succeed")

	// Second push of same URL should be rejected
	ok = f.Push(link)
	assert.False(t, ok, "duplicate URL should be rejected")
}

func TestFrontier_Push_treats_fragments_as_duplicates(t *testing.T) {
	t.Parallel()

	f := extract.NewFrontier(1000, 0.01)

	ok := f.Push(edhgrab.DiscoveredLink{
		URL:      "https://edhrec.com/articles/page1#intro",
		Priority: edhgrab.PriorityContent,
	})
	assert.True(t, ok)

	ok = f.Push(edhgrab.DiscoveredLink{
		URL:      "https://edhrec.com/articles/page1#cuts",
		Priority: edhgrab.PriorityContent,
	})
	assert.False(t, ok, "same URL with different fragment should be rejected")

	link, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://edhrec.com/articles/page1", link.URL, "queued URL should have no fragment")
}

func TestFrontier_Pop_returns_highest_priority_first(t *testing.T) {
	t.Parallel()

	f := extract.NewFrontier(1000, 0.01)

	// Push links in random priority order
	f.Push(edhgrab.DiscoveredLink{URL: "https://edhrec.com/fallback", Priority: edhgrab.PriorityFallback})
	f.Push(edhgrab.DiscoveredLink{URL: "https://edhrec.com/content", Priority: edhgrab.PriorityContent})
	f.Push(edhgrab.DiscoveredLink{URL: "https://edhrec.com/articles/", Priority: edhgrab.PriorityIndex})

	// Pop should return in priority order (highest first)
	link, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, edhgrab.PriorityIndex, link.Priority)
	assert.Equal(t, "https://edhrec.com/articles/", link.URL)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, edhgrab.PriorityContent, link.Priority)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, edhgrab.PriorityFallback, link.Priority)

	// Queue should now be empty
	_, ok = f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
}

func TestFrontier_Pop_preserves_push_order_within_a_priority(t *testing.T) {
	t.Parallel()

	f := extract.NewFrontier(1000, 0.01)

	urls := []string{
		"https://edhrec.com/articles/first",
		"https://edhrec.com/articles/second",
		"https://edhrec.com/articles/third",
		"https://edhrec.com/articles/fourth",
	}
	for _, u := range urls {
		f.Push(edhgrab.DiscoveredLink{URL: u, Priority: edhgrab.PriorityContent})
	}

	for _, want := range urls {
		link, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, link.URL)
	}
}

func TestFrontier_Len_tracks_queue_size(t *testing.T) {
	t.Parallel()

	f := extract.NewFrontier(1000, 0.01)

	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push(edhgrab.DiscoveredLink{URL: "https://edhrec.com/a", Priority: edhgrab.PriorityContent})
	assert.Equal(t, 1, f.Len())

	f.Push(edhgrab.DiscoveredLink{URL: "https://edhrec.com/b", Priority: edhgrab.PriorityContent})
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())

	f.Pop()
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_Seen_tracks_all_pushed_URLs(t *testing.T) {
	t.Parallel()

	f := extract.NewFrontier(1000, 0.01)

	assert.False(t, f.Seen("https://edhrec.com/articles/page"), "unseen URL should return false")

	f.Push(edhgrab.DiscoveredLink{URL: "https://edhrec.com/articles/page", Priority: edhgrab.PriorityContent})

	assert.True(t, f.Seen("https://edhrec.com/articles/page"), "pushed URL should be seen")

	// Pop the URL - it should still be seen
	f.Pop()
	assert.True(t, f.Seen("https://edhrec.com/articles/page"), "popped URL should still be seen")
}

func TestFrontier_concurrent_access(t *testing.T) {
	t.Parallel()

	f := extract.NewFrontier(10000, 0.01)

	const numGoroutines = 10
	const numOpsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2) // pushers + poppers

	// Start pushers
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				url := fmt.Sprintf("https://edhrec.com/articles/%d/%d", id, j)
				f.Push(edhgrab.DiscoveredLink{
					URL:      url,
					Priority: edhgrab.PriorityContent,
				})
			}
		}(i)
	}

	// Start poppers
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Pop()
				f.Len()
			}
		}()
	}

	wg.Wait()

	// Verify no panic occurred and state is consistent
	// All pushed URLs should be seen
	for i := 0; i < numGoroutines; i++ {
		for j := 0; j < numOpsPerGoroutine; j++ {
			url := fmt.Sprintf("https://edhrec.com/articles/%d/%d", i, j)
			assert.True(t, f.Seen(url), "pushed URL %s should be seen", url)
		}
	}
}
