package extract

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/bloom"
)

// Compile-time interface verification.
var _ edhgrab.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory URL frontier with a priority queue and Bloom
// filter deduplication. It is safe for concurrent use by multiple
// goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
	seq   int
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a link to the frontier.
// Returns false if the URL has already been seen. URL fragments are
// stripped first, so URLs differing only by fragment are duplicates.
func (f *Frontier) Push(link edhgrab.DiscoveredLink) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(link.URL)
	if f.seen.TestAndAdd(url) {
		return false
	}

	link.URL = url
	f.seq++
	heap.Push(f.queue, queuedLink{link: link, seq: f.seq})
	return true
}

// Pop returns the next link by priority; links of equal priority come
// out in push order. The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (edhgrab.DiscoveredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return edhgrab.DiscoveredLink{}, false
	}
	q, _ := heap.Pop(f.queue).(queuedLink)
	return q.link, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// queuedLink pairs a link with its push sequence number so equal
// priorities pop first-in-first-out.
type queuedLink struct {
	link edhgrab.DiscoveredLink
	seq  int
}

// linkHeap implements heap.Interface as a max-heap over link priority.
type linkHeap []queuedLink

func (h linkHeap) Len() int { return len(h) }

// Less returns true if i pops before j: higher priority first, then
// lower sequence number.
func (h linkHeap) Less(i, j int) bool {
	if h[i].link.Priority != h[j].link.Priority {
		return h[i].link.Priority > h[j].link.Priority
	}
	return h[i].seq < h[j].seq
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	q, _ := x.(queuedLink)
	*h = append(*h, q)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
