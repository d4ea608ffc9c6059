package search

import (
	"github.com/fwojciec/regscout"
	"github.com/fwojciec/regscout/bloom"
)

// Tracker sizing for one search invocation.
const (
	trackerExpectedURLs      = 10000
	trackerFalsePositiveRate = 0.01
)

// Ensure Tracker implements regscout.SeenTracker at compile time.
var _ regscout.SeenTracker = (*Tracker)(nil)

// Tracker deduplicates work within one search invocation. Identifiers use
// an exact set because a false positive would silently drop a document;
// visited URLs tolerate the Bloom filter's false positive rate since
// skipping a page only costs coverage, never correctness.
type Tracker struct {
	identifiers map[string]bool
	urls        *bloom.Filter
}

// NewTracker creates an empty tracker. Each search invocation owns its own
// tracker; never share one across searches.
func NewTracker() *Tracker {
	return &Tracker{
		identifiers: make(map[string]bool),
		urls:        bloom.NewFilter(trackerExpectedURLs, trackerFalsePositiveRate),
	}
}

// MarkIdentifier records a document identifier, returning false if it was
// already seen.
func (t *Tracker) MarkIdentifier(id string) bool {
	if t.identifiers[id] {
		return false
	}
	t.identifiers[id] = true
	return true
}

// MarkURL records a visited page URL, returning false if it was probably
// already visited.
func (t *Tracker) MarkURL(url string) bool {
	if t.urls.Test(url) {
		return false
	}
	t.urls.Add(url)
	return true
}

// Identifiers returns the number of distinct identifiers seen so far.
func (t *Tracker) Identifiers() int {
	return len(t.identifiers)
}
