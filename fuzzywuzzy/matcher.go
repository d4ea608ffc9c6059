// Package fuzzywuzzy provides string similarity measures backed by the
// go-fuzzywuzzy port of the Python library of the same name.
package fuzzywuzzy

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fwojciec/regscout"
)

// Ensure Matcher implements regscout.FuzzyMatcher at compile time.
var _ regscout.FuzzyMatcher = (*Matcher)(nil)

// Matcher computes token-based similarity ratios in [0,100].
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// TokenSetRatio measures overlap of the two strings' token sets.
func (m *Matcher) TokenSetRatio(a, b string) int {
	return fuzzy.TokenSetRatio(a, b)
}

// PartialRatio measures the best partial substring alignment.
func (m *Matcher) PartialRatio(a, b string) int {
	return fuzzy.PartialRatio(a, b)
}

// TokenSortRatio measures similarity ignoring token order.
func (m *Matcher) TokenSortRatio(a, b string) int {
	return fuzzy.TokenSortRatio(a, b)
}
