package mock

import "github.com/fwojciec/regscout"

var _ regscout.IntentScorer = (*IntentScorer)(nil)

// IntentScorer is a mock implementation of regscout.IntentScorer.
type IntentScorer struct {
	ScoreFn       func(text, query string) float64
	ScoreIntentFn func(text string, intent *regscout.Intent) float64
}

func (s *IntentScorer) Score(text, query string) float64 {
	return s.ScoreFn(text, query)
}

func (s *IntentScorer) ScoreIntent(text string, intent *regscout.Intent) float64 {
	return s.ScoreIntentFn(text, intent)
}

var _ regscout.FuzzyMatcher = (*FuzzyMatcher)(nil)

// FuzzyMatcher is a mock implementation of regscout.FuzzyMatcher.
type FuzzyMatcher struct {
	TokenSetRatioFn  func(a, b string) int
	PartialRatioFn   func(a, b string) int
	TokenSortRatioFn func(a, b string) int
}

func (m *FuzzyMatcher) TokenSetRatio(a, b string) int {
	return m.TokenSetRatioFn(a, b)
}

func (m *FuzzyMatcher) PartialRatio(a, b string) int {
	return m.PartialRatioFn(a, b)
}

func (m *FuzzyMatcher) TokenSortRatio(a, b string) int {
	return m.TokenSortRatioFn(a, b)
}
