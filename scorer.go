package regscout

// Scorer computes a normalized relevance score for a piece of text against
// a raw query. Scores are deterministic and side-effect free; implementations
// that want diagnostics wrap the scorer with a logging decorator.
type Scorer interface {
	// Score returns a value in [0,1]. Empty text or query scores 0.
	Score(text, query string) float64
}

// IntentScorer extends Scorer with intent-aware boosts (document types
// found in the text, recency, target year, keyword density).
type IntentScorer interface {
	Scorer

	// ScoreIntent returns a value in [0,1] for the text against the
	// intent's query, keywords, and temporal hints.
	ScoreIntent(text string, intent *Intent) float64
}

// FuzzyMatcher is an optional capability providing [0,100] string
// similarity measures. When no matcher is available the scorer skips the
// fuzzy contribution entirely; the score remains valid without it.
type FuzzyMatcher interface {
	// TokenSetRatio measures overlap of the two strings' token sets.
	TokenSetRatio(a, b string) int

	// PartialRatio measures the best partial substring alignment.
	PartialRatio(a, b string) int

	// TokenSortRatio measures similarity ignoring token order.
	TokenSortRatio(a, b string) int
}
