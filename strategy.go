package regscout

import "context"

// FocusMode biases how a search strategy spends its document budget.
type FocusMode string

// Focus modes.
const (
	FocusPrecision     FocusMode = "precision"
	FocusRecency       FocusMode = "recency"
	FocusAuthority     FocusMode = "authority"
	FocusComprehensive FocusMode = "comprehensive"
)

// Strategy holds the per-search execution parameters derived once from an
// intent. It is read-only during execution and never persisted.
type Strategy struct {
	// SearchDepth is how many site sections the search may visit.
	SearchDepth int

	// MaxDocuments caps the number of accepted candidates.
	MaxDocuments int

	// EarlyStopThreshold is the score at or above which the search halts
	// immediately and returns that single candidate.
	EarlyStopThreshold float64

	// DocumentFilters are intent-specific required terms applied during
	// post-processing (ignored when they would empty the result set).
	DocumentFilters []string

	// TimeFilter keeps only recent-year documents when set to TimeLatest.
	TimeFilter TimeSensitivity

	Focus FocusMode
}

// ResultKind tells callers what shape of outcome a search produced, so the
// answer-generation layer can respond accordingly.
type ResultKind string

// Result kinds.
const (
	// ResultPerfectMatch means the early-stop threshold was met and the
	// result list contains exactly that candidate.
	ResultPerfectMatch ResultKind = "perfect_match"

	// ResultRanked means one or more candidates were accepted and ranked.
	ResultRanked ResultKind = "ranked"

	// ResultEmpty means the search ran correctly and found nothing.
	ResultEmpty ResultKind = "empty"

	// ResultInvalid means the query was rejected at intake (too short).
	ResultInvalid ResultKind = "invalid"

	// ResultBlocked means the query matched the operational denylist.
	ResultBlocked ResultKind = "blocked"
)

// SearchResult is the outcome of one search invocation.
type SearchResult struct {
	Kind      ResultKind
	Intent    *Intent
	Documents []*Document
}

// Searcher runs a full query-to-ranked-documents search.
type Searcher interface {
	// Search validates the query, plans routes, extracts and scores
	// candidates, and returns the ranked result. Rejected queries yield a
	// result with Kind ResultInvalid or ResultBlocked, not an error; the
	// error return is reserved for context cancellation.
	Search(ctx context.Context, query string) (*SearchResult, error)
}
