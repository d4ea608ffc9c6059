package regscout

import (
	"context"
	"strings"
	"time"
)

// Candidate quality floors applied by Document.Validate.
const (
	// MinContentLength is the shortest content a candidate may carry.
	MinContentLength = 50

	// MinDocumentScore is the absolute relevance floor below which a
	// candidate is discarded regardless of how it was extracted.
	MinDocumentScore = 0.01
)

// SpamMarkers are title substrings that disqualify a candidate outright.
var SpamMarkers = []string{"click here", "buy now", "free download", "limited offer"}

// Document is an extracted, scored record representing one retrievable
// document found during a search. Candidates are created during page
// extraction, deduplicated by Identifier (or URL when no identifier is
// present) within one search, and discarded when they fail Validate.
type Document struct {
	ID       string `json:"id"`
	SearchID string `json:"searchId"`

	URL   string `json:"url"`
	Title string `json:"title"`

	// Content is the extracted body text, markdown-formatted when a
	// converter was available at extraction time.
	Content string `json:"content"`

	// SubLinks are downloadable file references found alongside the
	// document (typically PDF links on the detail page).
	SubLinks []string `json:"subLinks"`

	// SourceSection is the site section path the candidate was found under.
	SourceSection string `json:"sourceSection"`

	// Identifier is the site-assigned document id, when one exists.
	Identifier string `json:"identifier"`

	// Score is the relevance of the document to the query, in [0,1].
	// Initially computed at extraction time; the search controller
	// recomputes it with intent-aware boosts.
	Score float64 `json:"score"`

	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate applies the candidate quality floor. It returns an EINVALID
// error naming the first failing check.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if !strings.HasPrefix(d.URL, "http://") && !strings.HasPrefix(d.URL, "https://") {
		return Errorf(EINVALID, "document URL %q lacks a network scheme", d.URL)
	}
	if len(d.Content) < MinContentLength {
		return Errorf(EINVALID, "document content too short (%d chars)", len(d.Content))
	}
	title := strings.ToLower(d.Title)
	for _, marker := range SpamMarkers {
		if strings.Contains(title, marker) {
			return Errorf(EINVALID, "document title contains spam marker %q", marker)
		}
	}
	if d.Score < MinDocumentScore {
		return Errorf(EINVALID, "document score %.3f below floor", d.Score)
	}
	return nil
}

// Search represents one completed search invocation and its ranked results.
type Search struct {
	ID string `json:"id"`

	Query string `json:"query"`

	// Fingerprint is a hash of the query text, used to tag stored rows and
	// log lines so results from different queries can never be confused.
	Fingerprint string `json:"fingerprint"`

	IntentType IntentType `json:"intentType"`
	Kind       ResultKind `json:"kind"`

	Documents []*Document `json:"documents"`

	CreatedAt time.Time `json:"createdAt"`
}

// SearchFilter represents a filter for FindSearches.
type SearchFilter struct {
	ID    *string `json:"id"`
	Query *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SearchHistoryService records completed searches and their results.
type SearchHistoryService interface {
	// CreateSearch persists a search and its documents.
	CreateSearch(ctx context.Context, s *Search) error

	// FindSearchByID retrieves a search with its documents.
	// Returns ENOTFOUND if the search does not exist.
	FindSearchByID(ctx context.Context, id string) (*Search, error)

	// FindSearches retrieves searches matching the filter, newest first,
	// without their documents.
	FindSearches(ctx context.Context, filter SearchFilter) ([]*Search, error)

	// DeleteSearch permanently removes a search and its documents.
	// Returns ENOTFOUND if the search does not exist.
	DeleteSearch(ctx context.Context, id string) error
}
