package regscout

import "context"

// SeenTracker deduplicates work within one search invocation. Each search
// owns its own tracker; nothing is shared across invocations, so results
// from different queries can never contaminate each other.
type SeenTracker interface {
	// MarkIdentifier records a document identifier.
	// Returns false if the identifier was already seen.
	MarkIdentifier(id string) bool

	// MarkURL records a visited page URL.
	// Returns false if the URL was (probably) already visited.
	MarkURL(url string) bool
}

// DocumentExtractor produces scored candidate documents from a fetched
// page. Implementations may fetch detail sub-pages reachable from the page
// to obtain authoritative titles and content.
type DocumentExtractor interface {
	// ExtractDocuments walks the page structure and returns candidates
	// sorted descending by score. Candidates below the extractor's quality
	// floor are discarded, not returned. The seen tracker spans the whole
	// search so each identifier is processed at most once across pages.
	ExtractDocuments(ctx context.Context, html, pageURL string, intent *Intent, seen SeenTracker) ([]*Document, error)
}

// ExtractResult holds the content extracted from a detail sub-page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, boilerplate removed.
	ContentHTML string
}

// ContentExtractor extracts main content from HTML pages. The candidate
// extractor uses it as a fallback when selector-based extraction finds
// nothing usable.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter transforms HTML content into plain markdown text.
type Converter interface {
	Convert(html string) (string, error)
}
