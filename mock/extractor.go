package mock

import (
	"context"

	"github.com/fwojciec/regscout"
)

var _ regscout.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of regscout.DocumentExtractor.
type DocumentExtractor struct {
	ExtractDocumentsFn func(ctx context.Context, html, pageURL string, intent *regscout.Intent, seen regscout.SeenTracker) ([]*regscout.Document, error)
}

func (e *DocumentExtractor) ExtractDocuments(ctx context.Context, html, pageURL string, intent *regscout.Intent, seen regscout.SeenTracker) ([]*regscout.Document, error) {
	return e.ExtractDocumentsFn(ctx, html, pageURL, intent, seen)
}

var _ regscout.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of regscout.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*regscout.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*regscout.ExtractResult, error) {
	return e.ExtractFn(html)
}
