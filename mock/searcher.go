package mock

import (
	"context"

	"github.com/fwojciec/regscout"
)

var _ regscout.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of regscout.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) (*regscout.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string) (*regscout.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
