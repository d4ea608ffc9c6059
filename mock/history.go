package mock

import (
	"context"

	"github.com/fwojciec/regscout"
)

var _ regscout.SearchHistoryService = (*SearchHistoryService)(nil)

// SearchHistoryService is a mock implementation of regscout.SearchHistoryService.
type SearchHistoryService struct {
	CreateSearchFn   func(ctx context.Context, search *regscout.Search) error
	FindSearchByIDFn func(ctx context.Context, id string) (*regscout.Search, error)
	FindSearchesFn   func(ctx context.Context, filter regscout.SearchFilter) ([]*regscout.Search, error)
	DeleteSearchFn   func(ctx context.Context, id string) error
}

func (s *SearchHistoryService) CreateSearch(ctx context.Context, search *regscout.Search) error {
	return s.CreateSearchFn(ctx, search)
}

func (s *SearchHistoryService) FindSearchByID(ctx context.Context, id string) (*regscout.Search, error) {
	return s.FindSearchByIDFn(ctx, id)
}

func (s *SearchHistoryService) FindSearches(ctx context.Context, filter regscout.SearchFilter) ([]*regscout.Search, error) {
	return s.FindSearchesFn(ctx, filter)
}

func (s *SearchHistoryService) DeleteSearch(ctx context.Context, id string) error {
	return s.DeleteSearchFn(ctx, id)
}
