package mock

import (
	"context"

	"github.com/fwojciec/regscout"
)

var _ regscout.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of regscout.SitemapService.
type SitemapService struct {
	DiscoverSectionsFn func(ctx context.Context, baseURL string, filter *regscout.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverSections(ctx context.Context, baseURL string, filter *regscout.URLFilter) ([]string, error) {
	return s.DiscoverSectionsFn(ctx, baseURL, filter)
}
