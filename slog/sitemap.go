package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/regscout"
)

// Ensure LoggingSitemapService implements regscout.SitemapService.
var _ regscout.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   regscout.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next regscout.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverSections delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverSections(ctx context.Context, baseURL string, filter *regscout.URLFilter) (sections []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("section discovery",
			"url", baseURL,
			"count", len(sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverSections(ctx, baseURL, filter)
}
