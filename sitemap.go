package regscout

import (
	"context"
	"regexp"
)

// URLFilter restricts discovered URLs to those matching any include pattern.
// An empty filter matches everything.
type URLFilter struct {
	Include []*regexp.Regexp
}

// Match reports whether the URL passes the filter. A nil or empty filter
// matches everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil || len(f.Include) == 0 {
		return true
	}
	for _, re := range f.Include {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// SitemapService discovers candidate section paths from a site's sitemaps.
// It backs the planner's fallback routes for sites whose category tables
// are sparse, and the CLI's discover command.
type SitemapService interface {
	// DiscoverSections returns unique section paths found in the site's
	// sitemaps, most frequently linked first. Returns an empty slice (not
	// nil) when the site publishes no sitemap.
	DiscoverSections(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}
