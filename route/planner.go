// Package route plans which site sections a search should visit, and in
// what order. Planning is driven entirely by a site's route-category table;
// there is no per-query code.
package route

import (
	"strings"

	"github.com/fwojciec/regscout"
)

// Route limits. The intent-free variant is used for quick lookups and stays
// narrower; the intent-aware variant may add prioritized sections.
const (
	queryRouteLimit  = 3
	intentRouteLimit = 4
)

// selectionThreshold keeps every category scoring at least this fraction of
// the best category's score.
const selectionThreshold = 0.4

// Ensure Planner implements regscout.RoutePlanner at compile time.
var _ regscout.RoutePlanner = (*Planner)(nil)

// Planner scores a site's route categories against queries.
type Planner struct {
	site regscout.Site

	// recencyPaths are prepended for latest-updates intents.
	recencyPaths []string

	// typePaths are prepended when the intent detected these categories.
	typePaths map[regscout.DocumentType][]string
}

// Option configures a Planner.
type Option func(*Planner)

// WithRecencyPaths overrides the sections prepended for recency-sensitive
// intents.
func WithRecencyPaths(paths []string) Option {
	return func(p *Planner) {
		p.recencyPaths = paths
	}
}

// WithTypePaths overrides the sections prepended per detected document type.
func WithTypePaths(paths map[regscout.DocumentType][]string) Option {
	return func(p *Planner) {
		p.typePaths = paths
	}
}

// NewPlanner creates a Planner for a site.
func NewPlanner(site regscout.Site, opts ...Option) *Planner {
	p := &Planner{
		site:         site,
		recencyPaths: []string{"/notifications", "/circulars", "/press-releases"},
		typePaths: map[regscout.DocumentType][]string{
			regscout.DocTypeRegulation: {"/consolidated-gazette-notified-regulations", "/updated-regulations"},
			regscout.DocTypeCircular:   {"/circulars"},
			regscout.DocTypeGuideline:  {"/guidelines"},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PlanRoutes returns at most three section paths for a raw query.
// Override phrases win outright; otherwise categories are scored and every
// category within 40% of the best is selected in declaration order.
func (p *Planner) PlanRoutes(rawQuery string) []string {
	return p.plan(rawQuery, nil, queryRouteLimit)
}

// PlanRoutesIntent returns at most four section paths, prepending
// recency-oriented sections for latest-updates intents and type-oriented
// sections for detected regulation/circular categories.
func (p *Planner) PlanRoutesIntent(rawQuery string, intent *regscout.Intent) []string {
	return p.plan(rawQuery, intent, intentRouteLimit)
}

func (p *Planner) plan(rawQuery string, intent *regscout.Intent, limit int) []string {
	query := strings.ToLower(strings.TrimSpace(rawQuery))
	if query == "" {
		return truncate(dedupe(p.site.StartPaths), limit)
	}

	var paths []string
	if intent != nil {
		if intent.TimeSensitivity == regscout.TimeLatest {
			paths = append(paths, p.recencyPaths...)
		}
		for _, dt := range intent.DocumentTypes {
			paths = append(paths, p.typePaths[dt]...)
		}
	}

	if override := p.matchOverride(query); override != nil {
		paths = append(paths, override...)
		return truncate(dedupe(paths), limit)
	}

	paths = append(paths, p.scoreCategories(query)...)
	if len(paths) == 0 {
		paths = p.site.StartPaths
	}
	return truncate(dedupe(paths), limit)
}

// matchOverride returns the first override whose trigger occurs in the
// query, or nil.
func (p *Planner) matchOverride(query string) []string {
	for _, o := range p.site.Overrides {
		for _, trigger := range o.Triggers {
			if strings.Contains(query, trigger) {
				return o.Paths
			}
		}
	}
	return nil
}

// scoreCategories weighs each category by its matched keywords and returns
// the paths of every category within the selection threshold of the best,
// in declaration order.
func (p *Planner) scoreCategories(query string) []string {
	scores := make([]int, len(p.site.Categories))
	maxScore := 0

	for i, cat := range p.site.Categories {
		for _, kw := range cat.Keywords {
			if !strings.Contains(query, kw) {
				continue
			}
			// Longer, more specific keywords weigh more.
			weight := len(strings.Fields(kw)) * 3
			if query == kw {
				weight += 10
			}
			scores[i] += weight
		}
		if scores[i] > maxScore {
			maxScore = scores[i]
		}
	}

	if maxScore == 0 {
		return nil
	}

	cutoff := float64(maxScore) * selectionThreshold
	var paths []string
	for i, cat := range p.site.Categories {
		if scores[i] > 0 && float64(scores[i]) >= cutoff {
			paths = append(paths, cat.Paths...)
		}
	}
	return paths
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, path := range paths {
		if !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	}
	return out
}

func truncate(paths []string, limit int) []string {
	if len(paths) > limit {
		return paths[:limit]
	}
	return paths
}
