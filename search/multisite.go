package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/fwojciec/regscout"
	"golang.org/x/sync/errgroup"
)

// Ensure MultiSite implements regscout.Searcher at compile time.
var _ regscout.Searcher = (*MultiSite)(nil)

// MultiSite fans a search out across several sites. The first searcher is
// the primary regulator: it runs alone first, and the remaining sites are
// only consulted when the primary found neither a perfect match nor enough
// high-relevance documents. Each site runs its own isolated invocation, so
// per-search state is never shared across sites.
type MultiSite struct {
	Searchers []regscout.Searcher

	// Concurrency bounds the secondary-site fan-out. Zero means all
	// secondary sites run at once.
	Concurrency int

	Logger *slog.Logger
}

// Search runs the primary site and, when its results are thin, the
// secondary sites concurrently. Results are merged by URL keeping the
// higher score and re-ranked.
func (m *MultiSite) Search(ctx context.Context, query string) (*regscout.SearchResult, error) {
	if len(m.Searchers) == 0 {
		return nil, regscout.Errorf(regscout.EINTERNAL, "no searchers configured")
	}

	primary, err := m.Searchers[0].Search(ctx, query)
	if err != nil {
		return nil, err
	}
	switch primary.Kind {
	case regscout.ResultInvalid, regscout.ResultBlocked, regscout.ResultPerfectMatch:
		return primary, nil
	}
	if countHighRelevance(primary.Documents) >= softStopCount {
		return primary, nil
	}

	secondary := m.Searchers[1:]
	if len(secondary) == 0 {
		return primary, nil
	}

	results := make([]*regscout.SearchResult, len(secondary))
	g, gctx := errgroup.WithContext(ctx)
	if m.Concurrency > 0 {
		g.SetLimit(m.Concurrency)
	}
	for i, s := range secondary {
		g.Go(func() error {
			res, err := s.Search(gctx, query)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := primary.Documents
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Kind == regscout.ResultPerfectMatch {
			return res, nil
		}
		merged = mergeByURL(merged, res.Documents)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	kind := regscout.ResultRanked
	if len(merged) == 0 {
		kind = regscout.ResultEmpty
	}
	return &regscout.SearchResult{
		Kind:      kind,
		Intent:    primary.Intent,
		Documents: merged,
	}, nil
}

// mergeByURL folds additions into the existing set, keeping the
// higher-scoring version of any URL present in both.
func mergeByURL(existing, additions []*regscout.Document) []*regscout.Document {
	byURL := make(map[string]int, len(existing))
	for i, d := range existing {
		byURL[d.URL] = i
	}
	for _, d := range additions {
		if i, ok := byURL[d.URL]; ok {
			if d.Score > existing[i].Score {
				existing[i] = d
			}
			continue
		}
		byURL[d.URL] = len(existing)
		existing = append(existing, d)
	}
	return existing
}

func countHighRelevance(documents []*regscout.Document) int {
	var n int
	for _, d := range documents {
		if d.Score >= highRelevanceScore {
			n++
		}
	}
	return n
}
