// Package search orchestrates query-driven document retrieval. It turns a
// free-text query into an intent, derives an execution strategy, walks the
// planned site routes in order, and returns ranked candidate documents,
// short-circuiting the moment a near-perfect match appears.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/regscout"
)

// highRelevanceScore marks a candidate as high relevance; three such
// candidates allow an urgent search to stop visiting further routes.
const (
	highRelevanceScore = 0.8
	softStopCount      = 3
)

// control is the outcome of processing one candidate or route, propagated
// up the loops so the short-circuit paths stay explicit.
type control int

const (
	keepGoing control = iota
	stopPerfect
	stopSoft
	stopBudget
)

// Ensure Engine implements regscout.Searcher at compile time.
var _ regscout.Searcher = (*Engine)(nil)

// Engine runs searches against a single site. Routes are visited strictly
// sequentially because each acceptance or early-stop decision determines
// whether the next fetch happens at all. An Engine is safe for concurrent
// use; all per-search state lives in the search invocation.
type Engine struct {
	Site      *regscout.Site
	Analyzer  regscout.QueryAnalyzer
	Planner   regscout.RoutePlanner
	Fetcher   regscout.Fetcher
	Extractor regscout.DocumentExtractor
	Scorer    regscout.IntentScorer

	// Limiter, when set, paces fetches per domain.
	Limiter regscout.DomainLimiter

	// Sitemaps, when set, supplies section paths for sites whose route
	// tables yield nothing for a query.
	Sitemaps regscout.SitemapService

	// Logger, when set, records route failures and search milestones.
	Logger *slog.Logger

	// RetryDelays overrides the fetch retry backoff. Nil means the default
	// 1s/2s/4s; an empty slice disables retries.
	RetryDelays []time.Duration
}

// searchState accumulates one invocation's results. It is owned exclusively
// by a single Search call and discarded afterwards.
type searchState struct {
	intent   *regscout.Intent
	strategy *regscout.Strategy
	tracker  *Tracker

	accepted      []*regscout.Document
	highRelevance int
	perfect       *regscout.Document
}

// Search runs the full pipeline for one query. Rejected queries yield a
// result with Kind ResultInvalid or ResultBlocked without any network
// access; the error return is reserved for context cancellation.
func (e *Engine) Search(ctx context.Context, query string) (*regscout.SearchResult, error) {
	intent := e.Analyzer.Analyze(query)
	logger := e.logger().With("query_fp", Fingerprint(query), "site", e.Site.Name)

	switch intent.Type {
	case regscout.IntentInvalid:
		logger.Info("query rejected", "reason", "invalid")
		return &regscout.SearchResult{Kind: regscout.ResultInvalid, Intent: intent}, nil
	case regscout.IntentBlocked:
		logger.Info("query rejected", "reason", "blocked")
		return &regscout.SearchResult{Kind: regscout.ResultBlocked, Intent: intent}, nil
	}

	state := &searchState{
		intent:   intent,
		strategy: deriveStrategy(intent),
		tracker:  NewTracker(),
	}

	routes := e.Planner.PlanRoutesIntent(query, intent)
	if len(routes) == 0 && e.Sitemaps != nil {
		sections, err := e.Sitemaps.DiscoverSections(ctx, e.Site.BaseURL, nil)
		if err != nil {
			logger.Warn("section discovery failed", "err", err)
		} else {
			routes = sections
			logger.Info("routes from sitemap", "sections", len(sections))
		}
	}
	if len(routes) > state.strategy.SearchDepth {
		routes = routes[:state.strategy.SearchDepth]
	}
	logger.Info("search started",
		"intent", intent.Type,
		"urgency", intent.Urgency,
		"routes", len(routes),
		"early_stop", state.strategy.EarlyStopThreshold,
	)

	for _, route := range routes {
		ctl, err := e.processRoute(ctx, logger, route, state)
		if err != nil {
			return nil, err
		}
		if ctl != keepGoing {
			break
		}
	}

	if state.perfect != nil {
		logger.Info("perfect match", "title", state.perfect.Title, "score", state.perfect.Score)
		return &regscout.SearchResult{
			Kind:      regscout.ResultPerfectMatch,
			Intent:    intent,
			Documents: []*regscout.Document{state.perfect},
		}, nil
	}

	documents := postProcess(state.accepted, state.strategy)
	kind := regscout.ResultRanked
	if len(documents) == 0 {
		kind = regscout.ResultEmpty
	}
	logger.Info("search finished", "kind", kind, "documents", len(documents))
	return &regscout.SearchResult{
		Kind:      kind,
		Intent:    intent,
		Documents: documents,
	}, nil
}

// processRoute fetches one route's page, extracts its candidates, and folds
// them into the running result set. Fetch and extraction failures are
// logged and skipped; only context cancellation aborts the search.
func (e *Engine) processRoute(ctx context.Context, logger *slog.Logger, route string, state *searchState) (control, error) {
	pageURL, err := e.routeURL(route)
	if err != nil {
		logger.Warn("skipping route", "route", route, "err", err)
		return keepGoing, nil
	}
	if !state.tracker.MarkURL(pageURL) {
		return keepGoing, nil
	}

	if e.Limiter != nil {
		u, _ := url.Parse(pageURL)
		if err := e.Limiter.Wait(ctx, u.Host); err != nil {
			return keepGoing, err
		}
	}

	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := fetchWithRetry(ctx, pageURL, e.Fetcher.Fetch, delays)
	if err != nil {
		if ctx.Err() != nil {
			return keepGoing, ctx.Err()
		}
		logger.Warn("route fetch failed", "url", pageURL, "err", err)
		return keepGoing, nil
	}

	candidates, err := e.Extractor.ExtractDocuments(ctx, html, pageURL, state.intent, state.tracker)
	if err != nil {
		logger.Warn("route extraction failed", "url", pageURL, "err", err)
		return keepGoing, nil
	}

	for _, candidate := range candidates {
		if ctl := e.processCandidate(candidate, state); ctl != keepGoing {
			return ctl, nil
		}
	}
	return keepGoing, nil
}

// processCandidate validates, rescores, and classifies one candidate. The
// returned control tells the route loop whether to keep going.
func (e *Engine) processCandidate(candidate *regscout.Document, state *searchState) control {
	if err := candidate.Validate(); err != nil {
		return keepGoing
	}

	candidate.Score = e.Scorer.ScoreIntent(candidate.Title+" "+candidate.Content, state.intent)

	if candidate.Score >= state.strategy.EarlyStopThreshold {
		state.perfect = candidate
		return stopPerfect
	}
	if candidate.Score < minThreshold(state.intent.Type) {
		return keepGoing
	}

	state.accepted = append(state.accepted, candidate)
	if candidate.Score >= highRelevanceScore {
		state.highRelevance++
	}

	if len(state.accepted) >= state.strategy.MaxDocuments {
		return stopBudget
	}
	urgent := state.intent.Urgency == regscout.UrgencyHigh || state.intent.Urgency == regscout.UrgencyCritical
	if urgent && state.highRelevance >= softStopCount {
		return stopSoft
	}
	return keepGoing
}

// postProcess ranks the accepted candidates and applies the strategy's
// filters. A filter that would empty a non-empty result set is ignored; the
// budget truncation always applies.
func postProcess(documents []*regscout.Document, strategy *regscout.Strategy) []*regscout.Document {
	sort.SliceStable(documents, func(i, j int) bool {
		return documents[i].Score > documents[j].Score
	})

	if len(strategy.DocumentFilters) > 0 {
		filtered := filterDocuments(documents, func(d *regscout.Document) bool {
			text := strings.ToLower(d.Title + " " + d.Content)
			for _, term := range strategy.DocumentFilters {
				if strings.Contains(text, term) {
					return true
				}
			}
			return false
		})
		if len(filtered) > 0 {
			documents = filtered
		}
	}

	if strategy.TimeFilter == regscout.TimeLatest {
		years := recentYears()
		filtered := filterDocuments(documents, func(d *regscout.Document) bool {
			text := d.Title + " " + d.Content
			for _, year := range years {
				if strings.Contains(text, year) {
					return true
				}
			}
			return false
		})
		if len(filtered) > 0 {
			documents = filtered
		}
	}

	if len(documents) > strategy.MaxDocuments {
		documents = documents[:strategy.MaxDocuments]
	}
	return documents
}

func filterDocuments(documents []*regscout.Document, keep func(*regscout.Document) bool) []*regscout.Document {
	var out []*regscout.Document
	for _, d := range documents {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// recentYears returns the current and two preceding years as strings.
func recentYears() []string {
	year := time.Now().Year()
	return []string{
		strconv.Itoa(year),
		strconv.Itoa(year - 1),
		strconv.Itoa(year - 2),
	}
}

// routeURL resolves a route path against the site's base URL.
func (e *Engine) routeURL(route string) (string, error) {
	base, err := url.Parse(e.Site.BaseURL)
	if err != nil {
		return "", regscout.Errorf(regscout.EINVALID, "invalid base URL %q: %v", e.Site.BaseURL, err)
	}
	ref, err := url.Parse(route)
	if err != nil {
		return "", regscout.Errorf(regscout.EINVALID, "invalid route %q: %v", route, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Fingerprint returns a short stable hash of the query text, used to tag
// log lines and stored history rows so results from different queries can
// never be confused.
func Fingerprint(query string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.ToLower(strings.TrimSpace(query))))
}
