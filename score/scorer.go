// Package score computes normalized relevance scores for text against
// queries. The scoring is an additive point accumulation normalized by a
// fixed ceiling; the constants are empirically tuned and live in Config so
// recalibration is a configuration change.
package score

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/regscout"
)

// yearPattern matches 4-digit years in the 2000s.
var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// Category is one administrative document type whose co-occurrence in both
// query and text earns a boost.
type Category struct {
	Name  string
	Terms []string
	Boost float64
}

// Config holds the scoring weights. The relative ordering matters more than
// the absolute magnitudes: exact > long-phrase > title-overlap > type-boost
// > fuzzy > word-match.
type Config struct {
	// ExactPhrase is awarded when the full query occurs in the text.
	ExactPhrase float64

	// SubPhrase is awarded per contiguous 4-word query sub-phrase found in
	// the text, for queries longer than 5 words.
	SubPhrase float64

	// Title-word overlap tiers (fraction of query words longer than 3
	// characters present as whole words in the text).
	TitleHigh, TitleGood, TitleMedium float64

	// Categories is the administrative co-occurrence boost table.
	Categories []Category

	// YearMatch is awarded per year present in both query and text.
	YearMatch float64

	// Fuzzy measure weights. Each measure contributes its normalized
	// [0,1] value times its weight.
	FuzzyTokenSet, FuzzyPartial, FuzzyTokenSort float64

	// WordMatch is awarded per query word found in the text; the coverage
	// bonuses apply at 80% and 60% of query words matched.
	WordMatch, CoverageHigh, CoverageMedium float64

	// GenericPenalties subtract PenaltyWeight each, floored at zero.
	GenericPenalties []string
	PenaltyWeight    float64

	// Ceiling divides the accumulated score before clamping to [0,1].
	Ceiling float64

	// Intent-aware boosts.
	TypeBoost       float64 // per detected document type found in the text
	RecentYearBoost float64 // per recent year present for latest intents
	TargetYearBoost float64 // when the intent's target year appears
	DensityWeight   float64 // keyword density contribution
}

// DefaultConfig returns the tuned scoring weights.
func DefaultConfig() Config {
	return Config{
		ExactPhrase: 150.0,
		SubPhrase:   60.0,
		TitleHigh:   100.0,
		TitleGood:   70.0,
		TitleMedium: 40.0,
		Categories: []Category{
			{Name: "annulment", Terms: []string{"annulment", "cancel", "cancelled", "withdraw", "withdrawn"}, Boost: 40.0},
			{Name: "expression_of_interest", Terms: []string{"expression of interest", "eoi", "empanelment", "empanel"}, Boost: 35.0},
			{Name: "advertising", Terms: []string{"advertising", "advertisement", "marketing", "publicity"}, Boost: 30.0},
			{Name: "agencies", Terms: []string{"agencies", "agency", "firms", "companies"}, Boost: 25.0},
			{Name: "tender", Terms: []string{"tender", "bid", "proposal", "procurement"}, Boost: 30.0},
			{Name: "guidelines", Terms: []string{"guideline", "guidelines", "दिशानिर्देश"}, Boost: 30.0},
			{Name: "circular", Terms: []string{"circular", "परिपत्र"}, Boost: 25.0},
			{Name: "notification", Terms: []string{"notification", "notice", "announcement"}, Boost: 25.0},
			{Name: "remuneration", Terms: []string{"remuneration", "पारिश्रमिक"}, Boost: 20.0},
			{Name: "directors", Terms: []string{"directors", "निदेशक"}, Boost: 15.0},
			{Name: "key_managerial", Terms: []string{"key managerial", "प्रमुख प्रबंधकीय"}, Boost: 15.0},
		},
		YearMatch:        25.0,
		FuzzyTokenSet:    8.0,
		FuzzyPartial:     6.0,
		FuzzyTokenSort:   5.0,
		WordMatch:        3.0,
		CoverageHigh:     15.0,
		CoverageMedium:   8.0,
		GenericPenalties: []string{"media gallery", "photo gallery", "about us", "contact", "home"},
		PenaltyWeight:    5.0,
		Ceiling:          180.0,
		TypeBoost:        0.15,
		RecentYearBoost:  0.1,
		TargetYearBoost:  0.2,
		DensityWeight:    0.1,
	}
}

// Ensure Scorer implements regscout.IntentScorer at compile time.
var _ regscout.IntentScorer = (*Scorer)(nil)

// Scorer computes relevance scores. It is stateless and safe for concurrent
// use; the optional fuzzy matcher adds graded similarity when present.
type Scorer struct {
	config Config
	fuzzy  regscout.FuzzyMatcher

	// recentYears are the years treated as "recent" for latest-updates
	// intents, fixed at construction so scoring stays deterministic.
	recentYears []string
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithFuzzyMatcher injects the optional fuzzy similarity capability.
// Without it the fuzzy contribution is skipped; scores remain valid.
func WithFuzzyMatcher(m regscout.FuzzyMatcher) Option {
	return func(s *Scorer) {
		s.fuzzy = m
	}
}

// NewScorer creates a Scorer with the given configuration.
func NewScorer(config Config, opts ...Option) *Scorer {
	year := time.Now().Year()
	s := &Scorer{
		config: config,
		recentYears: []string{
			strconv.Itoa(year),
			strconv.Itoa(year - 1),
			strconv.Itoa(year - 2),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes a normalized [0,1] relevance score for text against a raw
// query. Empty text or query scores 0.
func (s *Scorer) Score(text, query string) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	text = strings.ToLower(strings.TrimSpace(text))
	if query == "" || text == "" {
		return 0.0
	}

	var points float64

	// Exact phrase match dominates: regulatory document titles are the
	// strongest relevance signal.
	if strings.Contains(text, query) {
		points += s.config.ExactPhrase
	}

	queryWords := strings.Fields(query)

	// Long administrative titles rarely match verbatim; substantial
	// 4-word sub-phrases are the next best signal.
	if len(queryWords) > 5 {
		for i := 0; i+4 <= len(queryWords); i++ {
			phrase := strings.Join(queryWords[i:i+4], " ")
			if strings.Contains(text, phrase) {
				points += s.config.SubPhrase
			}
		}
	}

	points += s.titleOverlap(queryWords, text)
	points += s.categoryBoosts(query, text)
	points += s.yearMatches(query, text)
	points += s.fuzzyPoints(query, text)
	points += s.wordMatches(queryWords, text)

	for _, penalty := range s.config.GenericPenalties {
		if strings.Contains(text, penalty) {
			points -= s.config.PenaltyWeight
			if points < 0 {
				points = 0
			}
		}
	}

	normalized := points / s.config.Ceiling
	if normalized > 1.0 {
		normalized = 1.0
	}
	return normalized
}

// ScoreIntent computes the intent-aware score: the base score plus boosts
// for document types found in the text, recency, the target year, and
// keyword density. The result is re-clamped to [0,1].
func (s *Scorer) ScoreIntent(text string, intent *regscout.Intent) float64 {
	if intent == nil {
		return 0.0
	}
	base := s.Score(text, intent.Query)
	if base == 0.0 && strings.TrimSpace(text) == "" {
		return 0.0
	}

	lower := strings.ToLower(text)

	for _, dt := range intent.DocumentTypes {
		if strings.Contains(lower, string(dt)) {
			base += s.config.TypeBoost
		}
	}

	if intent.TimeSensitivity == regscout.TimeLatest {
		for _, year := range s.recentYears {
			if strings.Contains(lower, year) {
				base += s.config.RecentYearBoost
			}
		}
	}

	if intent.TargetYear != "" && strings.Contains(lower, intent.TargetYear) {
		base += s.config.TargetYearBoost
	}

	if len(intent.Keywords) > 0 {
		matched := 0
		for _, kw := range intent.Keywords {
			if strings.Contains(lower, kw) {
				matched++
			}
		}
		base += float64(matched) / float64(len(intent.Keywords)) * s.config.DensityWeight
	}

	if base > 1.0 {
		base = 1.0
	}
	return base
}

// titleOverlap awards the highest matching tier for the fraction of long
// query words present as whole words in the text.
func (s *Scorer) titleOverlap(queryWords []string, text string) float64 {
	textWords := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		if len(w) > 3 {
			textWords[w] = true
		}
	}

	var longWords, matched int
	for _, w := range queryWords {
		if len(w) <= 3 {
			continue
		}
		longWords++
		if textWords[w] {
			matched++
		}
	}
	if longWords == 0 {
		return 0.0
	}

	switch ratio := float64(matched) / float64(longWords); {
	case ratio >= 0.9:
		return s.config.TitleHigh
	case ratio >= 0.7:
		return s.config.TitleGood
	case ratio >= 0.5:
		return s.config.TitleMedium
	}
	return 0.0
}

// categoryBoosts awards each category whose terms occur in both the query
// and the text.
func (s *Scorer) categoryBoosts(query, text string) float64 {
	var points float64
	for _, cat := range s.config.Categories {
		if containsAny(query, cat.Terms) && containsAny(text, cat.Terms) {
			points += cat.Boost
		}
	}
	return points
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// yearMatches awards each query year also present in the text.
func (s *Scorer) yearMatches(query, text string) float64 {
	textYears := make(map[string]bool)
	for _, m := range yearPattern.FindAllString(text, -1) {
		textYears[m] = true
	}

	var points float64
	for _, year := range yearPattern.FindAllString(query, -1) {
		if textYears[year] {
			points += s.config.YearMatch
		}
	}
	return points
}

// fuzzyPoints adds the weighted fuzzy similarity measures when a matcher
// was injected; without one this contributes nothing.
func (s *Scorer) fuzzyPoints(query, text string) float64 {
	if s.fuzzy == nil {
		return 0.0
	}
	var points float64
	points += float64(s.fuzzy.TokenSetRatio(query, text)) / 100.0 * s.config.FuzzyTokenSet
	points += float64(s.fuzzy.PartialRatio(query, text)) / 100.0 * s.config.FuzzyPartial
	points += float64(s.fuzzy.TokenSortRatio(query, text)) / 100.0 * s.config.FuzzyTokenSort
	return points
}

// wordMatches awards individual query words found anywhere in the text,
// plus coverage bonuses at 80% and 60% of words matched.
func (s *Scorer) wordMatches(queryWords []string, text string) float64 {
	var candidates, matched int
	var points float64
	for _, w := range queryWords {
		if len(w) <= 2 {
			continue
		}
		candidates++
		if strings.Contains(text, w) {
			matched++
			points += s.config.WordMatch
		}
	}
	if candidates == 0 {
		return 0.0
	}

	switch ratio := float64(matched) / float64(candidates); {
	case ratio >= 0.8:
		points += s.config.CoverageHigh
	case ratio >= 0.6:
		points += s.config.CoverageMedium
	}
	return points
}
