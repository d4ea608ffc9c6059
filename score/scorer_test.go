package score_test

import (
	"testing"

	"github.com/fwojciec/regscout"
	"github.com/fwojciec/regscout/mock"
	"github.com/fwojciec/regscout/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_Score_returns_zero_for_empty_inputs(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	assert.Equal(t, 0.0, s.Score("", "remuneration guidelines"))
	assert.Equal(t, 0.0, s.Score("Guidelines on Remuneration", ""))
	assert.Equal(t, 0.0, s.Score("   ", "   "))
}

func TestScorer_Score_stays_within_bounds(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	cases := []struct {
		text, query string
	}{
		{"Guidelines on Remuneration of Directors and Key Managerial Persons of Insurers", "guidelines on remuneration of directors and key managerial persons of insurers"},
		{"completely unrelated text about gardening", "remuneration guidelines 2023"},
		{"circular notification regulation act rules guideline tender annulment", "circular notification regulation act rules guideline tender annulment"},
		{"x", "y"},
	}
	for _, tc := range cases {
		got := s.Score(tc.text, tc.query)
		assert.GreaterOrEqual(t, got, 0.0, "text=%q", tc.text)
		assert.LessOrEqual(t, got, 1.0, "text=%q", tc.text)
	}
}

func TestScorer_Score_is_deterministic(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	text := "IRDAI Circular on Remuneration of Non-Executive Directors 2023"
	query := "remuneration of directors circular 2023"
	first := s.Score(text, query)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Score(text, query))
	}
}

func TestScorer_Score_exact_title_match_scores_near_perfect(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	query := "guidelines on remuneration of directors and key managerial persons of insurers"
	text := "Guidelines on Remuneration of Directors and Key Managerial Persons of Insurers"

	got := s.Score(text, query)
	assert.GreaterOrEqual(t, got, 0.90)
}

func TestScorer_Score_exact_match_outranks_partial_match(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	query := "remuneration of directors guidelines"
	exact := s.Score("Guidelines on Remuneration of Directors", query)
	partial := s.Score("Remuneration disclosures in annual reports", query)

	assert.Greater(t, exact, partial)
}

func TestScorer_Score_awards_category_cooccurrence(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	query := "circular on remuneration"
	with := s.Score("Circular regarding remuneration of whole-time members", query)
	without := s.Score("Press release regarding pay of whole-time members", query)

	assert.Greater(t, with, without)
}

func TestScorer_Score_awards_matching_years(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	query := "motor insurance premium rates 2023"
	matching := s.Score("Notification on motor insurance premium rates 2023", query)
	stale := s.Score("Notification on motor insurance premium rates 2019", query)

	assert.Greater(t, matching, stale)
}

func TestScorer_Score_penalizes_generic_navigation_text(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	query := "photo"
	got := s.Score("photo gallery", query)
	assert.GreaterOrEqual(t, got, 0.0)

	// A penalty never produces a negative score.
	assert.GreaterOrEqual(t, s.Score("media gallery photo gallery about us contact home", "zzz"), 0.0)
}

func TestScorer_Score_uses_fuzzy_matcher_when_present(t *testing.T) {
	t.Parallel()

	fuzzy := &mock.FuzzyMatcher{
		TokenSetRatioFn:  func(a, b string) int { return 100 },
		PartialRatioFn:   func(a, b string) int { return 100 },
		TokenSortRatioFn: func(a, b string) int { return 100 },
	}
	plain := score.NewScorer(score.DefaultConfig())
	boosted := score.NewScorer(score.DefaultConfig(), score.WithFuzzyMatcher(fuzzy))

	// Dissimilar strings where only fuzzy contributes.
	query := "solvency margin requirements"
	text := "unrelated announcement text"
	assert.Greater(t, boosted.Score(text, query), plain.Score(text, query))
}

func TestScorer_ScoreIntent_boosts_detected_document_types(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	intent := &regscout.Intent{
		Query:         "health insurance circular",
		Keywords:      []string{"health", "insurance", "circular"},
		DocumentTypes: []regscout.DocumentType{regscout.DocTypeCircular},
	}
	typed := s.ScoreIntent("Circular on health insurance products", intent)
	untyped := s.ScoreIntent("Order on health insurance products", intent)

	assert.Greater(t, typed, untyped)
}

func TestScorer_ScoreIntent_boosts_target_year(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	intent := &regscout.Intent{
		Query:           "surety bonds",
		Keywords:        []string{"surety", "bonds"},
		TimeSensitivity: regscout.TimeSpecificYear,
		TargetYear:      "2022",
	}
	dated := s.ScoreIntent("Surety bonds guidelines 2022", intent)
	undated := s.ScoreIntent("Surety bonds guidelines", intent)

	assert.Greater(t, dated, undated)
}

func TestScorer_ScoreIntent_clamps_to_one(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	intent := &regscout.Intent{
		Query:    "guidelines on remuneration of directors and key managerial persons of insurers",
		Keywords: []string{"guidelines", "remuneration", "directors", "key managerial persons", "insurers"},
		DocumentTypes: []regscout.DocumentType{
			regscout.DocTypeGuideline,
		},
		TimeSensitivity: regscout.TimeSpecificYear,
		TargetYear:      "2023",
	}
	got := s.ScoreIntent("Guidelines on Remuneration of Directors and Key Managerial Persons of Insurers 2023", intent)
	require.LessOrEqual(t, got, 1.0)
	assert.GreaterOrEqual(t, got, 0.90)
}

func TestScorer_ScoreIntent_nil_intent_scores_zero(t *testing.T) {
	t.Parallel()
	s := score.NewScorer(score.DefaultConfig())

	assert.Equal(t, 0.0, s.ScoreIntent("any text", nil))
}
