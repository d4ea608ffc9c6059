package slog

import (
	"log/slog"

	"github.com/fwojciec/regscout"
)

// Ensure LoggingScorer implements regscout.IntentScorer.
var _ regscout.IntentScorer = (*LoggingScorer)(nil)

// LoggingScorer wraps an IntentScorer with debug logging. Scoring runs once
// per candidate document, so it logs at debug level to keep normal runs quiet.
type LoggingScorer struct {
	next   regscout.IntentScorer
	logger *slog.Logger
}

// NewLoggingScorer creates a new LoggingScorer.
func NewLoggingScorer(next regscout.IntentScorer, logger *slog.Logger) *LoggingScorer {
	return &LoggingScorer{next: next, logger: logger}
}

// Score delegates to the wrapped scorer and logs the result.
func (s *LoggingScorer) Score(text, query string) float64 {
	score := s.next.Score(text, query)
	s.logger.Debug("score",
		"query", query,
		"score", score,
	)
	return score
}

// ScoreIntent delegates to the wrapped scorer and logs the result.
func (s *LoggingScorer) ScoreIntent(text string, intent *regscout.Intent) float64 {
	score := s.next.ScoreIntent(text, intent)
	var query string
	if intent != nil {
		query = intent.Query
	}
	s.logger.Debug("score intent",
		"query", query,
		"score", score,
	)
	return score
}
