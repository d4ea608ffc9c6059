package search

import "github.com/fwojciec/regscout"

// Urgency adjustments to the early-stop threshold and document budget.
// Critical urgency trades completeness for speed; high urgency sits between
// critical and the per-intent defaults.
const (
	criticalEarlyStop = 0.90
	criticalBudget    = 15
	highEarlyStop     = 0.93
	highBudget        = 25
)

// Per-intent minimum acceptance thresholds. Specific-document searches keep
// nearly everything so a weakly-titled exact document is not lost; broad
// searches demand more signal.
var minThresholds = map[regscout.IntentType]float64{
	regscout.IntentSpecificDocument:   0.02,
	regscout.IntentLatestUpdates:      0.05,
	regscout.IntentRegulatoryGuidance: 0.03,
	regscout.IntentGeneralSearch:      0.05,
}

// minThreshold returns the acceptance floor for the intent type.
func minThreshold(t regscout.IntentType) float64 {
	if th, ok := minThresholds[t]; ok {
		return th
	}
	return 0.05
}

// deriveStrategy computes the execution parameters for one search from its
// intent. The strategy is fixed for the lifetime of the invocation.
func deriveStrategy(intent *regscout.Intent) *regscout.Strategy {
	var s *regscout.Strategy
	switch intent.Type {
	case regscout.IntentSpecificDocument:
		s = &regscout.Strategy{
			SearchDepth:        5,
			MaxDocuments:       20,
			EarlyStopThreshold: 0.95,
			Focus:              regscout.FocusPrecision,
		}
	case regscout.IntentLatestUpdates:
		s = &regscout.Strategy{
			SearchDepth:        3,
			MaxDocuments:       30,
			EarlyStopThreshold: 0.97,
			Focus:              regscout.FocusRecency,
		}
	case regscout.IntentRegulatoryGuidance:
		s = &regscout.Strategy{
			SearchDepth:        4,
			MaxDocuments:       25,
			EarlyStopThreshold: 0.95,
			Focus:              regscout.FocusAuthority,
		}
	default:
		s = &regscout.Strategy{
			SearchDepth:        3,
			MaxDocuments:       30,
			EarlyStopThreshold: 0.97,
			Focus:              regscout.FocusComprehensive,
		}
	}

	for _, dt := range intent.DocumentTypes {
		s.DocumentFilters = append(s.DocumentFilters, string(dt))
	}
	if intent.TimeSensitivity == regscout.TimeLatest {
		s.TimeFilter = regscout.TimeLatest
	}

	switch intent.Urgency {
	case regscout.UrgencyCritical:
		s.EarlyStopThreshold = criticalEarlyStop
		if s.MaxDocuments > criticalBudget {
			s.MaxDocuments = criticalBudget
		}
	case regscout.UrgencyHigh:
		s.EarlyStopThreshold = highEarlyStop
		if s.MaxDocuments > highBudget {
			s.MaxDocuments = highBudget
		}
	}
	return s
}
