package regscout

// IntentType classifies what kind of answer a query is after.
type IntentType string

// Intent types produced by the query analyzer.
const (
	IntentSpecificDocument   IntentType = "specific_document"
	IntentLatestUpdates      IntentType = "latest_updates"
	IntentRegulatoryGuidance IntentType = "regulatory_guidance"
	IntentGeneralSearch      IntentType = "general_search"
	IntentInvalid            IntentType = "invalid"
	IntentBlocked            IntentType = "blocked"
)

// Valid reports whether the intent type is one a well-formed query can
// produce (invalid and blocked mark rejected queries).
func (t IntentType) Valid() bool {
	switch t {
	case IntentSpecificDocument, IntentLatestUpdates, IntentRegulatoryGuidance, IntentGeneralSearch:
		return true
	}
	return false
}

// DocumentType is a regulatory document category detected in a query.
type DocumentType string

// Document type categories recognized by the analyzer.
const (
	DocTypeRegulation   DocumentType = "regulation"
	DocTypeCircular     DocumentType = "circular"
	DocTypeGuideline    DocumentType = "guideline"
	DocTypeNotification DocumentType = "notification"
	DocTypeAct          DocumentType = "act"
	DocTypeOrder        DocumentType = "order"
	DocTypePolicy       DocumentType = "policy"
	DocTypeReport       DocumentType = "report"
)

// TimeSensitivity describes the temporal scope of a query.
type TimeSensitivity string

// Time sensitivity levels, detected in priority order.
const (
	TimeLatest       TimeSensitivity = "latest"
	TimeSpecificYear TimeSensitivity = "specific_year"
	TimeHistorical   TimeSensitivity = "historical"
	TimeAnyTime      TimeSensitivity = "any_time"
)

// Urgency describes how aggressively a search should be cut short.
type Urgency string

// Urgency levels.
const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Intent is the structured interpretation of a free-text query.
// It is created once per query and immutable afterwards; the route planner
// and relevance scorer read it for the duration of one search.
type Intent struct {
	// Query is the raw query text the intent was derived from.
	Query string

	Type          IntentType
	Keywords      []string
	DocumentTypes []DocumentType

	TimeSensitivity TimeSensitivity
	// TargetYear is set when TimeSensitivity is TimeSpecificYear.
	TargetYear string

	Urgency Urgency

	// Confidence reflects how much signal was found in the query, in [0,1].
	Confidence float64
}

// HasDocumentType reports whether the intent detected the given category.
func (in *Intent) HasDocumentType(t DocumentType) bool {
	for _, dt := range in.DocumentTypes {
		if dt == t {
			return true
		}
	}
	return false
}

// QueryAnalyzer classifies free-text queries into intents.
type QueryAnalyzer interface {
	// Analyze never fails: rejected queries come back with Type set to
	// IntentInvalid or IntentBlocked.
	Analyze(query string) *Intent
}
