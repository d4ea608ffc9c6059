// Package query classifies free-text queries into structured intents.
// All classification is table-driven: the vocabularies live in Config so
// tuning them is a configuration change, not a code change.
package query

import (
	"regexp"
	"strings"

	"github.com/fwojciec/regscout"
)

// yearPattern matches 4-digit years in the 2000s.
var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// Config holds the vocabularies the analyzer classifies against.
type Config struct {
	// Denylist terms mark a query blocked. This is a guard against
	// malformed operational input, not a security boundary.
	Denylist []string

	// StopWords are removed during keyword extraction.
	StopWords []string

	// DomainPhrases are multi-word terms kept as atomic keyword units.
	DomainPhrases []string

	// DocumentTypes maps each category to its trigger substrings.
	DocumentTypes map[regscout.DocumentType][]string

	// LatestTerms and HistoricalTerms drive time-sensitivity detection.
	LatestTerms     []string
	HistoricalTerms []string

	// AdminPhrases are long-form administrative phrases that mark a query
	// as targeting one specific document.
	AdminPhrases []string

	// UrgencyTerms maps urgency levels to their trigger vocabularies,
	// checked from critical down to low.
	UrgencyTerms map[regscout.Urgency][]string

	// SpecificPatterns each add confidence when present in the query.
	SpecificPatterns []string
}

// DefaultConfig returns the vocabulary tables for regulatory queries.
func DefaultConfig() Config {
	return Config{
		Denylist: []string{"delete", "drop table", "hack", "exploit", "inject", "malware", "phishing"},
		StopWords: []string{
			"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
			"has", "how", "in", "is", "it", "of", "on", "or", "that", "the",
			"to", "was", "what", "when", "where", "which", "who", "will",
			"with", "me", "my", "show", "find", "get", "give", "about",
		},
		DomainPhrases: []string{
			"regional rural bank",
			"unit linked",
			"key managerial",
			"corporate agency",
			"corporate governance",
			"expression of interest",
			"third party",
			"master circular",
			"annual report",
			"obligatory cession",
			"insurance marketing firm",
			"adjudicating officer",
		},
		DocumentTypes: map[regscout.DocumentType][]string{
			regscout.DocTypeRegulation:   {"regulation", "regulations", "regulatory"},
			regscout.DocTypeCircular:     {"circular", "circulars"},
			regscout.DocTypeGuideline:    {"guideline", "guidelines", "guidance"},
			regscout.DocTypeNotification: {"notification", "notifications", "notice", "notified"},
			regscout.DocTypeAct:          {"act", "acts", "amendment act"},
			regscout.DocTypeOrder:        {"order", "orders", "directive"},
			regscout.DocTypePolicy:       {"policy", "policies"},
			regscout.DocTypeReport:       {"report", "reports", "annual report"},
		},
		LatestTerms:     []string{"latest", "recent", "new", "newest", "current", "updated", "update"},
		HistoricalTerms: []string{"old", "older", "historical", "history", "previous", "earlier", "archive", "archived"},
		AdminPhrases: []string{
			"remuneration of directors",
			"key managerial persons",
			"expression of interest",
			"procedure for holding inquiry",
			"corporate agency matters",
			"obligatory cession",
		},
		UrgencyTerms: map[regscout.Urgency][]string{
			regscout.UrgencyCritical: {"urgent", "urgently", "immediately", "critical", "asap", "emergency"},
			regscout.UrgencyHigh:     {"quickly", "soon", "fast", "priority", "important"},
			regscout.UrgencyMedium:   {"need", "needed", "required", "looking for"},
			regscout.UrgencyLow:      {"whenever", "sometime", "eventually", "someday"},
		},
		SpecificPatterns: []string{
			"regulation", "circular", "guideline", "notification", "act",
			"rules", "irdai", "insurance", "document id",
		},
	}
}

// Ensure Analyzer implements regscout.QueryAnalyzer at compile time.
var _ regscout.QueryAnalyzer = (*Analyzer)(nil)

// Analyzer classifies queries into intents using fixed vocabulary tables.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an Analyzer with the given configuration.
func NewAnalyzer(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Analyze classifies a query. It never fails: queries that are too short
// come back with Type regscout.IntentInvalid, queries matching the denylist
// with Type regscout.IntentBlocked.
func (a *Analyzer) Analyze(rawQuery string) *regscout.Intent {
	intent := &regscout.Intent{
		Query:           rawQuery,
		TimeSensitivity: regscout.TimeAnyTime,
		Urgency:         regscout.UrgencyMedium,
	}

	trimmed := strings.TrimSpace(rawQuery)
	if len(trimmed) < 3 {
		intent.Type = regscout.IntentInvalid
		return intent
	}

	query := strings.ToLower(trimmed)
	for _, term := range a.config.Denylist {
		if strings.Contains(query, term) {
			intent.Type = regscout.IntentBlocked
			return intent
		}
	}

	intent.Keywords = a.extractKeywords(query)
	intent.DocumentTypes = a.detectDocumentTypes(query)
	intent.TimeSensitivity, intent.TargetYear = a.detectTimeSensitivity(query)
	intent.Type = a.classify(query, intent)
	intent.Urgency = a.detectUrgency(query)
	intent.Confidence = a.confidence(query, intent)

	return intent
}

// extractKeywords lower-cases the query, preserves domain phrases as atomic
// units, strips stop words, and keeps tokens longer than 2 characters.
func (a *Analyzer) extractKeywords(query string) []string {
	var keywords []string
	seen := make(map[string]bool)

	add := func(kw string) {
		if !seen[kw] {
			seen[kw] = true
			keywords = append(keywords, kw)
		}
	}

	for _, phrase := range a.config.DomainPhrases {
		if strings.Contains(query, phrase) {
			add(phrase)
		}
	}

	stop := make(map[string]bool, len(a.config.StopWords))
	for _, w := range a.config.StopWords {
		stop[w] = true
	}

	for _, token := range strings.FieldsFunc(query, isSeparator) {
		if len(token) <= 2 || stop[token] {
			continue
		}
		add(token)
	}

	return keywords
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == ';' ||
		r == ':' || r == '(' || r == ')' || r == '"' || r == '\''
}

func (a *Analyzer) detectDocumentTypes(query string) []regscout.DocumentType {
	// Fixed order so repeated analysis of the same query is stable.
	order := []regscout.DocumentType{
		regscout.DocTypeRegulation,
		regscout.DocTypeCircular,
		regscout.DocTypeGuideline,
		regscout.DocTypeNotification,
		regscout.DocTypeAct,
		regscout.DocTypeOrder,
		regscout.DocTypePolicy,
		regscout.DocTypeReport,
	}

	var types []regscout.DocumentType
	for _, dt := range order {
		for _, trigger := range a.config.DocumentTypes[dt] {
			if containsWord(query, trigger) {
				types = append(types, dt)
				break
			}
		}
	}
	return types
}

// containsWord reports whether term occurs in text on word boundaries.
// Substring matching would make "act" trigger on "contract".
func containsWord(text, term string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], term)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(term)
		startOK := start == 0 || !isWordChar(rune(text[start-1]))
		endOK := end == len(text) || !isWordChar(rune(text[end]))
		if startOK && endOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

func (a *Analyzer) detectTimeSensitivity(query string) (regscout.TimeSensitivity, string) {
	for _, term := range a.config.LatestTerms {
		if containsWord(query, term) {
			return regscout.TimeLatest, ""
		}
	}
	if m := yearPattern.FindStringSubmatch(query); m != nil {
		return regscout.TimeSpecificYear, m[1]
	}
	for _, term := range a.config.HistoricalTerms {
		if containsWord(query, term) {
			return regscout.TimeHistorical, ""
		}
	}
	return regscout.TimeAnyTime, ""
}

func (a *Analyzer) classify(query string, intent *regscout.Intent) regscout.IntentType {
	if len(intent.Keywords) > 8 || a.hasAdminPhrase(query) || strings.Contains(query, "document id") {
		return regscout.IntentSpecificDocument
	}
	if intent.TimeSensitivity == regscout.TimeLatest {
		return regscout.IntentLatestUpdates
	}
	for _, dt := range intent.DocumentTypes {
		switch dt {
		case regscout.DocTypeRegulation, regscout.DocTypeGuideline, regscout.DocTypeCircular:
			return regscout.IntentRegulatoryGuidance
		}
	}
	return regscout.IntentGeneralSearch
}

func (a *Analyzer) hasAdminPhrase(query string) bool {
	for _, phrase := range a.config.AdminPhrases {
		if strings.Contains(query, phrase) {
			return true
		}
	}
	return false
}

func (a *Analyzer) detectUrgency(query string) regscout.Urgency {
	for _, level := range []regscout.Urgency{
		regscout.UrgencyCritical,
		regscout.UrgencyHigh,
		regscout.UrgencyMedium,
		regscout.UrgencyLow,
	} {
		for _, term := range a.config.UrgencyTerms[level] {
			if strings.Contains(query, term) {
				return level
			}
		}
	}
	return regscout.UrgencyMedium
}

func (a *Analyzer) confidence(query string, intent *regscout.Intent) float64 {
	var score float64
	if len(intent.Keywords) >= 3 {
		score += 0.3
	}
	if len(intent.Keywords) >= 6 {
		score += 0.2
	}
	score += 0.1 * float64(len(intent.DocumentTypes))
	for _, pattern := range a.config.SpecificPatterns {
		if strings.Contains(query, pattern) {
			score += 0.1
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
