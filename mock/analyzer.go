package mock

import "github.com/fwojciec/regscout"

var _ regscout.QueryAnalyzer = (*QueryAnalyzer)(nil)

// QueryAnalyzer is a mock implementation of regscout.QueryAnalyzer.
type QueryAnalyzer struct {
	AnalyzeFn func(query string) *regscout.Intent
}

func (a *QueryAnalyzer) Analyze(query string) *regscout.Intent {
	return a.AnalyzeFn(query)
}
