package mock

import "github.com/fwojciec/regscout"

var _ regscout.RoutePlanner = (*RoutePlanner)(nil)

// RoutePlanner is a mock implementation of regscout.RoutePlanner.
type RoutePlanner struct {
	PlanRoutesFn       func(query string) []string
	PlanRoutesIntentFn func(query string, intent *regscout.Intent) []string
}

func (p *RoutePlanner) PlanRoutes(query string) []string {
	return p.PlanRoutesFn(query)
}

func (p *RoutePlanner) PlanRoutesIntent(query string, intent *regscout.Intent) []string {
	return p.PlanRoutesIntentFn(query, intent)
}
