package regscout

// RouteCategory maps trigger keywords to the site section paths that should
// be searched when a query matches them. Categories are scored against the
// query by the route planner; declaration order breaks ties.
type RouteCategory struct {
	Name     string
	Keywords []string
	Paths    []string
}

// RouteOverride short-circuits planning: when any trigger phrase occurs in
// the query, the override's paths are returned immediately.
type RouteOverride struct {
	Name     string
	Triggers []string
	Paths    []string
}

// RoutePlanner maps a query (or intent) to an ordered list of site section
// paths to visit.
type RoutePlanner interface {
	// PlanRoutes returns at most three section paths for a raw query.
	PlanRoutes(query string) []string

	// PlanRoutesIntent returns at most four section paths, additionally
	// prioritizing recency- and document-type-oriented sections indicated
	// by the intent.
	PlanRoutesIntent(query string, intent *Intent) []string
}
