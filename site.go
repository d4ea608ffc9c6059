package regscout

// Selectors are the CSS selector sets used to pull structure out of a
// site's pages. Comma-separated alternatives are tried in order.
type Selectors struct {
	// TableRows selects the row elements of document listing tables.
	TableRows string

	// DocumentLinks selects anchors that point at documents directly.
	DocumentLinks string

	// ContentArea selects the main content container of a page, first
	// match wins.
	ContentArea string

	// TitleMarkers selects elements likely to hold a document's title on
	// a detail sub-page, in preference order.
	TitleMarkers string
}

// Site describes one institutional website: where it lives, which sections
// to search, and how to read its markup. All of this is configuration, not
// business logic; tuning a site requires no code change.
type Site struct {
	Name    string
	BaseURL string

	// Categories drive keyword-to-route scoring in the route planner.
	Categories []RouteCategory

	// Overrides are exact-phrase route shortcuts checked before scoring.
	Overrides []RouteOverride

	// StartPaths are the fallback sections when no category scores.
	StartPaths []string

	// SearchPaths are the sections searched on sites without category
	// tables (the simpler, non-primary sites).
	SearchPaths []string

	Selectors Selectors

	// DetailLinkPattern is a regular expression matching document detail
	// links; its first capture group is the site-assigned identifier.
	DetailLinkPattern string

	// Keywords describe the site's overall subject matter; used when
	// deciding whether a site is worth visiting for a query at all.
	Keywords []string

	SourceType string
}

// DefaultRegulatorSite returns the configuration for the primary
// regulator portal, with the full routing table.
func DefaultRegulatorSite() Site {
	return Site{
		Name:    "irdai",
		BaseURL: "https://irdai.gov.in",
		Categories: []RouteCategory{
			{
				Name:     "rrb_amalgamation",
				Keywords: []string{"rrb", "regional rural bank", "amalgamat", "corporate agency", "may 2025"},
				Paths:    []string{"/consolidated-gazette-notified-regulations", "/circulars", "/notifications"},
			},
			{
				Name:     "ulip",
				Keywords: []string{"ulip", "unit linked", "unit-linked", "investment plan"},
				Paths:    []string{"/consolidated-gazette-notified-regulations", "/guidelines", "/circulars"},
			},
			{
				Name:     "acts",
				Keywords: []string{"act", "amendment act", "insurance laws", "insurance act", "irdai act"},
				Paths:    []string{"/acts", "/insurance-acts", "/rules", "/consolidated-gazette-notified-regulations"},
			},
			{
				Name:     "rules",
				Keywords: []string{"rules", "motor vehicle", "third party", "liability rules", "base premium"},
				Paths:    []string{"/rules", "/notifications", "/consolidated-gazette-notified-regulations"},
			},
			{
				Name:     "regulations",
				Keywords: []string{"regulation", "irdai regulation", "corporate governance", "solvency"},
				Paths:    []string{"/consolidated-gazette-notified-regulations", "/updated-regulations", "/regulations"},
			},
			{
				Name:     "circulars",
				Keywords: []string{"circular", "master circular", "guidelines"},
				Paths:    []string{"/circulars", "/notifications", "/guidelines"},
			},
			{
				Name:     "notifications",
				Keywords: []string{"notification", "press release", "announcement"},
				Paths:    []string{"/notifications", "/press-releases", "/announcements"},
			},
			{
				Name:     "financial",
				Keywords: []string{"obligatory cession", "financial year", "annual report", "budget"},
				Paths:    []string{"/annual-reports", "/notifications", "/consolidated-gazette-notified-regulations"},
			},
		},
		Overrides: []RouteOverride{
			{
				Name:     "marketing_firm",
				Triggers: []string{"marketing firm", "registration of insurance marketing", "marketing firm regulations"},
				Paths:    []string{"/consolidated-gazette-notified-regulations", "/updated-regulations", "/regulations"},
			},
			{
				Name:     "regulations_2015",
				Triggers: []string{"regulations, 2015"},
				Paths:    []string{"/updated-regulations", "/consolidated-gazette-notified-regulations", "/regulations"},
			},
			{
				Name:     "rrb",
				Triggers: []string{"rrb", "regional rural bank", "amalgamat", "corporate agency"},
				Paths:    []string{"/consolidated-gazette-notified-regulations", "/circulars", "/notifications"},
			},
			{
				Name:     "ulip",
				Triggers: []string{"ulip", "unit linked", "unit-linked"},
				Paths:    []string{"/consolidated-gazette-notified-regulations", "/guidelines", "/circulars"},
			},
			{
				Name:     "latest",
				Triggers: []string{"latest", "recent"},
				Paths:    []string{"/notifications", "/circulars", "/press-releases"},
			},
			{
				Name:     "guidelines",
				Triggers: []string{"guideline", "guidelines"},
				Paths:    []string{"/guidelines", "/circulars", "/notifications"},
			},
		},
		StartPaths: []string{
			"/acts",
			"/rules",
			"/consolidated-gazette-notified-regulations",
			"/updated-regulations",
			"/notifications",
		},
		SearchPaths: []string{
			"/regulations",
			"/circulars",
			"/guidelines",
			"/annual-reports",
			"/consolidated-gazette-notified-regulations",
		},
		Selectors: Selectors{
			TableRows:     "table tr, .document-row, .list-item, .portlet-body table tr",
			DocumentLinks: "a[href*='document-detail'], a[href*='.pdf'], a[href*='documents/'], a[href*='fileEntryId']",
			ContentArea:   ".journal-content-article, .portlet-body, .content, .document-content, main",
			TitleMarkers:  ".journal-content-article h1, .journal-content-article h2, .portlet-body h1, .portlet-body h2, .document-title, .content-title, h1, h2, .title, .page-title",
		},
		DetailLinkPattern: `documentId=(\d+)`,
		Keywords:          []string{"regulation", "circular", "guideline", "notification", "irdai", "insurance", "rules", "acts", "rrb", "ulip"},
		SourceType:        "regulatory",
	}
}

// DefaultSites returns the full site table: the regulator plus the simpler
// insurer sites searched for broader coverage.
func DefaultSites() []Site {
	insurerSelectors := Selectors{
		TableRows:     "table tr, .document-list li, .policy-list li",
		DocumentLinks: "a[href*='.pdf'], a[href*='.doc'], a[href*='documents']",
		ContentArea:   ".content, .main-content, main",
		TitleMarkers:  "h1, h2, .title, .page-title",
	}
	return []Site{
		DefaultRegulatorSite(),
		{
			Name:        "lic",
			BaseURL:     "https://www.licindia.in",
			SearchPaths: []string{"/corporate-governance", "/investor-relations", "/annual-reports", "/board-of-directors", "/policies"},
			Selectors:   insurerSelectors,
			Keywords:    []string{"lic", "life insurance", "corporate", "governance", "annual report"},
			SourceType:  "life_insurance",
		},
		{
			Name:        "hdfc_life",
			BaseURL:     "https://www.hdfclife.com",
			SearchPaths: []string{"/about-us/investor-relations", "/about-us/corporate-governance", "/about-us/annual-reports", "/policy-documents"},
			Selectors:   insurerSelectors,
			Keywords:    []string{"hdfc", "life insurance", "policy", "investor", "governance"},
			SourceType:  "life_insurance",
		},
		{
			Name:        "new_india",
			BaseURL:     "https://www.newindia.co.in",
			SearchPaths: []string{"/corporate-governance", "/investor-relations", "/annual-reports", "/policies"},
			Selectors:   insurerSelectors,
			Keywords:    []string{"new india", "general insurance", "policy", "corporate", "governance"},
			SourceType:  "general_insurance",
		},
	}
}
