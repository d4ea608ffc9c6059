package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/regscout"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *regscout.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &regscout.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	sections, err := deps.Sitemaps.DiscoverSections(deps.Ctx, c.URL, urlFilter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", regscout.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No sections found; the site may not publish a sitemap.")
		return nil
	}

	for _, s := range sections {
		fmt.Fprintln(deps.Stdout, s)
	}

	return nil
}
