package main

import (
	"fmt"

	"github.com/fwojciec/regscout"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := regscout.SearchFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Query != "" {
		filter.Query = &c.Query
	}

	searches, err := deps.History.FindSearches(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", regscout.ErrorMessage(err))
		return err
	}

	if len(searches) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches found. Use 'regscout search' to run one.")
		return nil
	}

	for _, s := range searches {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-13s  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Kind, s.Query)
	}

	return nil
}
