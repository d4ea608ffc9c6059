package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/regscout"
	"github.com/fwojciec/regscout/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	result, err := deps.Searcher.Search(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", regscout.ErrorMessage(err))
		return err
	}

	switch result.Kind {
	case regscout.ResultInvalid:
		fmt.Fprintln(deps.Stdout, "Query rejected: too short or missing meaningful terms.")
		return nil
	case regscout.ResultBlocked:
		fmt.Fprintln(deps.Stdout, "Query rejected: outside the supported regulatory domain.")
		return nil
	case regscout.ResultEmpty:
		fmt.Fprintln(deps.Stdout, "No matching documents found.")
		return nil
	}

	if result.Kind == regscout.ResultPerfectMatch {
		fmt.Fprintln(deps.Stdout, "Perfect match:")
	} else {
		fmt.Fprintf(deps.Stdout, "Found %d documents:\n", len(result.Documents))
	}
	for _, doc := range result.Documents {
		fmt.Fprintf(deps.Stdout, "%.2f  %s\n      %s\n", doc.Score, doc.Title, doc.URL)
		for _, link := range doc.SubLinks {
			fmt.Fprintf(deps.Stdout, "      file: %s\n", link)
		}
	}

	if c.NoSave {
		return nil
	}

	record := &regscout.Search{
		Query:       query,
		Fingerprint: search.Fingerprint(query),
		Kind:        result.Kind,
		Documents:   result.Documents,
	}
	if result.Intent != nil {
		record.IntentType = result.Intent.Type
	}
	if err := deps.History.CreateSearch(deps.Ctx, record); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", regscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved as search %s\n", record.ID)
	return nil
}
