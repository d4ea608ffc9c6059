package main

import (
	"fmt"

	"github.com/fwojciec/regscout"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	search, err := deps.History.FindSearchByID(deps.Ctx, c.ID)
	if err != nil {
		if regscout.ErrorCode(err) == regscout.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: search %q not found. Use 'regscout history' to see stored searches.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", regscout.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Search %s\n", search.ID)
	fmt.Fprintf(deps.Stdout, "Query:   %s\n", search.Query)
	fmt.Fprintf(deps.Stdout, "Intent:  %s\n", search.IntentType)
	fmt.Fprintf(deps.Stdout, "Result:  %s\n", search.Kind)
	fmt.Fprintf(deps.Stdout, "Ran at:  %s\n", search.CreatedAt.Format("2006-01-02 15:04"))

	if len(search.Documents) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents recorded.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\nDocuments (%d):\n", len(search.Documents))
	for _, doc := range search.Documents {
		fmt.Fprintf(deps.Stdout, "%.2f  %s\n      %s\n", doc.Score, doc.Title, doc.URL)
		for _, link := range doc.SubLinks {
			fmt.Fprintf(deps.Stdout, "      file: %s\n", link)
		}
		if c.Full && doc.Content != "" {
			fmt.Fprintf(deps.Stdout, "\n%s\n\n", doc.Content)
		}
	}

	return nil
}
