package main

import (
	"fmt"

	"github.com/fwojciec/regscout"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return regscout.Errorf(regscout.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.History.DeleteSearch(deps.Ctx, c.ID); err != nil {
		if regscout.ErrorCode(err) == regscout.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: search %q not found. Use 'regscout history' to see stored searches.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", regscout.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted search %q\n", c.ID)
	return nil
}
