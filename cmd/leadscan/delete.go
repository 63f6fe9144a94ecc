package main

import (
	"fmt"

	"github.com/konverta/leadscan"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return leadscan.Errorf(leadscan.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Reports.DeleteReport(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted report %q\n", c.ID)
	return nil
}
