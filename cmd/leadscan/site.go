package main

import (
	"fmt"

	"github.com/konverta/leadscan"
)

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	result, err := deps.Scanner.ScanSite(deps.Ctx, c.URL, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scanning %s: %s\n", c.URL, leadscan.ErrorMessage(err))
		return err
	}

	if !c.NoWait {
		enrichPending(deps, result.Scanned)
	}

	fmt.Fprintf(deps.Stdout, "Scanned %d pages (%d failed)\n", result.Scanned, result.Failed)
	for _, report := range result.Reports {
		fmt.Fprintf(deps.Stdout, "%s  %.1f/5  %s\n", report.ID, report.OverallScore, report.URL)
	}

	return nil
}
