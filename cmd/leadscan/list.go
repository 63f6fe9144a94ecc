package main

import (
	"fmt"

	"github.com/konverta/leadscan"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	reports, err := deps.Reports.FindReports(deps.Ctx, leadscan.ReportFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscan.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'leadscan analyze' to create one.")
		return nil
	}

	for _, r := range reports {
		enriched := " "
		if r.Enriched {
			enriched = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s  %.1f/5 %s %s\n", r.ID, r.OverallScore, enriched, r.URL)
	}

	return nil
}
