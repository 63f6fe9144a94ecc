package main

import (
	"fmt"

	"github.com/konverta/leadscan"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	reports := make([]*leadscan.Report, 0, len(c.URLs))

	for _, url := range c.URLs {
		report, err := deps.Scanner.Scan(deps.Ctx, url)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error analyzing %s: %s\n", url, leadscan.ErrorMessage(err))
			return err
		}
		reports = append(reports, report)
	}

	if !c.NoWait {
		enrichPending(deps, len(reports))
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		// Re-read so the printed report includes any merged narrative.
		current, err := deps.Reports.FindReportByID(deps.Ctx, report.ID)
		if err != nil {
			current = report
		}
		printReport(deps.Stdout, current, c.Verbose)
	}

	return nil
}
