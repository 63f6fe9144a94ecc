package main

import (
	"fmt"
	"io"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/score"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	report, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
	if leadscan.ErrorCode(err) == leadscan.ENOTFOUND {
		// Shared links carry the access token instead of the ID.
		report, err = deps.Reports.FindReportByToken(deps.Ctx, c.ID)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadscan.ErrorMessage(err))
		return err
	}

	printReport(deps.Stdout, report, c.Verbose)
	return nil
}

// printReport writes the full Swedish report to w.
func printReport(w io.Writer, report *leadscan.Report, verbose bool) {
	company := report.CompanyName
	if company == "" {
		company = report.URL
	}

	fmt.Fprintf(w, "%s\n", company)
	fmt.Fprintf(w, "%s\n", report.URL)
	fmt.Fprintf(w, "Helhetsbetyg: %.1f/5  (%d identifierade problem)\n", report.OverallScore, report.IssuesFound)
	fmt.Fprintf(w, "Bransch: %s\n\n", report.Industry.Label)

	if report.Narrative != nil && report.Narrative.ShortDescription != "" {
		fmt.Fprintf(w, "%s\n\n", report.Narrative.ShortDescription)
	}

	for _, cr := range report.Analysis.Criteria {
		fmt.Fprintf(w, "%s %s: %d/5 (%s)\n", cr.Icon, cr.Label, cr.Score, statusLabel(cr.Status))
		if verbose {
			for _, p := range cr.Problems {
				fmt.Fprintf(w, "    - %s\n", p.Description)
				if p.Recommendation != "" {
					fmt.Fprintf(w, "      Åtgärd: %s\n", p.Recommendation)
				}
			}
		}
	}

	if len(report.Analysis.LogicalErrors) > 0 {
		fmt.Fprintf(w, "\nLogiska fel:\n")
		for _, e := range report.Analysis.LogicalErrors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}

	if len(report.Analysis.LeakingFunnels) > 0 {
		fmt.Fprintf(w, "\nLäckande trattar:\n")
		for _, l := range report.Analysis.LeakingFunnels {
			fmt.Fprintf(w, "  - [%s] %s: %s\n", l.Severity, l.Location, l.Details)
		}
	}

	if recs := score.Recommendations(report.Elements); len(recs) > 0 {
		fmt.Fprintf(w, "\nRekommendationer:\n")
		for _, r := range recs {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}

	if report.Narrative != nil {
		if report.Narrative.SummaryAssessment != "" {
			fmt.Fprintf(w, "\n%s\n", report.Narrative.SummaryAssessment)
		}
		if report.Narrative.FinalHook != "" {
			fmt.Fprintf(w, "\n%s\n", report.Narrative.FinalHook)
		}
	}

	fmt.Fprintf(w, "\nID: %s  Delningslänk: %s\n", report.ID, report.AccessToken)
}

// statusLabel maps a criterion status to its Swedish display text.
func statusLabel(s leadscan.Status) string {
	switch s {
	case leadscan.StatusCritical:
		return "kritiskt"
	case leadscan.StatusImprovement:
		return "förbättringspotential"
	default:
		return "bra"
	}
}
