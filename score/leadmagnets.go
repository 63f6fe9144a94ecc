package score

import (
	"fmt"
	"strings"

	"github.com/konverta/leadscan"
)

// analyzeLeadMagnets scores gated-content strategy. Leaks (mailto links,
// ungated PDFs) without gated magnets score 2; leaks alongside gated
// magnets score 3; two or more gated magnets with no leaks reach 4-5 unless
// the only offer is a newsletter signup.
func analyzeLeadMagnets(e *leadscan.ExtractedElements) (int, []leadscan.ProblemTag) {
	gated := e.GatedMagnets()
	leaks := len(e.MailtoLinks) + len(e.UngatedPDFs)
	var problems []leadscan.ProblemTag

	if n := len(e.UngatedPDFs); n > 0 {
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "ungated_pdfs",
			Severity:       leadscan.SeverityHigh,
			Description:    fmt.Sprintf("%d PDF:er ges bort utan e-postregistrering", n),
			Recommendation: "Gate era öppna PDF:er bakom enkla formulär",
		})
	}
	if n := len(e.MailtoLinks); n > 0 {
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "mailto_leak",
			Severity:       leadscan.SeverityHigh,
			Description:    fmt.Sprintf("%d mailto-länkar låter leads lämna ospårade", n),
			Recommendation: "Ersätt mailto-länkar med kontaktformulär",
		})
	}

	switch {
	case len(e.LeadMagnets) == 0 && leaks == 0:
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "no_lead_magnets",
			Severity:       leadscan.SeverityHigh,
			Description:    "Inga lead magnets hittades - ni fångar inga leads passivt",
			Recommendation: "Skapa en lead magnet som löser ett konkret problem för er målgrupp",
		})
		return 1, problems

	case len(gated) == 0 && leaks > 0:
		return 2, problems

	case len(gated) > 0 && leaks > 0:
		return 3, problems

	case len(gated) == 0:
		// Magnets exist but nothing captures the lead.
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "magnets_not_gated",
			Severity:       leadscan.SeverityMedium,
			Description:    "Lead magnets finns men ingen av dem kräver registrering",
			Recommendation: "Placera era mest värdefulla resurser bakom ett formulär",
		})
		return 2, problems
	}

	score := 3
	if len(gated) >= 2 {
		score = 4
	}
	if len(gated) >= 3 || magnetVariety(e.LeadMagnets) >= 3 {
		score = 5
	}

	if newsletterOnly(gated) {
		if score > 3 {
			score = 3
		}
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "newsletter_only_offer",
			Severity:       leadscan.SeverityLow,
			Description:    "Enda gated-erbjudandet är en nyhetsbrevsregistrering",
			Recommendation: "Komplettera nyhetsbrevet med en guide eller checklista med högre upplevt värde",
		})
	}

	return score, problems
}

// magnetVariety counts distinct magnet types.
func magnetVariety(magnets []leadscan.LeadMagnet) int {
	types := make(map[string]bool, len(magnets))
	for _, m := range magnets {
		types[m.Type] = true
	}
	return len(types)
}

// newsletterOnly reports whether every gated magnet is just a newsletter
// signup, the weakest form of gated offer.
func newsletterOnly(gated []leadscan.LeadMagnet) bool {
	if len(gated) == 0 {
		return false
	}
	for _, m := range gated {
		text := strings.ToLower(m.Text)
		if !strings.Contains(text, "nyhetsbrev") && !strings.Contains(text, "newsletter") {
			return false
		}
	}
	return true
}
