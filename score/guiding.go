package score

import (
	"fmt"

	"github.com/konverta/leadscan"
)

// analyzeGuidingContent scores how well the page steers visitors toward
// conversion. A page with neither lead forms nor CTAs offers no path at all
// and scores 1; a leak-free page with forms and several CTAs reaches 5.
func analyzeGuidingContent(e *leadscan.ExtractedElements) (int, []leadscan.ProblemTag) {
	leadForms := e.LeadForms()

	if len(leadForms) == 0 && len(e.CTAButtons) == 0 {
		return 1, []leadscan.ProblemTag{{
			Tag:            "no_conversion_path",
			Severity:       leadscan.SeverityHigh,
			Description:    "Varken formulär eller CTA:er - sidan är en digital broschyr, inte ett säljverktyg",
			Recommendation: "Bygg en tydlig väg till konvertering med CTA:er som leder till ett formulär",
		}}
	}

	score := 3
	var problems []leadscan.ProblemTag

	if n := len(e.MailtoLinks); n > 0 {
		score--
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "mailto_distraction",
			Severity:       leadscan.SeverityMedium,
			Description:    fmt.Sprintf("%d mailto-länkar exponerar er e-post direkt", n),
			Recommendation: "Led besökaren till formulär i stället för direkta e-postlänkar",
		})
	}
	if n := len(e.UngatedPDFs); n > 0 {
		score--
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "ungated_giveaway",
			Severity:       leadscan.SeverityMedium,
			Description:    fmt.Sprintf("%d PDF:er ges bort utan lead capture", n),
			Recommendation: "Låt nedladdningar gå via ett formulärsteg",
		})
	}
	if len(leadForms) == 0 {
		score--
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "no_form_path",
			Severity:       leadscan.SeverityHigh,
			Description:    "Ingen tydlig väg till konvertering via formulär",
			Recommendation: "Koppla era CTA:er till ett lead capture-formulär",
		})
	}

	if len(e.CTAButtons) >= 3 {
		score++
	}

	// Forms and CTAs both present with nothing in the way: the page
	// actually guides.
	if len(leadForms) > 0 && len(e.CTAButtons) > 0 && len(problems) == 0 {
		score++
	}

	return score, problems
}
