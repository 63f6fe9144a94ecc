package score

import (
	"strings"

	"github.com/konverta/leadscan"
)

// maxFormFields is the friction threshold above which conversion drops.
const maxFormFields = 5

// genericSubmitTexts are submit labels that waste the button's persuasion
// opportunity.
var genericSubmitTexts = []string{"submit", "skicka", "send"}

// analyzeFormDesign scores lead-capture form friction. No lead form at all
// scores 1. A form with at most four fields, an email field, and a
// non-generic submit label scores 5 when nothing else is wrong.
func analyzeFormDesign(e *leadscan.ExtractedElements) (int, []leadscan.ProblemTag) {
	leadForms := e.LeadForms()
	if len(leadForms) == 0 {
		return 1, []leadscan.ProblemTag{{
			Tag:            "no_lead_forms",
			Severity:       leadscan.SeverityHigh,
			Description:    "Inga lead capture-formulär hittades - hur ska ni samla leads?",
			Recommendation: "Lägg till ett formulär above the fold som erbjuder något i utbyte mot e-post",
		}}
	}

	score := 3
	var problems []leadscan.ProblemTag

	for _, form := range leadForms {
		if len(form.Fields) > maxFormFields {
			score--
			problems = append(problems, leadscan.ProblemTag{
				Tag:            "too_many_fields",
				Severity:       leadscan.SeverityMedium,
				Description:    "För många fält i formuläret minskar konverteringen",
				Recommendation: "Begär bara det säljaren inte kan ta reda på själv",
			})
		}
		if isGenericSubmit(form.SubmitText) {
			score--
			problems = append(problems, leadscan.ProblemTag{
				Tag:            "generic_submit_text",
				Severity:       leadscan.SeverityMedium,
				Description:    "Generisk knapptext är svag - använd handlingsorienterad text",
				Recommendation: "Byt till text som beskriver värdet, t.ex. 'Få min analys'",
				Evidence:       form.SubmitText,
			})
		}
		if !form.HasEmailField {
			score--
			problems = append(problems, leadscan.ProblemTag{
				Tag:            "no_email_field",
				Severity:       leadscan.SeverityHigh,
				Description:    "Formulär utan e-postfält - hur når ni leads?",
				Recommendation: "Lägg till ett e-postfält så att leadet kan följas upp",
			})
		}
	}

	// A lean, purposeful capture form with nothing else wrong is as good
	// as it gets.
	if len(problems) == 0 && hasLeanCaptureForm(leadForms) {
		score += 2
	}

	return score, problems
}

func isGenericSubmit(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, generic := range genericSubmitTexts {
		if lower == generic {
			return true
		}
	}
	return false
}

// hasLeanCaptureForm reports whether any lead form has at most four fields,
// an email field, and a non-generic submit label.
func hasLeanCaptureForm(forms []leadscan.Form) bool {
	for _, f := range forms {
		if len(f.Fields) <= 4 && f.HasEmailField && f.SubmitText != "" && !isGenericSubmit(f.SubmitText) {
			return true
		}
	}
	return false
}
