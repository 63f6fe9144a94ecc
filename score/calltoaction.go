package score

import (
	"strings"

	"github.com/konverta/leadscan"
)

// weakCTATexts are generic labels that tell the visitor nothing about the
// action they are taking.
var weakCTATexts = []string{
	"läs mer", "read more", "mer info", "klicka här", "click here", "submit", "skicka",
}

// strongCTAKeywords mark action-oriented, low-barrier CTA copy.
var strongCTAKeywords = []string{
	"gratis", "free", "starta", "start", "prova", "try", "boka", "book",
}

// analyzeCallToAction scores CTA presence and copy quality. A page with no
// CTAs scores 1; generic-only labels cap the score at 2.
func analyzeCallToAction(e *leadscan.ExtractedElements) (int, []leadscan.ProblemTag) {
	ctas := e.CTAButtons
	if len(ctas) == 0 {
		return 1, []leadscan.ProblemTag{{
			Tag:            "no_ctas",
			Severity:       leadscan.SeverityHigh,
			Description:    "Inga tydliga CTA-knappar hittades - hur ska besökare agera?",
			Recommendation: "Lägg till handlingsorienterade CTA:er genom hela sidan",
		}}
	}

	score := 3
	var problems []leadscan.ProblemTag

	if len(ctas) < 2 {
		score--
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "too_few_ctas",
			Severity:       leadscan.SeverityMedium,
			Description:    "För få CTA:er på sidan",
			Recommendation: "Varje scrolldjup ska ha en tydlig handlingsuppmaning",
		})
	}

	weak := 0
	for _, cta := range ctas {
		if isWeakCTA(cta.Text) {
			if weak == 0 {
				score--
				problems = append(problems, leadscan.ProblemTag{
					Tag:            "weak_cta_text",
					Severity:       leadscan.SeverityMedium,
					Description:    "Svag CTA-text utan handlingsvärde",
					Recommendation: "Byt till text som beskriver vad besökaren får, t.ex. 'Boka gratis demo'",
					Evidence:       cta.Text,
				})
			}
			weak++
		}
	}

	if hasStrongCTA(ctas) {
		score++
	}

	// Only generic labels: the page offers no real action to take.
	if weak == len(ctas) {
		if score > 2 {
			score = 2
		}
	}

	return score, problems
}

func isWeakCTA(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, weak := range weakCTATexts {
		if lower == weak {
			return true
		}
	}
	return false
}

func hasStrongCTA(ctas []leadscan.CTAButton) bool {
	for _, cta := range ctas {
		lower := strings.ToLower(cta.Text)
		for _, kw := range strongCTAKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
