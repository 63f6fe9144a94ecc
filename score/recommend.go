package score

import "github.com/konverta/leadscan"

// Recommendations derives up to five prioritized, actionable recommendations
// from the extracted elements. Leak fixes come first since they are the
// fastest wins, then missing capabilities, then generic improvements to pad
// the list when the page has few concrete problems.
func Recommendations(e *leadscan.ExtractedElements) []string {
	recs := []string{}

	if len(e.MailtoLinks) > 0 {
		recs = append(recs, "Ersätt mailto-länkar med kontaktformulär för att fånga och spåra varje lead")
	}
	if len(e.UngatedPDFs) > 0 {
		recs = append(recs, "Gate:a era PDF-resurser bakom ett enkelt e-postformulär")
	}
	if len(e.LeadMagnets) == 0 {
		recs = append(recs, "Skapa en lead magnet (guide, checklista eller mall) som byter värde mot e-postadresser")
	}
	if len(e.LeadForms()) == 0 {
		recs = append(recs, "Lägg till ett lead capture-formulär med max 3-4 fält ovanför vecket")
	}
	if len(e.SocialProof) == 0 {
		recs = append(recs, "Lägg till kundcitat eller kundlogotyper nära era formulär för att bygga förtroende")
	}
	if len(e.CTAButtons) == 0 {
		recs = append(recs, "Lägg till tydliga CTA-knappar med handlingsorienterad text")
	}
	if e.ValueProposition.H1 == "" {
		recs = append(recs, "Skriv en H1-rubrik som förklarar ert erbjudande inom 3 sekunder")
	}

	generic := []string{
		"A/B-testa era CTA-texter mot mer specifika formuleringar",
		"Segmentera era erbjudanden efter var besökaren befinner sig i köpresan",
		"Korta ner formulären - varje extra fält sänker konverteringsgraden",
		"Implementera exit-intent popups för att fånga besökare som är på väg att lämna",
		"Skapa en dedikerad landningssida för varje trafikkälla ni använder",
	}
	for _, g := range generic {
		if len(recs) >= 5 {
			break
		}
		recs = append(recs, g)
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
