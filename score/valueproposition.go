package score

import "github.com/konverta/leadscan"

// H1 length thresholds. Product-decided constants carried over verbatim;
// they are not derived from any generalizable rule.
const (
	minH1Length = 10
	maxH1Length = 80
)

// analyzeValueProposition scores the clarity of the hero message. A page
// with a concise H1, a hero section, and a subheadline scores 5; a missing
// H1 alone drops the score by three.
func analyzeValueProposition(e *leadscan.ExtractedElements) (int, []leadscan.ProblemTag) {
	vp := e.ValueProposition
	score := 5
	var problems []leadscan.ProblemTag

	switch {
	case vp.H1 == "":
		score -= 3
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "missing_h1",
			Severity:       leadscan.SeverityHigh,
			Description:    "Ingen H1-rubrik hittades - besökaren vet inte vad ni erbjuder",
			Recommendation: "Skriv en H1 som kommunicerar ert värdeerbjudande inom 3 sekunder",
		})
	case vp.H1Length < minH1Length:
		score--
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "h1_too_short",
			Severity:       leadscan.SeverityMedium,
			Description:    "H1 är för kort för att kommunicera värde",
			Recommendation: "Utveckla rubriken så att den beskriver vad kunden får",
			Evidence:       vp.H1,
		})
	case vp.H1Length > maxH1Length:
		score--
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "h1_too_long",
			Severity:       leadscan.SeverityMedium,
			Description:    "H1 är för lång - budskapet drunknar",
			Recommendation: "Korta ner rubriken till under 80 tecken",
			Evidence:       vp.H1,
		})
	}

	if !vp.HasHero {
		score--
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "missing_hero",
			Severity:       leadscan.SeverityMedium,
			Description:    "Ingen tydlig hero-sektion identifierad",
			Recommendation: "Lägg till en hero-sektion som lyfter fram erbjudandet above the fold",
		})
	}

	if !vp.HasSubheadline {
		score--
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "missing_subheadline",
			Severity:       leadscan.SeverityLow,
			Description:    "Ingen underrubrik som förtydligar erbjudandet",
			Recommendation: "Komplettera H1 med en underrubrik som konkretiserar värdet",
		})
	}

	return score, problems
}
