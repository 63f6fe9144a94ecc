package score

import "github.com/konverta/leadscan"

// analyzeSocialProof scores trust signals. The score grows monotonically
// with the number of proof categories present: testimonials or quotes are
// worth two points, client logos and rating mentions one each.
func analyzeSocialProof(e *leadscan.ExtractedElements) (int, []leadscan.ProblemTag) {
	if len(e.SocialProof) == 0 {
		return 1, []leadscan.ProblemTag{{
			Tag:            "no_social_proof",
			Severity:       leadscan.SeverityHigh,
			Description:    "Ingen social proof hittad - varför skulle någon lita på er?",
			Recommendation: "Samla 3-5 kundcitat med namn och placera dem nära era CTA:er",
		}}
	}

	types := e.ProofTypes()
	score := 1
	var problems []leadscan.ProblemTag

	if types[leadscan.ProofTestimonial] || types[leadscan.ProofQuote] {
		score += 2
	} else {
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "no_testimonials",
			Severity:       leadscan.SeverityMedium,
			Description:    "Inga kundcitat eller testimonials",
			Recommendation: "Lyft fram citat från nöjda kunder med namn och företag",
		})
	}

	if types[leadscan.ProofClientLogos] {
		score++
	} else {
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "no_client_logos",
			Severity:       leadscan.SeverityLow,
			Description:    "Inga kundlogotyper synliga",
			Recommendation: "Visa logotyper från kunder eller partners för snabb trovärdighet",
		})
	}

	if types[leadscan.ProofRatings] {
		score++
	}

	return score, problems
}
