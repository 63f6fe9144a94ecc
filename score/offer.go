package score

import "github.com/konverta/leadscan"

// analyzeOfferStructure scores how the commercial offer is laid out. A page
// with no low-barrier entry point and no CTAs scores 1; a free offer with
// transparent, tiered pricing scores 5. Any high-severity problem caps the
// score at 2 regardless of the raw arithmetic.
func analyzeOfferStructure(e *leadscan.ExtractedElements) (int, []leadscan.ProblemTag) {
	offer := e.OfferStructure
	var problems []leadscan.ProblemTag

	if !offer.HasFreeOffer && len(e.CTAButtons) == 0 {
		return 1, []leadscan.ProblemTag{{
			Tag:            "no_entry_point",
			Severity:       leadscan.SeverityHigh,
			Description:    "Inget lågtröskelerbjudande och inga CTA:er - kall trafik har ingen väg in",
			Recommendation: "Erbjud något gratis (demo, guide, provperiod) som första steg",
		}}
	}

	score := 2

	if offer.HasFreeOffer {
		score++
	} else {
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "no_free_offer",
			Severity:       leadscan.SeverityMedium,
			Description:    "Inget gratis- eller proverbjudande som sänker tröskeln för nya leads",
			Recommendation: "Lägg till ett kostnadsfritt första steg, t.ex. demo eller provperiod",
		})
	}

	if offer.HasPricing {
		score++
	} else {
		problems = append(problems, leadscan.ProblemTag{
			Tag:            "no_pricing",
			Severity:       leadscan.SeverityLow,
			Description:    "Ingen synlig prisinformation",
			Recommendation: "Transparent prissättning kvalificerar leads innan de kontaktar er",
		})
	}

	if offer.HasSegmentedPricing || offer.PricingTiers >= 2 {
		score++
	}

	// A high-severity structural problem makes everything above cosmetic.
	for _, p := range problems {
		if p.Severity == leadscan.SeverityHigh && score > 2 {
			score = 2
			break
		}
	}

	return score, problems
}
