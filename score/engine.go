// Package score implements the rule-based scoring engine: seven independent
// analyzers over extracted conversion elements, combined with fixed category
// weights. Everything in this package is pure and deterministic: the same
// elements always produce the same result.
package score

import (
	"fmt"

	"github.com/konverta/leadscan"
)

// Ensure Engine implements leadscan.Scorer at compile time.
var _ leadscan.Scorer = (*Engine)(nil)

// Engine applies the seven analyzers and assembles the analysis result.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// analyzers maps each criterion to its rule function, in fixed category order.
var analyzers = []struct {
	criterion leadscan.Criterion
	analyze   func(*leadscan.ExtractedElements) (int, []leadscan.ProblemTag)
}{
	{leadscan.CriterionValueProposition, analyzeValueProposition},
	{leadscan.CriterionCallToAction, analyzeCallToAction},
	{leadscan.CriterionLeadMagnets, analyzeLeadMagnets},
	{leadscan.CriterionFormDesign, analyzeFormDesign},
	{leadscan.CriterionSocialProof, analyzeSocialProof},
	{leadscan.CriterionGuidingContent, analyzeGuidingContent},
	{leadscan.CriterionOfferStructure, analyzeOfferStructure},
}

// Score runs every analyzer and combines the results into a fresh
// AnalysisResult. Scores are clamped to [1,5] per criterion; the overall
// score is the weighted average rounded to one decimal.
func (e *Engine) Score(elements *leadscan.ExtractedElements) *leadscan.AnalysisResult {
	criteria := make([]leadscan.CriterionResult, 0, len(analyzers))
	for _, a := range analyzers {
		score, problems := a.analyze(elements)
		criteria = append(criteria, leadscan.NewCriterionResult(a.criterion, score, problems))
	}

	return &leadscan.AnalysisResult{
		Criteria:       criteria,
		OverallScore:   leadscan.OverallScore(criteria),
		IssuesFound:    countIssues(elements),
		LogicalErrors:  logicalErrors(elements),
		LeakingFunnels: leakingFunnels(elements),
	}
}

// countIssues tallies every leak plus each missing conversion capability.
func countIssues(e *leadscan.ExtractedElements) int {
	count := len(e.MailtoLinks) + len(e.UngatedPDFs)
	if len(e.LeadForms()) == 0 {
		count++
	}
	if len(e.LeadMagnets) == 0 {
		count++
	}
	if len(e.SocialProof) == 0 {
		count++
	}
	if len(e.CTAButtons) == 0 {
		count++
	}
	if e.ValueProposition.H1 == "" {
		count++
	}
	return count
}

// logicalErrors derives up to five short teaser strings from the analysis
// conditions, leak issues first, then missing capabilities.
func logicalErrors(e *leadscan.ExtractedElements) []string {
	errors := []string{}

	if n := len(e.MailtoLinks); n > 0 {
		errors = append(errors, fmt.Sprintf("Ni har %d mailto-länkar som läcker leads till era konkurrenter", n))
	}
	if n := len(e.UngatedPDFs); n > 0 {
		errors = append(errors, fmt.Sprintf("%d värdefulla PDF-resurser ges bort utan att fånga e-postadresser", n))
	}
	if len(e.LeadMagnets) == 0 {
		errors = append(errors, "Inga lead magnets identifierade - ni missar alla passiva leads")
	}
	if len(e.SocialProof) == 0 {
		errors = append(errors, "Ingen synlig social proof - besökare har ingen anledning att lita på er")
	}
	if len(e.LeadForms()) == 0 {
		errors = append(errors, "Inga lead capture-formulär - hur tänker ni konvertera trafik?")
	}
	if e.ValueProposition.H1 == "" {
		errors = append(errors, "Ingen H1-rubrik - besökare vet inte vad ni erbjuder inom 3 sekunder")
	}

	if len(errors) > 5 {
		errors = errors[:5]
	}
	return errors
}

// leakingFunnels projects mailto and ungated-PDF records into a unified
// high-severity list. It is a re-shaping of already-extracted data, not an
// independent analyzer: its length always equals the total leak count.
func leakingFunnels(e *leadscan.ExtractedElements) []leadscan.LeakingFunnel {
	funnels := make([]leadscan.LeakingFunnel, 0, len(e.MailtoLinks)+len(e.UngatedPDFs))

	for _, m := range e.MailtoLinks {
		funnels = append(funnels, leadscan.LeakingFunnel{
			Type:           "mailto",
			Severity:       leadscan.SeverityHigh,
			Location:       m.Email,
			Details:        m.Context,
			Recommendation: "Ersätt mailto-länken med ett kontaktformulär så att varje lead fångas och kan spåras",
		})
	}
	for _, p := range e.UngatedPDFs {
		funnels = append(funnels, leadscan.LeakingFunnel{
			Type:           "ungated_pdf",
			Severity:       leadscan.SeverityHigh,
			Location:       p.URL,
			Details:        p.LinkText,
			Recommendation: "Gate PDF:en bakom ett enkelt formulär - begär endast e-post för att minimera friktionen",
		})
	}
	return funnels
}
