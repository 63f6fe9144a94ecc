package leadscan

import "math"

// Criterion identifies one of the seven fixed scoring dimensions.
type Criterion string

// The seven scoring criteria, in fixed category order.
const (
	CriterionValueProposition Criterion = "value_proposition"
	CriterionCallToAction     Criterion = "call_to_action"
	CriterionLeadMagnets      Criterion = "lead_magnets"
	CriterionFormDesign       Criterion = "form_design"
	CriterionSocialProof      Criterion = "social_proof"
	CriterionGuidingContent   Criterion = "guiding_content"
	CriterionOfferStructure   Criterion = "offer_structure"
)

// criterionSpec is the immutable configuration for one criterion.
type criterionSpec struct {
	label  string
	icon   string
	weight float64
}

// criterionSpecs is loaded once and never mutated. The total weight is
// always derived from this table, never hardcoded elsewhere.
var criterionSpecs = map[Criterion]criterionSpec{
	CriterionValueProposition: {label: "Värdeerbjudandets Tydlighet", icon: "🎯", weight: 2.0},
	CriterionCallToAction:     {label: "Call to Action Effektivitet", icon: "👆", weight: 1.5},
	CriterionLeadMagnets:      {label: "Leadmagnet-kvalitet", icon: "🧲", weight: 1.5},
	CriterionFormDesign:       {label: "Formulärdesign & Friktion", icon: "📝", weight: 1.0},
	CriterionSocialProof:      {label: "Social Proof & Trovärdighet", icon: "⭐", weight: 1.0},
	CriterionGuidingContent:   {label: "Vägledande Innehåll", icon: "🧭", weight: 1.0},
	CriterionOfferStructure:   {label: "Erbjudandets Struktur", icon: "💰", weight: 1.0},
}

// criterionOrder fixes the category order of analysis output.
var criterionOrder = []Criterion{
	CriterionValueProposition,
	CriterionCallToAction,
	CriterionLeadMagnets,
	CriterionFormDesign,
	CriterionSocialProof,
	CriterionGuidingContent,
	CriterionOfferStructure,
}

// Criteria returns the seven criteria in fixed category order.
func Criteria() []Criterion {
	out := make([]Criterion, len(criterionOrder))
	copy(out, criterionOrder)
	return out
}

// CriterionWeight returns the fixed weight for a criterion, or 0 for an
// unknown key.
func CriterionWeight(c Criterion) float64 {
	return criterionSpecs[c].weight
}

// CriterionLabel returns the display label for a criterion.
func CriterionLabel(c Criterion) string {
	return criterionSpecs[c].label
}

// CriterionIcon returns the display icon for a criterion.
func CriterionIcon(c Criterion) string {
	return criterionSpecs[c].icon
}

// TotalWeight returns the sum of all criterion weights.
func TotalWeight() float64 {
	var total float64
	for _, spec := range criterionSpecs {
		total += spec.weight
	}
	return total
}

// Severity grades a detected problem.
type Severity string

// Problem severities.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Status summarizes a criterion score for display.
type Status string

// Criterion statuses derived from the score.
const (
	StatusCritical    Status = "critical"    // score <= 2
	StatusImprovement Status = "improvement" // score == 3
	StatusGood        Status = "good"        // score >= 4
)

// StatusForScore maps a 1-5 score to its display status.
func StatusForScore(score int) Status {
	switch {
	case score <= 2:
		return StatusCritical
	case score == 3:
		return StatusImprovement
	default:
		return StatusGood
	}
}

// ProblemTag describes one detected problem. Tags are immutable once
// produced; analyzers never mutate or reorder already-emitted tags.
type ProblemTag struct {
	Tag            string   `json:"tag"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	Evidence       string   `json:"evidence,omitempty"`
}

// CriterionResult holds one analyzer's verdict.
type CriterionResult struct {
	Criterion     Criterion    `json:"criterion"`
	Label         string       `json:"label"`
	Icon          string       `json:"icon"`
	Score         int          `json:"score"` // integer in [1,5]
	Weight        float64      `json:"weight"`
	WeightedScore float64      `json:"weightedScore"`
	Status        Status       `json:"status"`
	Problems      []ProblemTag `json:"problems"`
}

// NewCriterionResult builds a CriterionResult for criterion c, clamping the
// score to [1,5] and deriving weight, weighted score, and status.
func NewCriterionResult(c Criterion, score int, problems []ProblemTag) CriterionResult {
	score = ClampScore(score)
	if problems == nil {
		problems = []ProblemTag{}
	}
	weight := CriterionWeight(c)
	return CriterionResult{
		Criterion:     c,
		Label:         CriterionLabel(c),
		Icon:          CriterionIcon(c),
		Score:         score,
		Weight:        weight,
		WeightedScore: float64(score) * weight,
		Status:        StatusForScore(score),
		Problems:      problems,
	}
}

// ClampScore clamps a raw score to the valid [1,5] range.
func ClampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}

// LeakingFunnel is a page construct that lets a lead exit uncaptured,
// re-shaped from mailto and ungated-PDF records for dedicated display.
type LeakingFunnel struct {
	Type           string   `json:"type"` // "mailto" or "ungated_pdf"
	Severity       Severity `json:"severity"`
	Location       string   `json:"location"`
	Details        string   `json:"details"`
	Recommendation string   `json:"recommendation"`
}

// AnalysisResult is the complete structural scoring output for one page.
// It is created fresh per analysis and never mutated after construction.
type AnalysisResult struct {
	Criteria       []CriterionResult `json:"criteria"` // fixed category order
	OverallScore   float64           `json:"overallScore"`
	IssuesFound    int               `json:"issuesFound"`
	LogicalErrors  []string          `json:"logicalErrors"` // at most 5
	LeakingFunnels []LeakingFunnel   `json:"leakingFunnels"`
}

// CriterionScore returns the score for criterion c, or 0 if absent.
func (r *AnalysisResult) CriterionScore(c Criterion) int {
	for _, cr := range r.Criteria {
		if cr.Criterion == c {
			return cr.Score
		}
	}
	return 0
}

// OverallScore computes the weighted overall score for a set of criterion
// results, rounded to one decimal. The divisor is the sum of the criteria's
// weights, so it stays correct if the weight table changes.
func OverallScore(criteria []CriterionResult) float64 {
	var sum, weights float64
	for _, c := range criteria {
		sum += float64(c.Score) * c.Weight
		weights += c.Weight
	}
	if weights == 0 {
		return 0
	}
	return math.Round(sum/weights*10) / 10
}

// AdjustScores returns a copy of result with per-criterion scores replaced
// by the supplied adjustments and the overall score recomputed against the
// same weight table. An adjustment that is not a finite number or rounds
// outside [1,5] is ignored and the original score kept. Problems are
// carried over unchanged.
func AdjustScores(result *AnalysisResult, adjusted map[Criterion]float64) *AnalysisResult {
	out := &AnalysisResult{
		Criteria:       make([]CriterionResult, len(result.Criteria)),
		IssuesFound:    result.IssuesFound,
		LogicalErrors:  result.LogicalErrors,
		LeakingFunnels: result.LeakingFunnels,
	}
	for i, cr := range result.Criteria {
		if v, ok := adjusted[cr.Criterion]; ok {
			if score, valid := validAdjustment(v); valid {
				cr = NewCriterionResult(cr.Criterion, score, cr.Problems)
			}
		}
		out.Criteria[i] = cr
	}
	out.OverallScore = OverallScore(out.Criteria)
	return out
}

// validAdjustment rounds an adjusted score to the integer grid and reports
// whether it lands in the valid range.
func validAdjustment(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	score := int(math.Round(v))
	if score < 1 || score > 5 {
		return 0, false
	}
	return score, true
}

// Scorer applies the scoring rubric to extracted elements. Implementations
// are pure: the same elements always yield the same result.
type Scorer interface {
	Score(elements *ExtractedElements) *AnalysisResult
}
