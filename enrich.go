package leadscan

import "context"

// NarrativeSections holds the prose fields produced by the enrichment
// collaborator. Any field may be empty; the structural analysis is complete
// without them. AdjustedScores is the one supported feedback channel: the
// enricher may refine individual criterion scores, which are re-validated
// and re-weighted by the core before use.
type NarrativeSections struct {
	ShortDescription     string                `json:"shortDescription"`
	LeadMagnetsAnalysis  string                `json:"leadMagnetsAnalysis"`
	FormsAnalysis        string                `json:"formsAnalysis"`
	CTAAnalysis          string                `json:"ctaAnalysis"`
	LogicalVerdict       string                `json:"logicalVerdict"`
	SummaryAssessment    string                `json:"summaryAssessment"`
	FinalHook            string                `json:"finalHook"`
	CriteriaExplanations map[Criterion]string  `json:"criteriaExplanations,omitempty"`
	AdjustedScores       map[Criterion]float64 `json:"adjustedScores,omitempty"`
}

// Enricher produces narrative report text from a structural analysis.
// Enrichment is best-effort: failures must never invalidate the structural
// result, and implementations must not block the main analysis response.
type Enricher interface {
	Enrich(ctx context.Context, task *EnrichmentTask) (*NarrativeSections, error)
}

// EnrichmentTask is the descriptor handed to the background enrichment
// worker after the structural response has been returned to the caller.
// ContentMarkdown carries the page's boilerplate-free main content so the
// enricher can ground its narrative in what the page actually says.
type EnrichmentTask struct {
	ReportID        string             `json:"reportId"`
	ContentMarkdown string             `json:"contentMarkdown,omitempty"`
	Elements        *ExtractedElements `json:"elements"`
	Analysis        *AnalysisResult    `json:"analysis"`
	Industry        Industry           `json:"industry"`
}

// TaskQueue decouples enrichment from the request path. Delivery is
// at-most-once with no ordering guarantee relative to other requests.
type TaskQueue interface {
	// Enqueue adds a task for background processing.
	Enqueue(ctx context.Context, task *EnrichmentTask) error

	// Dequeue blocks until a task is available or the context is canceled.
	Dequeue(ctx context.Context) (*EnrichmentTask, error)
}

// MainContent is the boilerplate-free core of a page, used as context for
// narrative enrichment.
type MainContent struct {
	Title       string
	ContentHTML string
}

// ContentExtractor extracts main content from HTML, removing navigation,
// footer, and other boilerplate.
type ContentExtractor interface {
	ExtractContent(html string) (*MainContent, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
