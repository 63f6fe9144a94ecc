// Package gemini implements narrative report enrichment using Google
// Gemini. All sections are generated in a single call returning structured
// JSON; parsing failures surface as errors so the caller can fall back to
// static templates.
package gemini

import (
	"context"
	"encoding/json"
	"regexp"

	"google.golang.org/genai"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/industry"
)

const model = "gemini-2.5-flash"

// Ensure Enricher implements leadscan.Enricher at compile time.
var _ leadscan.Enricher = (*Enricher)(nil)

// Enricher generates Swedish narrative report sections from a structural
// analysis.
type Enricher struct {
	client *genai.Client
}

// NewEnricher creates a new Enricher.
func NewEnricher(client *genai.Client) *Enricher {
	return &Enricher{client: client}
}

// Enrich generates all narrative sections in a single model call.
func (e *Enricher) Enrich(ctx context.Context, task *leadscan.EnrichmentTask) (*leadscan.NarrativeSections, error) {
	if task == nil || task.Elements == nil || task.Analysis == nil {
		return nil, leadscan.Errorf(leadscan.EINVALID, "elements and analysis required")
	}

	prompt := BuildPrompt(task)
	config := BuildConfig(task.Industry)

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return nil, leadscan.Errorf(leadscan.EINTERNAL, "gemini returned nil result")
	}

	sections, err := ParseSections(result.Text())
	if err != nil {
		return nil, err
	}
	return sections, nil
}

// BuildConfig returns the GenerateContentConfig for enrichment calls. The
// system instruction carries the industry tone so the narrative reads like
// it was written for that sector.
func BuildConfig(ind leadscan.Industry) *genai.GenerateContentConfig {
	temp := float32(0.7)
	tone := industry.Tone(ind.Key)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Du är en expert på konverteringsoptimering och lead generation. " +
					"Du skriver rapporter på svenska med en direkt, provocerande men saklig ton, " +
					"anpassad för branschen: " + tone + ". Svara alltid med giltig JSON.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// jsonBlock extracts the outermost JSON object from a response that may be
// wrapped in markdown code fences or prose.
var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

// ParseSections parses the model's JSON response into narrative sections.
func ParseSections(text string) (*leadscan.NarrativeSections, error) {
	var sections leadscan.NarrativeSections
	if err := json.Unmarshal([]byte(text), &sections); err == nil {
		return &sections, nil
	}

	match := jsonBlock.FindString(text)
	if match == "" {
		return nil, leadscan.Errorf(leadscan.EINTERNAL, "no JSON object in model response")
	}
	if err := json.Unmarshal([]byte(match), &sections); err != nil {
		return nil, leadscan.Errorf(leadscan.EINTERNAL, "parse model response: %v", err)
	}
	return &sections, nil
}
