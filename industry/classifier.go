package industry

import (
	"math"
	"strings"

	"github.com/konverta/leadscan"
)

// Ensure Classifier implements leadscan.IndustryClassifier at compile time.
var _ leadscan.IndustryClassifier = (*Classifier)(nil)

// Classifier detects the business sector from extracted elements by
// counting whole-word keyword matches against the taxonomy.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scores the combined extracted text against every sector and
// returns the winner with a confidence in [0,1]. When nothing matches it
// returns the general fallback with confidence 0.
func (c *Classifier) Classify(elements *leadscan.ExtractedElements) leadscan.Industry {
	corpus := strings.ToLower(strings.Join(collectText(elements), " "))

	scores := scoreSectors(corpus)
	top := -1
	var topScore, secondScore float64
	for i, score := range scores {
		if score > topScore {
			secondScore = topScore
			top, topScore = i, score
		} else if score > secondScore {
			secondScore = score
		}
	}

	if top < 0 || topScore == 0 {
		return leadscan.Industry{Key: GeneralKey, Label: GeneralLabel, Confidence: 0.0}
	}

	// Confidence combines absolute evidence (capped at 10 matches) with
	// dominance over the runner-up.
	absolute := math.Min(topScore/10, 1.0)
	relative := (topScore - secondScore) / math.Max(topScore, 1)
	confidence := absolute*0.6 + relative*0.4
	confidence = math.Round(math.Min(confidence, 1.0)*100) / 100

	return leadscan.Industry{
		Key:        taxonomy[top].key,
		Label:      taxonomy[top].label,
		Confidence: confidence,
	}
}

// scoreSectors returns the weighted match score per taxonomy sector, in
// taxonomy order.
func scoreSectors(corpus string) []float64 {
	scores := make([]float64, len(taxonomy))
	for i, s := range taxonomy {
		for _, kw := range s.keywords {
			matches := len(kw.re.FindAllStringIndex(corpus, -1))
			if matches > 0 {
				scores[i] += float64(matches) * kw.weight
			}
		}
	}
	return scores
}

// collectText gathers every text field that tends to reveal the sector:
// company identity, hero copy, lead magnet titles, CTA and submit texts.
func collectText(e *leadscan.ExtractedElements) []string {
	var texts []string

	if e.CompanyInfo.Name != "" {
		texts = append(texts, e.CompanyInfo.Name)
	}
	if e.CompanyInfo.Description != "" {
		texts = append(texts, e.CompanyInfo.Description)
	}
	if e.ValueProposition.H1 != "" {
		texts = append(texts, e.ValueProposition.H1)
	}
	if e.ValueProposition.HeroText != "" {
		texts = append(texts, e.ValueProposition.HeroText)
	}
	if e.ValueProposition.Subheadline != "" {
		texts = append(texts, e.ValueProposition.Subheadline)
	}
	for _, m := range e.LeadMagnets {
		if m.Text != "" {
			texts = append(texts, m.Text)
		}
	}
	for _, cta := range e.CTAButtons {
		if cta.Text != "" {
			texts = append(texts, cta.Text)
		}
	}
	for _, f := range e.Forms {
		if f.SubmitText != "" {
			texts = append(texts, f.SubmitText)
		}
	}

	return texts
}
