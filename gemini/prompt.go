package gemini

import (
	"fmt"
	"strings"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/industry"
)

// Prompt sampling limits. The model gets representative samples, not the
// full element dump, to keep the prompt compact.
const (
	maxPromptMagnets   = 5
	maxPromptForms     = 3
	maxPromptCTAs      = 10
	maxPromptProof     = 5
	maxPromptLeaks     = 5
	maxDescriptionLen  = 500
	maxProofContentLen = 80
	maxContentLen      = 4000
)

// BuildPrompt builds the single-call enrichment prompt: a Swedish data
// block describing everything the analysis found, followed by the JSON
// contract for the narrative sections.
func BuildPrompt(task *leadscan.EnrichmentTask) string {
	var sb strings.Builder

	elements := task.Elements
	analysis := task.Analysis
	ind := task.Industry

	company := elements.CompanyInfo.Name
	if company == "" {
		company = "Företaget"
	}
	label := industry.Label(ind.Key)

	fmt.Fprintf(&sb, "Analysera %s (%s) och skriv en omfattande rapport på svenska.\n\n", company, label)

	sb.WriteString("FÖRETAGSDATA:\n")
	fmt.Fprintf(&sb, "- Bransch: %s (konfidens %.2f)\n", label, ind.Confidence)
	fmt.Fprintf(&sb, "- Branschterminologi: %s\n", strings.Join(industry.Terminology(ind.Key), ", "))
	description := elements.CompanyInfo.Description
	if description == "" {
		description = "Ej tillgänglig"
	}
	fmt.Fprintf(&sb, "- Beskrivning: %s\n\n", truncate(description, maxDescriptionLen))

	sb.WriteString("ANALYSDATA:\n")
	fmt.Fprintf(&sb, "- Övergripande betyg: %.1f/5\n", analysis.OverallScore)
	fmt.Fprintf(&sb, "- Identifierade problem: %s\n", strings.Join(analysis.LogicalErrors, "; "))
	writeMagnets(&sb, elements.LeadMagnets)
	writeForms(&sb, elements.Forms)
	writeCTAs(&sb, elements.CTAButtons)
	writeProof(&sb, elements.SocialProof)
	writeLeaks(&sb, elements)

	sb.WriteString("\nBETYG PER KRITERIUM (1-5, strukturellt beräknade):\n")
	for _, cr := range analysis.Criteria {
		fmt.Fprintf(&sb, "- %s (%s): %d/5\n", cr.Label, cr.Criterion, cr.Score)
	}

	if task.ContentMarkdown != "" {
		fmt.Fprintf(&sb, "\nSIDINNEHÅLL (Markdown, utdrag):\n%s\n", truncate(task.ContentMarkdown, maxContentLen))
	}

	sb.WriteString(promptContract)
	return sb.String()
}

func writeMagnets(sb *strings.Builder, magnets []leadscan.LeadMagnet) {
	texts := make([]string, 0, maxPromptMagnets)
	for i, m := range magnets {
		if i >= maxPromptMagnets {
			break
		}
		gated := "öppen"
		if m.IsGated {
			gated = "gated"
		}
		texts = append(texts, fmt.Sprintf("%q (%s, %s)", truncate(m.Text, 50), m.Type, gated))
	}
	fmt.Fprintf(sb, "- Lead magnets: %d st - %s\n", len(magnets), strings.Join(texts, ", "))
}

func writeForms(sb *strings.Builder, forms []leadscan.Form) {
	details := make([]string, 0, maxPromptForms)
	for i, f := range forms {
		if i >= maxPromptForms {
			break
		}
		names := make([]string, 0, len(f.Fields))
		for _, field := range f.Fields {
			name := field.Name
			if name == "" {
				name = field.Placeholder
			}
			if name == "" {
				name = field.Type
			}
			names = append(names, name)
		}
		details = append(details, fmt.Sprintf("%s med %d fält [%s], knapptext %q",
			f.Type, len(f.Fields), strings.Join(names, ", "), f.SubmitText))
	}
	fmt.Fprintf(sb, "- Formulär: %d st - %s\n", len(forms), strings.Join(details, "; "))
}

func writeCTAs(sb *strings.Builder, ctas []leadscan.CTAButton) {
	texts := make([]string, 0, maxPromptCTAs)
	for i, cta := range ctas {
		if i >= maxPromptCTAs {
			break
		}
		texts = append(texts, fmt.Sprintf("%q", cta.Text))
	}
	fmt.Fprintf(sb, "- CTA-knappar: %s\n", strings.Join(texts, ", "))
}

func writeProof(sb *strings.Builder, proof []leadscan.SocialProof) {
	texts := make([]string, 0, maxPromptProof)
	for i, p := range proof {
		if i >= maxPromptProof {
			break
		}
		if p.Content != "" {
			texts = append(texts, fmt.Sprintf("%s: %q", p.Type, truncate(p.Content, maxProofContentLen)))
		} else {
			texts = append(texts, fmt.Sprintf("%s (%d)", p.Type, p.Count))
		}
	}
	fmt.Fprintf(sb, "- Social proof: %d st - %s\n", len(proof), strings.Join(texts, ", "))
}

func writeLeaks(sb *strings.Builder, elements *leadscan.ExtractedElements) {
	emails := make([]string, 0, maxPromptLeaks)
	for i, m := range elements.MailtoLinks {
		if i >= maxPromptLeaks {
			break
		}
		emails = append(emails, m.Email)
	}
	fmt.Fprintf(sb, "- Mailto-länkar (läckande tratt): %d st - %s\n", len(elements.MailtoLinks), strings.Join(emails, ", "))

	urls := make([]string, 0, maxPromptLeaks)
	for i, p := range elements.UngatedPDFs {
		if i >= maxPromptLeaks {
			break
		}
		urls = append(urls, p.URL)
	}
	fmt.Fprintf(sb, "- Öppna PDF:er (läckande tratt): %d st - %s\n", len(elements.UngatedPDFs), strings.Join(urls, ", "))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

const promptContract = `
SKRIV EN DJUPGÅENDE ANALYS. Svara ENDAST med JSON enligt detta schema:
{
  "shortDescription": "3-4 meningar som positionerar företaget och identifierar kärnproblemet med deras lead generation.",
  "leadMagnetsAnalysis": "2-3 stycken om deras lead magnets. Nämn specifika exempel. Vad är bra? Vad saknas?",
  "formsAnalysis": "2 stycken om formulärdesign. Hur många fält? Onödig friktion?",
  "ctaAnalysis": "1-2 stycken om deras CTA:er. Svaga eller starka? Saknas mellansteg för kall trafik?",
  "logicalVerdict": "2-3 stycken hård, konkret kritik. Identifiera specifika problem: onödig friktion, dödsgränder efter konvertering, läckande trattar. Provocerande men sakligt.",
  "summaryAssessment": "3-4 stycken sammanfattande bedömning. Vad är företaget bra på? Var misslyckas de?",
  "finalHook": "1-2 meningar som motiverar läsaren att agera på rapporten.",
  "criteriaExplanations": {
    "value_proposition": "1 mening som motiverar betyget.",
    "call_to_action": "1 mening.",
    "lead_magnets": "1 mening.",
    "form_design": "1 mening.",
    "social_proof": "1 mening.",
    "guiding_content": "1 mening.",
    "offer_structure": "1 mening."
  },
  "adjustedScores": {
    "value_proposition": 0
  }
}

adjustedScores är valfritt: ange ENDAST kriterier där innehållet du läst ger tydligt stöd
för ett annat betyg än det strukturella, med heltal 1-5. Utelämna fältet helt annars.`
