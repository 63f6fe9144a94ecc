package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/industry"
)

// Ensure StaticEnricher implements leadscan.Enricher.
var _ leadscan.Enricher = (*StaticEnricher)(nil)

// StaticEnricher produces template narratives without calling a model.
// Used when no model credentials are configured.
type StaticEnricher struct{}

// Enrich returns the static template sections for the analysis.
func (StaticEnricher) Enrich(_ context.Context, task *leadscan.EnrichmentTask) (*leadscan.NarrativeSections, error) {
	return FallbackSections(task.Elements, task.Analysis, task.Industry), nil
}

// FallbackSections builds narrative sections from static templates, used
// whenever the model is unavailable or returns an unparseable response.
// The text is generic by necessity but always consistent with the
// structural analysis it accompanies.
func FallbackSections(elements *leadscan.ExtractedElements, analysis *leadscan.AnalysisResult, ind leadscan.Industry) *leadscan.NarrativeSections {
	company := elements.CompanyInfo.Name
	if company == "" {
		company = "Företaget"
	}
	label := industry.Label(ind.Key)

	hasMagnets := len(elements.LeadMagnets) > 0
	hasForms := len(elements.LeadForms()) > 0
	hasProof := len(elements.SocialProof) > 0
	mailtoCount := len(elements.MailtoLinks)
	pdfCount := len(elements.UngatedPDFs)

	return &leadscan.NarrativeSections{
		ShortDescription:    fallbackShortDescription(company, label, hasMagnets, hasForms),
		LeadMagnetsAnalysis: fallbackLeadMagnets(len(elements.LeadMagnets), label),
		FormsAnalysis:       fallbackForms(len(elements.LeadForms())),
		CTAAnalysis:         fallbackCTAs(len(elements.CTAButtons)),
		LogicalVerdict:      fallbackLogicalVerdict(mailtoCount, pdfCount, hasMagnets),
		SummaryAssessment:   fallbackSummary(company, analysis, mailtoCount, pdfCount, hasMagnets, hasForms, hasProof),
		FinalHook:           fallbackFinalHook(analysis.IssuesFound),
	}
}

func fallbackShortDescription(company, label string, hasMagnets, hasForms bool) string {
	switch {
	case !hasMagnets && !hasForms:
		return fmt.Sprintf("%s verkar inom %s men agerar som en digital broschyr snarare än en "+
			"lead-genererande maskin. Webbplatsen saknar helt mekanismer för att fånga besökares "+
			"kontaktuppgifter eller bygga en pipeline. Varje besökare som lämnar utan att konvertera "+
			"är en förlorad affärsmöjlighet.", company, label)
	case !hasMagnets:
		return fmt.Sprintf("%s har grundläggande kontaktvägar men saknar lead magnets som fångar "+
			"besökare tidigt i köpresan. Ni förlitar er helt på att besökaren aktivt tar kontakt - "+
			"vilket 95%% inte gör. Er webbsida arbetar inte för er när ni sover.", company)
	default:
		return fmt.Sprintf("%s har strukturen på plats men utnyttjar inte sin potential fullt ut. "+
			"Det finns element för lead generation men de saknar den strategiska sammankoppling som "+
			"maximerar konvertering. Små justeringar kan ge stora resultat.", company)
	}
}

func fallbackLeadMagnets(count int, label string) string {
	if count == 0 {
		return fmt.Sprintf("Inga lead magnets identifierade. Detta är en fundamental brist för "+
			"företag inom %s. Utan värdefullt innehåll att erbjuda har besökare ingen anledning "+
			"att lämna sina kontaktuppgifter.", label)
	}
	return fmt.Sprintf("Vi identifierade %d potentiella lead magnets på sidan. "+
		"Majoriteten är dock inte strategiskt placerade eller saknar tydlig gate.", count)
}

func fallbackForms(count int) string {
	if count == 0 {
		return "Inga konverteringsformulär hittades. Detta betyder att besökare inte har något " +
			"enkelt sätt att ta kontakt eller visa intresse. En fundamental brist i konverteringskedjan."
	}
	return fmt.Sprintf("%d formulär hittades. Dock saknas ofta tydlig value proposition vid formuläret.", count)
}

func fallbackCTAs(count int) string {
	if count == 0 {
		return "Inga tydliga CTA-knappar hittades. Utan handlingsuppmaningar lämnas besökaren " +
			"att själv lista ut nästa steg - vilket de flesta aldrig gör."
	}
	return fmt.Sprintf("%d CTA:er identifierades. Granska att texterna beskriver värdet av att "+
		"klicka, inte bara uppmanar till generisk kontakt.", count)
}

func fallbackLogicalVerdict(mailtoCount, pdfCount int, hasMagnets bool) string {
	var issues []string
	if mailtoCount > 0 {
		issues = append(issues, fmt.Sprintf("genom att använda %d mailto-länkar tappar ni all "+
			"spårbarhet och kontroll över konverteringen", mailtoCount))
	}
	if pdfCount > 0 {
		issues = append(issues, fmt.Sprintf("att ge bort %d PDF-resurser utan gate innebär att "+
			"ni kastar bort 95%% av trafiken som är i research-fasen", pdfCount))
	}
	if !hasMagnets {
		issues = append(issues, "utan gated content förlitar ni er helt på att besökare aktivt "+
			"tar kontakt - vilket majoriteten inte gör")
	}

	issuesText := "flera grundläggande brister"
	if len(issues) > 0 {
		issuesText = strings.Join(issues, "; ")
	}

	return fmt.Sprintf("Webbplatsen lider av ett massivt 'leaky funnel'-syndrom. %s. "+
		"Det är en logisk kortslutning i en marknad där förtroende och expertis är valutan - "+
		"ni ger bort värde utan att få något tillbaka.", capitalize(issuesText))
}

func fallbackSummary(company string, analysis *leadscan.AnalysisResult, mailtoCount, pdfCount int, hasMagnets, hasForms, hasProof bool) string {
	paragraphs := make([]string, 0, 8)
	overall := analysis.OverallScore

	switch {
	case overall < 2.0:
		paragraphs = append(paragraphs, fmt.Sprintf("%s har allvarliga brister i sin lead "+
			"generation-strategi. Med %.1f/5 i betyg ligger ni långt under vad som krävs för att "+
			"konkurrera effektivt online.", company, overall))
	case overall < 3.5:
		paragraphs = append(paragraphs, fmt.Sprintf("%s har flera tydliga förbättringsområden i sin "+
			"konverteringstratt. Betyget %.1f/5 indikerar att grunderna finns men att ni läcker "+
			"leads på vägen.", company, overall))
	default:
		paragraphs = append(paragraphs, fmt.Sprintf("%s har en grundläggande struktur på plats med "+
			"%.1f/5 i betyg. Men 'grundläggande' räcker inte i en konkurrensutsatt marknad - ni "+
			"missar fortfarande betydande möjligheter.", company, overall))
	}

	switch {
	case mailtoCount > 0:
		paragraphs = append(paragraphs, fmt.Sprintf("Er största läcka är de %d mailto-länkarna som "+
			"exponerar er e-postadress direkt. Varje klick på dessa är en lead ni aldrig kan spåra, "+
			"nurtura eller följa upp systematiskt.", mailtoCount))
	case pdfCount > 0:
		paragraphs = append(paragraphs, fmt.Sprintf("Ni ger bort %d värdefulla PDF-resurser utan att "+
			"begära något i utbyte. Det är som att ha en butik utan kassa - folk tar varorna och går.", pdfCount))
	case !hasMagnets:
		paragraphs = append(paragraphs, "Er största brist är avsaknaden av lead magnets. Utan något "+
			"värdefullt att erbjuda i utbyte mot e-post har besökare ingen anledning att identifiera "+
			"sig innan de är köpredo.")
	default:
		paragraphs = append(paragraphs, "Er konverteringstratt har flera små läckor som tillsammans "+
			"skapar betydande förluster. Ingen enskild katastrof, men summan av bristerna kostar er "+
			"leads varje dag.")
	}

	paragraphs = append(paragraphs, fmt.Sprintf("Kostnaden för dessa %d identifierade problem är "+
		"inte synlig i er budget, men den är verklig i förlorade affärer. Varje månad som går utan "+
		"åtgärd multiplicerar förlusten.", analysis.IssuesFound))

	paragraphs = append(paragraphs, "Era konkurrenter som har optimerade konverteringsflöden fångar "+
		"de leads ni missar. I en digital värld där besökaren jämför på sekunder är er nuvarande "+
		"setup en konkurrensnackdel.")

	if !hasForms {
		paragraphs = append(paragraphs, "Besökare som landar på er sida har inget tydligt sätt att "+
			"ta nästa steg. Utan formulär eller bokningsvägar studsar de vidare till någon som gör "+
			"det enkelt att agera.")
	} else {
		paragraphs = append(paragraphs, "Besökaren fattar beslut om att stanna eller gå inom 3 "+
			"sekunder. Er nuvarande uppläggning ger inte tillräckligt starka signaler för att fånga "+
			"deras uppmärksamhet och leda dem vidare.")
	}

	if !hasProof {
		paragraphs = append(paragraphs, "Ingen synlig social proof betyder att besökare måste lita "+
			"blint på era påståenden. Det gör de inte. Utan kundcitat, logotyper eller resultat har "+
			"ni ett förtroendeunderskott.")
	} else {
		paragraphs = append(paragraphs, "Ni har social proof men den utnyttjas inte strategiskt nära "+
			"era konverteringspunkter. Bevis på resultat måste synas när besökaren överväger att "+
			"agera - inte begravd på en undersida.")
	}

	paragraphs = append(paragraphs, "Varje dag er webbsida ser ut så här förlorar ni potentiella "+
		"kunder till konkurrenter som förstår digital lead generation. Fördröjning är inte neutralt "+
		"- det är en aktiv kostnad.")

	paragraphs = append(paragraphs, "Fixarna som krävs är konkreta och mätbara. Frågan är inte om "+
		"ni har råd att investera i förbättringar - frågan är om ni har råd att låta bli och "+
		"fortsätta läcka leads till konkurrenterna.")

	return strings.Join(paragraphs, "\n\n")
}

func fallbackFinalHook(issuesCount int) string {
	return fmt.Sprintf("Detta är inte en djupgående analys, men vi har trots det identifierat %d "+
		"specifika logiska fel som hindrar er från att dominera er marknad. För att få den "+
		"kompletta åtgärdsplanen och tekniska specifikationer, beställ den fullständiga rapporten.", issuesCount)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
