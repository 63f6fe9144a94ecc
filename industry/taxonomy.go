// Package industry classifies the business sector of a page by scoring
// extracted text against a fixed keyword taxonomy. The taxonomy is compiled
// once at process start and never mutated.
package industry

import (
	"regexp"
	"strings"
)

// GeneralKey and GeneralLabel are the fallback sector when no keyword
// matches any industry.
const (
	GeneralKey   = "general"
	GeneralLabel = "Allmänt B2B"
)

// sector is one entry of the keyword taxonomy. Tone and terminology feed
// the narrative enrichment prompt; keywords drive classification.
type sector struct {
	key         string
	label       string
	tone        string
	terminology []string
	keywords    []keyword
}

// keyword is a compiled whole-word pattern with its specificity weight.
// Multi-word keywords are weighted 1 + 0.5*(wordCount-1).
type keyword struct {
	re     *regexp.Regexp
	weight float64
}

func compileKeywords(words ...string) []keyword {
	out := make([]keyword, 0, len(words))
	for _, w := range words {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(w)) + `\b`)
		weight := 1 + 0.5*float64(len(strings.Fields(w))-1)
		out = append(out, keyword{re: re, weight: weight})
	}
	return out
}

// taxonomy lists the ten supported sectors in fixed order; ties in scoring
// resolve to the earlier entry so classification stays deterministic.
var taxonomy = []sector{
	{
		key:   "finance",
		label: "Finans & Transaktionsrådgivning",
		tone:  "förtroendebyggande, precision, seriositet, konfidentialitet",
		terminology: []string{
			"exit-strategi", "värderingsmultipel", "due diligence", "closing",
		},
		keywords: compileKeywords(
			"bank", "lån", "investering", "försäkring", "pension", "kapital",
			"värdering", "m&a", "transaktion", "förvärv", "avyttring", "rådgivning",
			"due diligence", "exit", "private equity", "venture", "fond", "aktie",
			"obligation", "ränta", "kredit", "finansiering", "börs", "handel",
			"investment", "acquisition", "valuation", "merger", "advisory",
			"equity", "debt", "portfolio", "asset", "wealth",
		),
	},
	{
		key:   "saas",
		label: "SaaS & Teknologi",
		tone:  "teknisk men tillgänglig, resultatfokuserad, innovativ",
		terminology: []string{
			"onboarding", "churn", "MRR", "ARR", "NPS",
		},
		keywords: compileKeywords(
			"plattform", "mjukvara", "app", "dashboard", "integration", "api",
			"moln", "prenumeration", "abonnemang", "automatisera", "workflow",
			"saas", "paas", "system", "digital", "teknologi", "verktyg",
			"software", "cloud", "subscription", "platform", "automation",
			"enterprise", "startup", "scale", "growth", "analytics",
		),
	},
	{
		key:   "ecommerce",
		label: "E-handel & Retail",
		tone:  "direkt, konverteringsfokuserad, brådskande",
		terminology: []string{
			"AOV", "cart abandonment", "upsell", "cross-sell",
		},
		keywords: compileKeywords(
			"köp", "handla", "varukorg", "leverans", "produkt", "pris",
			"erbjudande", "rea", "rabatt", "webshop", "butik", "sortiment",
			"beställning", "frakt", "retur", "lager", "grossist", "detaljhandel",
			"shop", "cart", "checkout", "shipping", "product", "order",
			"retail", "wholesale", "inventory",
		),
	},
	{
		key:   "consulting",
		label: "Konsulttjänster",
		tone:  "auktoritär, insiktsfull, metodisk",
		terminology: []string{
			"engagement", "scope", "deliverable", "roadmap",
		},
		keywords: compileKeywords(
			"rådgivning", "konsult", "expertis", "strategi", "transformation",
			"projekt", "uppdrag", "analys", "utredning", "implementering",
			"förändring", "ledarskap", "organisation", "process", "effektivisering",
			"consulting", "advisory", "strategy", "management", "implementation",
			"transformation", "leadership", "change",
		),
	},
	{
		key:   "healthcare",
		label: "Hälsa & Sjukvård",
		tone:  "trygg, professionell, empatisk, kvalitetsfokuserad",
		terminology: []string{
			"patientresa", "vårdkvalitet", "remiss",
		},
		keywords: compileKeywords(
			"hälsa", "vård", "patient", "behandling", "klinik", "läkare",
			"sjukvård", "medicin", "diagnos", "terapi", "rehabilitering",
			"tandvård", "vårdcentral", "specialistvård", "omsorg",
			"health", "care", "patient", "treatment", "clinic", "medical",
			"therapy", "wellness",
		),
	},
	{
		key:   "realestate",
		label: "Fastighet & Mäkleri",
		tone:  "lokal expertis, personlig service, marknadskännedom",
		terminology: []string{
			"visning", "budgivning", "tillträde", "kontraktsskrivning",
		},
		keywords: compileKeywords(
			"fastighet", "bostad", "hyra", "köpa", "sälja", "mäklare",
			"lägenhet", "villa", "tomt", "bygga", "renovera", "investera",
			"hyresrätt", "bostadsrätt", "kommersiell", "lokal",
			"property", "real estate", "housing", "rental", "mortgage",
		),
	},
	{
		key:   "legal",
		label: "Juridik & Advokat",
		tone:  "korrekt, formell, tillförlitlig, diskret",
		terminology: []string{
			"due diligence", "closing", "SPA", "NDA",
		},
		keywords: compileKeywords(
			"juridik", "advokat", "jurist", "avtal", "tvist", "rätt",
			"process", "domstol", "lag", "bolagsrätt", "arbetsrätt",
			"immaterialrätt", "skatterätt", "förhandling", "rådgivning",
			"legal", "law", "attorney", "contract", "litigation", "compliance",
		),
	},
	{
		key:   "marketing",
		label: "Marknadsföring & Reklam",
		tone:  "kreativ, resultatdriven, trendig",
		terminology: []string{
			"ROI", "CTR", "CPA", "funnel", "attribution",
		},
		keywords: compileKeywords(
			"marknadsföring", "reklam", "kampanj", "varumärke", "kommunikation",
			"digital", "sociala medier", "content", "seo", "annonsering",
			"strategi", "målgrupp", "konvertering", "leads", "trafik",
			"marketing", "advertising", "brand", "campaign", "social media",
			"content", "digital", "conversion", "growth",
		),
	},
	{
		key:   "manufacturing",
		label: "Tillverkning & Industri",
		tone:  "kvalitetsfokuserad, pålitlig, teknisk kompetens",
		terminology: []string{
			"OEM", "lead time", "batch", "certifiering",
		},
		keywords: compileKeywords(
			"tillverkning", "produktion", "fabrik", "industri", "maskin",
			"leverantör", "kvalitet", "process", "automation", "logistik",
			"materialhantering", "lean", "iso", "certifiering",
			"manufacturing", "production", "factory", "industrial", "supply chain",
		),
	},
	{
		key:   "education",
		label: "Utbildning & Lärande",
		tone:  "pedagogisk, inspirerande, kunskapsbyggande",
		terminology: []string{
			"curriculum", "modul", "examen", "diplom",
		},
		keywords: compileKeywords(
			"utbildning", "kurs", "lärande", "skola", "universitet",
			"akademi", "certifiering", "kompetens", "utveckling", "träning",
			"workshop", "seminarium", "e-learning", "distans",
			"education", "learning", "training", "course", "certification",
		),
	},
}

// Tone returns the recommended narrative tone for an industry key.
func Tone(key string) string {
	for _, s := range taxonomy {
		if s.key == key {
			return s.tone
		}
	}
	return "professionell, direkt, logisk"
}

// Terminology returns industry-specific terminology examples.
func Terminology(key string) []string {
	for _, s := range taxonomy {
		if s.key == key {
			return s.terminology
		}
	}
	return nil
}

// Label returns the human-readable label for an industry key.
func Label(key string) string {
	for _, s := range taxonomy {
		if s.key == key {
			return s.label
		}
	}
	return GeneralLabel
}
