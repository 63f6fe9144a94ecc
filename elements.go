package leadscan

// CompanyInfo holds the best-effort company identity extracted from page
// metadata. Empty strings mean the signal was absent.
type CompanyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LeadMagnet is a downloadable or gated content offer found on the page.
type LeadMagnet struct {
	Text    string `json:"text"`
	URL     string `json:"url"`
	Type    string `json:"type"` // matched keyword, or "pdf"
	IsGated bool   `json:"isGated"`
}

// FormType classifies the purpose of a form.
type FormType string

// Form classifications, in detection precedence order.
const (
	FormNewsletter  FormType = "newsletter"
	FormContact     FormType = "contact"
	FormLeadCapture FormType = "lead_capture"
	FormSearch      FormType = "search"
	FormUnknown     FormType = "unknown"
)

// FormField describes one visible input, textarea, or select in a form.
type FormField struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
}

// Form describes a parsed form and its heuristic classification.
type Form struct {
	Fields        []FormField `json:"fields"`
	HasEmailField bool        `json:"hasEmailField"`
	HasNameField  bool        `json:"hasNameField"`
	HasPhoneField bool        `json:"hasPhoneField"`
	SubmitText    string      `json:"submitText"`
	Type          FormType    `json:"type"`
}

// CTAButton is a call-to-action candidate: a button or link with
// action-oriented text or button-like styling.
type CTAButton struct {
	Text       string   `json:"text"`
	Tag        string   `json:"tag"`
	Href       string   `json:"href"`
	ClassHints []string `json:"classHints"`
}

// SocialProofType identifies a category of trust signal.
type SocialProofType string

// Social proof categories.
const (
	ProofTestimonial SocialProofType = "testimonial"
	ProofQuote       SocialProofType = "quote"
	ProofClientLogos SocialProofType = "client_logos"
	ProofRatings     SocialProofType = "ratings"
)

// SocialProof is one detected trust signal. Content holds the text snippet
// for testimonials and quotes; Count holds the logo or rating-match count.
type SocialProof struct {
	Type    SocialProofType `json:"type"`
	Content string          `json:"content,omitempty"`
	Count   int             `json:"count,omitempty"`
}

// MailtoLink is a direct email link: a funnel leak that lets a prospect
// exit without being captured.
type MailtoLink struct {
	Email    string `json:"email"`
	LinkText string `json:"linkText"`
	Context  string `json:"context"`
}

// UngatedPDF is a PDF link reachable without a form: content given away
// without capturing the lead.
type UngatedPDF struct {
	URL      string `json:"url"`
	LinkText string `json:"linkText"`
}

// ValueProposition captures the hero-section signals of the page.
type ValueProposition struct {
	H1             string `json:"h1"`
	H1Length       int    `json:"h1Length"`
	HasHero        bool   `json:"hasHero"`
	HeroText       string `json:"heroText"`
	HasSubheadline bool   `json:"hasSubheadline"`
	Subheadline    string `json:"subheadline"`
}

// OfferStructure captures how the page structures its commercial offer.
type OfferStructure struct {
	HasFreeOffer        bool `json:"hasFreeOffer"`
	HasPricing          bool `json:"hasPricing"`
	HasSegmentedPricing bool `json:"hasSegmentedPricing"`
	PricingTiers        int  `json:"pricingTiers"`
}

// ExtractedElements aggregates every conversion signal extracted from one
// page. Collections are always non-nil: absence of a signal is an empty
// slice, never null.
type ExtractedElements struct {
	CompanyInfo      CompanyInfo      `json:"companyInfo"`
	LeadMagnets      []LeadMagnet     `json:"leadMagnets"`
	Forms            []Form           `json:"forms"`
	CTAButtons       []CTAButton      `json:"ctaButtons"`
	SocialProof      []SocialProof    `json:"socialProof"`
	MailtoLinks      []MailtoLink     `json:"mailtoLinks"`
	UngatedPDFs      []UngatedPDF     `json:"ungatedPdfs"`
	ValueProposition ValueProposition `json:"valueProposition"`
	OfferStructure   OfferStructure   `json:"offerStructure"`
}

// NewExtractedElements returns an ExtractedElements with all collections
// initialized to empty slices.
func NewExtractedElements() *ExtractedElements {
	return &ExtractedElements{
		LeadMagnets: []LeadMagnet{},
		Forms:       []Form{},
		CTAButtons:  []CTAButton{},
		SocialProof: []SocialProof{},
		MailtoLinks: []MailtoLink{},
		UngatedPDFs: []UngatedPDF{},
	}
}

// LeadForms returns the forms that can capture leads (everything except
// search forms).
func (e *ExtractedElements) LeadForms() []Form {
	forms := make([]Form, 0, len(e.Forms))
	for _, f := range e.Forms {
		if f.Type != FormSearch {
			forms = append(forms, f)
		}
	}
	return forms
}

// GatedMagnets returns the lead magnets protected behind a form or gate.
func (e *ExtractedElements) GatedMagnets() []LeadMagnet {
	magnets := make([]LeadMagnet, 0, len(e.LeadMagnets))
	for _, m := range e.LeadMagnets {
		if m.IsGated {
			magnets = append(magnets, m)
		}
	}
	return magnets
}

// ProofTypes returns the set of social proof categories present.
func (e *ExtractedElements) ProofTypes() map[SocialProofType]bool {
	types := make(map[SocialProofType]bool, len(e.SocialProof))
	for _, p := range e.SocialProof {
		types[p.Type] = true
	}
	return types
}

// Extractor converts raw HTML into typed conversion elements. Extraction is
// pure and total over well-formed input: missing elements degrade to empty
// values, never errors. Only unparseable HTML fails, with an EINVALID error.
type Extractor interface {
	// Extract parses html and returns the extracted elements.
	// baseURL is used to resolve relative links.
	Extract(html string, baseURL string) (*ExtractedElements, error)
}
