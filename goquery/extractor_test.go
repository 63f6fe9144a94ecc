package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/goquery"
)

const baseURL = "https://example.se/"

func extract(t *testing.T, html string) *leadscan.ExtractedElements {
	t.Helper()
	elements, err := goquery.NewExtractor().Extract(html, baseURL)
	require.NoError(t, err)
	return elements
}

func TestExtractor_Extract_CompanyInfo(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:site_name", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:site_name" content="Acme AB">
<title>Startsida | Något Helt Annat Och Längre</title>
<meta name="description" content="Vi hjälper B2B-företag att växa.">
</head><body></body></html>`

		elements := extract(t, html)
		assert.Equal(t, "Acme AB", elements.CompanyInfo.Name)
		assert.Equal(t, "Vi hjälper B2B-företag att växa.", elements.CompanyInfo.Description)
	})

	t.Run("falls back to shorter title part", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Redovisning för växande bolag | Acme</title></head><body></body></html>`

		elements := extract(t, html)
		assert.Equal(t, "Acme", elements.CompanyInfo.Name)
	})

	t.Run("falls back to domain name", func(t *testing.T) {
		t.Parallel()

		elements := extract(t, `<html><head></head><body></body></html>`)
		assert.Equal(t, "Example", elements.CompanyInfo.Name)
	})

	t.Run("first paragraph as description fallback", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>Vi bygger digitala tjänster för fastighetsbranschen.</p></main></body></html>`

		elements := extract(t, html)
		assert.Equal(t, "Vi bygger digitala tjänster för fastighetsbranschen.", elements.CompanyInfo.Description)
	})
}

func TestExtractor_Extract_LeadMagnets(t *testing.T) {
	t.Parallel()

	t.Run("keyword link becomes magnet with matched type", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/resurser/guide">Ladda ner vår guide</a></body></html>`

		elements := extract(t, html)
		require.Len(t, elements.LeadMagnets, 1)
		assert.Equal(t, "Ladda ner vår guide", elements.LeadMagnets[0].Text)
		assert.Equal(t, "ladda ner", elements.LeadMagnets[0].Type)
		assert.Equal(t, "https://example.se/resurser/guide", elements.LeadMagnets[0].URL)
		assert.False(t, elements.LeadMagnets[0].IsGated)
	})

	t.Run("pdf link inside form is gated and not leaking", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<form action="/download"><input type="email" name="email"><a href="/guide.pdf">Hämta PDF</a></form>
</body></html>`

		elements := extract(t, html)
		require.Len(t, elements.LeadMagnets, 1)
		assert.True(t, elements.LeadMagnets[0].IsGated)
		assert.Empty(t, elements.UngatedPDFs)
	})

	t.Run("same pdf link outside any form leaks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><a href="/guide.pdf">Hämta PDF</a></div></body></html>`

		elements := extract(t, html)
		require.Len(t, elements.LeadMagnets, 1)
		assert.False(t, elements.LeadMagnets[0].IsGated)
		require.Len(t, elements.UngatedPDFs, 1)
		assert.Equal(t, "https://example.se/guide.pdf", elements.UngatedPDFs[0].URL)
	})

	t.Run("modal ancestor gates the link", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="newsletter-modal"><a href="/rapport.pdf">Årsrapport</a></div></body></html>`

		elements := extract(t, html)
		require.Len(t, elements.LeadMagnets, 1)
		assert.True(t, elements.LeadMagnets[0].IsGated)
		assert.Empty(t, elements.UngatedPDFs)
	})
}

func TestExtractor_Extract_Forms(t *testing.T) {
	t.Parallel()

	t.Run("email only is newsletter", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<form><input type="email" name="email"><button type="submit">Prenumerera</button></form>
</body></html>`

		elements := extract(t, html)
		require.Len(t, elements.Forms, 1)
		assert.Equal(t, leadscan.FormNewsletter, elements.Forms[0].Type)
		assert.Equal(t, "Prenumerera", elements.Forms[0].SubmitText)
		assert.True(t, elements.Forms[0].HasEmailField)
	})

	t.Run("short form with name email phone is lead capture", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<form>
<input type="text" name="namn">
<input type="email" name="email">
<input type="tel" name="telefon">
<button type="submit">Boka nu</button>
</form>
</body></html>`

		elements := extract(t, html)
		require.Len(t, elements.Forms, 1)
		form := elements.Forms[0]
		assert.Equal(t, leadscan.FormLeadCapture, form.Type)
		assert.Len(t, form.Fields, 3)
		assert.True(t, form.HasEmailField)
		assert.True(t, form.HasNameField)
		assert.True(t, form.HasPhoneField)
	})

	t.Run("long form is contact", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<form>
<input type="text" name="namn">
<input type="email" name="email">
<input type="tel" name="telefon">
<input type="text" name="company">
<textarea name="message"></textarea>
<input type="submit" value="Skicka">
</form>
</body></html>`

		elements := extract(t, html)
		require.Len(t, elements.Forms, 1)
		assert.Equal(t, leadscan.FormContact, elements.Forms[0].Type)
		assert.Equal(t, "Skicka", elements.Forms[0].SubmitText)
	})

	t.Run("search form excluded from lead forms", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<form class="search-form"><input type="text" name="q"></form>
</body></html>`

		elements := extract(t, html)
		require.Len(t, elements.Forms, 1)
		assert.Equal(t, leadscan.FormSearch, elements.Forms[0].Type)
		assert.Empty(t, elements.LeadForms())
	})

	t.Run("hidden fields are skipped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<form><input type="hidden" name="csrf"><input type="email" name="email"></form>
</body></html>`

		elements := extract(t, html)
		require.Len(t, elements.Forms, 1)
		assert.Len(t, elements.Forms[0].Fields, 1)
	})
}

func TestExtractor_Extract_CTAButtons(t *testing.T) {
	t.Parallel()

	t.Run("keyword text and button classes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/demo">Boka gratis demo</a>
<a href="/om-oss" class="btn btn-secondary">Om oss</a>
<a href="/blogg">Vår blogg</a>
</body></html>`

		elements := extract(t, html)
		require.Len(t, elements.CTAButtons, 2)
		assert.Equal(t, "Boka gratis demo", elements.CTAButtons[0].Text)
		assert.Equal(t, "/demo", elements.CTAButtons[0].Href)
		assert.Equal(t, []string{"btn", "btn-secondary"}, elements.CTAButtons[1].ClassHints)
	})

	t.Run("long prose links are ignored", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/artikel">Läs om hur du kan boka ett möte med våra experter och få en genomgång av hela processen</a>
</body></html>`

		elements := extract(t, html)
		assert.Empty(t, elements.CTAButtons)
	})
}

func TestExtractor_Extract_SocialProof(t *testing.T) {
	t.Parallel()

	t.Run("blockquote becomes quote", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><blockquote>Bästa leverantören vi jobbat med.</blockquote></body></html>`

		elements := extract(t, html)
		require.Len(t, elements.SocialProof, 1)
		assert.Equal(t, leadscan.ProofQuote, elements.SocialProof[0].Type)
		assert.Equal(t, "Bästa leverantören vi jobbat med.", elements.SocialProof[0].Content)
	})

	t.Run("testimonial container detected by class", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="testimonial-slider">Kunderna älskar oss.</div></body></html>`

		elements := extract(t, html)
		require.Len(t, elements.SocialProof, 1)
		assert.Equal(t, leadscan.ProofTestimonial, elements.SocialProof[0].Type)
	})

	t.Run("logo wall needs at least three images", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="client-logos"><img src="a.png"><img src="b.png"><img src="c.png"><img src="d.png"></div>
</body></html>`

		elements := extract(t, html)
		require.Len(t, elements.SocialProof, 1)
		assert.Equal(t, leadscan.ProofClientLogos, elements.SocialProof[0].Type)
		assert.Equal(t, 4, elements.SocialProof[0].Count)
	})

	t.Run("two images are decoration not logos", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="client-logos"><img src="a.png"><img src="b.png"></div></body></html>`

		elements := extract(t, html)
		assert.Empty(t, elements.SocialProof)
	})

	t.Run("rating mentions in page text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Betyg 4,8 av 5 från över 200 kunder. 4.9/5 på Trustpilot.</p></body></html>`

		elements := extract(t, html)
		require.Len(t, elements.SocialProof, 1)
		assert.Equal(t, leadscan.ProofRatings, elements.SocialProof[0].Type)
		assert.Equal(t, 2, elements.SocialProof[0].Count)
	})
}

func TestExtractor_Extract_MailtoLinks(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<p>Frågor? Skriv till <a href="mailto:info@example.se?subject=Offert">vår säljavdelning</a> direkt.</p>
</body></html>`

	elements := extract(t, html)
	require.Len(t, elements.MailtoLinks, 1)
	assert.Equal(t, "info@example.se", elements.MailtoLinks[0].Email)
	assert.Equal(t, "vår säljavdelning", elements.MailtoLinks[0].LinkText)
	assert.Contains(t, elements.MailtoLinks[0].Context, "Frågor?")
}

func TestExtractor_Extract_ValueProposition(t *testing.T) {
	t.Parallel()

	t.Run("h1 hero and subheadline", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="hero">
<h1>Bokföring som sköter sig själv</h1>
<p>Automatisera er redovisning på en vecka.</p>
</div>
</body></html>`

		elements := extract(t, html)
		vp := elements.ValueProposition
		assert.Equal(t, "Bokföring som sköter sig själv", vp.H1)
		assert.Equal(t, 30, vp.H1Length)
		assert.True(t, vp.HasHero)
		assert.True(t, vp.HasSubheadline)
		assert.Equal(t, "Automatisera er redovisning på en vecka.", vp.Subheadline)
	})

	t.Run("h1 length counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		elements := extract(t, `<html><body><h1>Lån på dina villkor</h1></body></html>`)
		assert.Equal(t, 19, elements.ValueProposition.H1Length)
	})

	t.Run("missing everything stays empty", func(t *testing.T) {
		t.Parallel()

		elements := extract(t, `<html><body><p>Bara text.</p></body></html>`)
		vp := elements.ValueProposition
		assert.Empty(t, vp.H1)
		assert.Zero(t, vp.H1Length)
		assert.False(t, vp.HasHero)
		assert.False(t, vp.HasSubheadline)
	})
}

func TestExtractor_Extract_OfferStructure(t *testing.T) {
	t.Parallel()

	t.Run("free cta and tiered pricing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/demo" class="btn">Prova gratis</a>
<section class="pricing">
<div class="plan">Start</div>
<div class="plan">Pro</div>
<div class="plan">Enterprise</div>
</section>
</body></html>`

		elements := extract(t, html)
		offer := elements.OfferStructure
		assert.True(t, offer.HasFreeOffer)
		assert.True(t, offer.HasPricing)
		assert.True(t, offer.HasSegmentedPricing)
		assert.Equal(t, 3, offer.PricingTiers)
	})

	t.Run("no offer signals", func(t *testing.T) {
		t.Parallel()

		elements := extract(t, `<html><body><p>Om oss.</p></body></html>`)
		offer := elements.OfferStructure
		assert.False(t, offer.HasFreeOffer)
		assert.False(t, offer.HasPricing)
		assert.False(t, offer.HasSegmentedPricing)
		assert.Zero(t, offer.PricingTiers)
	})
}

func TestExtractor_Extract_Idempotent(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Acme | Redovisning</title></head><body>
<div class="hero"><h1>Bokföring utan friktion</h1><p>Kom igång idag.</p></div>
<form><input type="email" name="email"><button type="submit">Få min analys</button></form>
<a href="/guide.pdf">Ladda ner guiden</a>
<a href="mailto:info@acme.se">Maila oss</a>
<blockquote>Fantastisk tjänst.</blockquote>
</body></html>`

	extractor := goquery.NewExtractor()
	first, err := extractor.Extract(html, baseURL)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := extractor.Extract(html, baseURL)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExtractor_Extract_EmptyPageHasNonNilSlices(t *testing.T) {
	t.Parallel()

	elements := extract(t, `<html><body></body></html>`)
	assert.NotNil(t, elements.LeadMagnets)
	assert.NotNil(t, elements.Forms)
	assert.NotNil(t, elements.CTAButtons)
	assert.NotNil(t, elements.SocialProof)
	assert.NotNil(t, elements.MailtoLinks)
	assert.NotNil(t, elements.UngatedPDFs)
}
