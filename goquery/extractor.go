// Package goquery implements HTML element extraction using the goquery
// library. The extractor is pure: missing elements degrade to empty values
// and only unparseable input produces an error.
package goquery

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/konverta/leadscan"
)

// Ensure Extractor implements leadscan.Extractor at compile time.
var _ leadscan.Extractor = (*Extractor)(nil)

// Extractor parses rendered HTML into typed conversion elements.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns every conversion signal found on the page.
// baseURL is used to resolve relative links; an unparseable baseURL is
// tolerated and leaves relative links as-is.
func (e *Extractor) Extract(html string, baseURL string) (*leadscan.ExtractedElements, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, leadscan.Errorf(leadscan.EINVALID, "parse html: %v", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	elements := leadscan.NewExtractedElements()
	elements.CompanyInfo = extractCompanyInfo(doc, baseURL)
	elements.LeadMagnets = extractLeadMagnets(doc, base)
	elements.Forms = extractForms(doc)
	elements.CTAButtons = extractCTAButtons(doc)
	elements.SocialProof = extractSocialProof(doc)
	elements.MailtoLinks = extractMailtoLinks(doc)
	elements.UngatedPDFs = extractUngatedPDFs(doc, base)
	elements.ValueProposition = extractValueProposition(doc)
	elements.OfferStructure = extractOfferStructure(doc, elements)
	return elements, nil
}

// titleSeparators are tried in order when deriving a company name from the
// page title. Titles commonly read "Page Title | Company" or
// "Company - Page Title"; the shorter side is usually the company.
var titleSeparators = []string{"|", "-", "–", "—", ":"}

func extractCompanyInfo(doc *goquery.Document, pageURL string) leadscan.CompanyInfo {
	var info leadscan.CompanyInfo

	if content, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		info.Name = strings.TrimSpace(content)
	}

	if info.Name == "" {
		title := cleanText(doc.Find("title").First())
		for _, sep := range titleSeparators {
			if strings.Contains(title, sep) {
				info.Name = strings.TrimSpace(shortestPart(strings.Split(title, sep)))
				break
			}
		}
		if info.Name == "" && title != "" {
			info.Name = truncate(title, 50)
		}
	}

	if info.Name == "" {
		info.Name = companyFromHost(pageURL)
	}

	if content, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		info.Description = strings.TrimSpace(content)
	}
	if info.Description == "" {
		if content, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
			info.Description = strings.TrimSpace(content)
		}
	}
	if info.Description == "" {
		for _, scope := range []string{"main", "article", "body"} {
			if p := doc.Find(scope + " p").First(); p.Length() > 0 {
				info.Description = truncate(cleanText(p), 300)
				break
			}
		}
	}

	return info
}

// shortestPart returns the shortest non-empty part of a split title.
func shortestPart(parts []string) string {
	shortest := ""
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if shortest == "" || len(p) < len(shortest) {
			shortest = p
		}
	}
	return shortest
}

// companyFromHost derives a capitalized company name from the page URL's
// host, e.g. "https://www.acme.se/about" yields "Acme".
func companyFromHost(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	label, _, _ := strings.Cut(host, ".")
	return capitalize(label)
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// cleanText returns the selection's text with runs of whitespace collapsed.
func cleanText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// truncate cuts a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// classAndID returns the element's class and id attributes joined and
// lowercased, for keyword matching.
func classAndID(s *goquery.Selection) string {
	class, _ := s.Attr("class")
	id, _ := s.Attr("id")
	return strings.ToLower(class + " " + id)
}

// resolveURL resolves href against base, returning href unchanged when base
// is nil or href is not a valid reference.
func resolveURL(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
