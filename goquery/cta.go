package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/konverta/leadscan"
)

// ctaKeywords mark action-oriented link and button text, in Swedish and
// English.
var ctaKeywords = []string{
	"köp", "buy", "beställ", "order", "boka", "book",
	"prova", "try", "starta", "start", "börja", "begin",
	"kontakta", "contact", "få", "get", "hämta", "fetch",
	"registrera", "register", "sign up", "anmäl", "subscribe",
	"demo", "offert", "quote", "gratis", "free",
}

// buttonClasses are class fragments that mark an element as button-styled.
var buttonClasses = []string{"btn", "button", "cta"}

// maxCTATextLength filters out long prose links that merely contain an
// action keyword.
const maxCTATextLength = 50

func extractCTAButtons(doc *goquery.Document) []leadscan.CTAButton {
	ctas := []leadscan.CTAButton{}

	doc.Find("button, a").Each(func(_ int, elem *goquery.Selection) {
		text := cleanText(elem)
		lower := strings.ToLower(text)
		class, _ := elem.Attr("class")
		lowerClass := strings.ToLower(class)

		isCTA := false
		for _, kw := range ctaKeywords {
			if strings.Contains(lower, kw) {
				isCTA = true
				break
			}
		}
		if !isCTA {
			for _, c := range buttonClasses {
				if strings.Contains(lowerClass, c) {
					isCTA = true
					break
				}
			}
		}
		if !isCTA || len([]rune(text)) >= maxCTATextLength {
			return
		}

		cta := leadscan.CTAButton{
			Text: text,
			Tag:  goquery.NodeName(elem),
		}
		if cta.Tag == "a" {
			cta.Href, _ = elem.Attr("href")
		}
		if class != "" {
			cta.ClassHints = strings.Fields(class)
		}
		ctas = append(ctas, cta)
	})

	return ctas
}
