package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/konverta/leadscan"
)

// heroKeywords are class fragments that mark a hero or banner section.
var heroKeywords = []string{"hero", "banner", "jumbotron", "header", "intro"}

func extractValueProposition(doc *goquery.Document) leadscan.ValueProposition {
	var vp leadscan.ValueProposition

	h1 := doc.Find("h1").First()
	if h1.Length() > 0 {
		vp.H1 = cleanText(h1)
		vp.H1Length = len([]rune(vp.H1))
	}

	doc.Find("section, div, header").EachWithBreak(func(_ int, elem *goquery.Selection) bool {
		classes := classAndID(elem)
		for _, kw := range heroKeywords {
			if strings.Contains(classes, kw) {
				vp.HasHero = true
				vp.HeroText = truncate(cleanText(elem), 300)
				return false
			}
		}
		return true
	})

	// Subheadline: the first h2 or paragraph sibling following the H1.
	if h1.Length() > 0 {
		if next := h1.NextAllFiltered("h2, p").First(); next.Length() > 0 {
			vp.HasSubheadline = true
			vp.Subheadline = truncate(cleanText(next), 150)
		}
	}

	return vp
}
