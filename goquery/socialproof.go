package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/konverta/leadscan"
)

// testimonialKeywords mark containers that hold customer testimonials.
var testimonialKeywords = []string{"testimonial", "review", "omdöme", "recension", "citat", "quote"}

// logoKeywords mark containers that hold client or partner logo walls.
var logoKeywords = []string{"logo", "kund", "client", "partner", "trust", "featured"}

// minLogoImages is the image count at which a container reads as a client
// logo wall rather than decoration.
const minLogoImages = 3

// ratingPattern matches rating mentions like "4,8 / 5", "4.9 av 5", or
// "5 stjärnor" anywhere in the page text.
var ratingPattern = regexp.MustCompile(`(\d[,.]?\d?)\s*(/\s*5|av\s*5|stjärnor|stars)`)

func extractSocialProof(doc *goquery.Document) []leadscan.SocialProof {
	proof := []leadscan.SocialProof{}

	doc.Find("div, section, article, blockquote").Each(func(_ int, elem *goquery.Selection) {
		classes := classAndID(elem)
		for _, kw := range testimonialKeywords {
			if strings.Contains(classes, kw) {
				proof = append(proof, leadscan.SocialProof{
					Type:    leadscan.ProofTestimonial,
					Content: truncate(cleanText(elem), 200),
				})
				break
			}
		}
	})

	doc.Find("blockquote").Each(func(_ int, quote *goquery.Selection) {
		proof = append(proof, leadscan.SocialProof{
			Type:    leadscan.ProofQuote,
			Content: truncate(cleanText(quote), 200),
		})
	})

	// First logo-wall container wins.
	doc.Find("div, section").EachWithBreak(func(_ int, elem *goquery.Selection) bool {
		classes := classAndID(elem)
		for _, kw := range logoKeywords {
			if strings.Contains(classes, kw) {
				if n := elem.Find("img").Length(); n >= minLogoImages {
					proof = append(proof, leadscan.SocialProof{
						Type:  leadscan.ProofClientLogos,
						Count: n,
					})
					return false
				}
			}
		}
		return true
	})

	if matches := ratingPattern.FindAllString(doc.Text(), -1); len(matches) > 0 {
		proof = append(proof, leadscan.SocialProof{
			Type:  leadscan.ProofRatings,
			Count: len(matches),
		})
	}

	return proof
}
