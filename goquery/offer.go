package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/konverta/leadscan"
)

// freeOfferKeywords mark low-barrier entry offers in CTA and magnet text.
var freeOfferKeywords = []string{
	"gratis", "free", "kostnadsfri", "prova", "provperiod", "trial", "demo",
}

// pricingKeywords mark pricing sections by class or id.
var pricingKeywords = []string{"pris", "price", "pricing"}

// tierKeywords mark individual plan cards inside a pricing section.
var tierKeywords = []string{"plan", "tier", "paket", "package", "card"}

// extractOfferStructure derives the commercial offer layout from already
// extracted CTAs and lead magnets plus pricing sections in the document.
func extractOfferStructure(doc *goquery.Document, elements *leadscan.ExtractedElements) leadscan.OfferStructure {
	var offer leadscan.OfferStructure

	for _, cta := range elements.CTAButtons {
		if containsFreeKeyword(cta.Text) {
			offer.HasFreeOffer = true
			break
		}
	}
	if !offer.HasFreeOffer {
		for _, m := range elements.LeadMagnets {
			if containsFreeKeyword(m.Text) {
				offer.HasFreeOffer = true
				break
			}
		}
	}

	doc.Find("section, div").EachWithBreak(func(_ int, elem *goquery.Selection) bool {
		classes := classAndID(elem)
		for _, kw := range pricingKeywords {
			if strings.Contains(classes, kw) {
				offer.HasPricing = true
				offer.PricingTiers = countTiers(elem)
				return false
			}
		}
		return true
	})

	offer.HasSegmentedPricing = offer.PricingTiers >= 2
	return offer
}

func containsFreeKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range freeOfferKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// countTiers counts plan-card children of a pricing section. Direct
// children are checked first; one level deeper covers wrapper rows.
func countTiers(pricing *goquery.Selection) int {
	count := tierChildren(pricing.Children())
	if count == 0 {
		pricing.Children().Each(func(_ int, child *goquery.Selection) {
			count += tierChildren(child.Children())
		})
	}
	return count
}

func tierChildren(children *goquery.Selection) int {
	count := 0
	children.Each(func(_ int, child *goquery.Selection) {
		classes := classAndID(child)
		for _, kw := range tierKeywords {
			if strings.Contains(classes, kw) {
				count++
				return
			}
		}
	})
	return count
}
