package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/konverta/leadscan"
)

// magnetKeywords mark links that offer downloadable or gated content, in
// Swedish and English. The matched keyword becomes the magnet type.
var magnetKeywords = []string{
	"ladda ner", "download", "gratis", "free", "guide",
	"whitepaper", "e-bok", "ebook", "checklista", "checklist",
	"mall", "template", "rapport", "report", "pdf",
}

// gateMarkers are class fragments that indicate a link sits inside a form,
// modal, or other gated context.
var gateMarkers = []string{"modal", "popup", "gate", "form"}

// maxGateDepth bounds the ancestor walk when checking whether a link is
// gated.
const maxGateDepth = 5

func extractLeadMagnets(doc *goquery.Document, base *url.URL) []leadscan.LeadMagnet {
	magnets := []leadscan.LeadMagnet{}

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		text := cleanText(link)
		lowerText := strings.ToLower(text)
		lowerHref := strings.ToLower(href)

		magnetType := ""
		for _, kw := range magnetKeywords {
			if strings.Contains(lowerText, kw) {
				magnetType = kw
				break
			}
		}
		if magnetType == "" && strings.Contains(lowerHref, ".pdf") {
			magnetType = "pdf"
		}
		if magnetType == "" {
			return
		}

		magnets = append(magnets, leadscan.LeadMagnet{
			Text:    text,
			URL:     resolveURL(base, href),
			Type:    magnetType,
			IsGated: isGated(link),
		})
	})

	return magnets
}

func extractUngatedPDFs(doc *goquery.Document, base *url.URL) []leadscan.UngatedPDF {
	pdfs := []leadscan.UngatedPDF{}

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !strings.Contains(strings.ToLower(href), ".pdf") {
			return
		}
		if isGated(link) {
			return
		}
		pdfs = append(pdfs, leadscan.UngatedPDF{
			URL:      resolveURL(base, href),
			LinkText: cleanText(link),
		})
	})

	return pdfs
}

func extractMailtoLinks(doc *goquery.Document) []leadscan.MailtoLink {
	links := []leadscan.MailtoLink{}

	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		email, _, _ := strings.Cut(strings.TrimPrefix(href, "mailto:"), "?")

		context := ""
		if parent := link.Parent(); parent.Length() > 0 {
			context = truncate(cleanText(parent), 100)
		}

		links = append(links, leadscan.MailtoLink{
			Email:    email,
			LinkText: cleanText(link),
			Context:  context,
		})
	})

	return links
}

// isGated walks up to five ancestor levels looking for a form or a
// modal/popup/gate context. A link inside such a context is considered
// gated: the content is not reachable without going through a capture step.
func isGated(link *goquery.Selection) bool {
	parent := link.Parent()
	for depth := 0; depth < maxGateDepth && parent.Length() > 0; depth++ {
		if goquery.NodeName(parent) == "form" || parent.Find("form").Length() > 0 {
			return true
		}
		classes := classAndID(parent)
		for _, marker := range gateMarkers {
			if strings.Contains(classes, marker) {
				return true
			}
		}
		parent = parent.Parent()
	}
	return false
}
