// Package trafilatura extracts the boilerplate-free main content of a page
// for use as enrichment context.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/konverta/leadscan"
)

// Ensure Extractor implements leadscan.ContentExtractor at compile time.
var _ leadscan.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to strip navigation, footers, and other
// boilerplate from a fetched page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent processes raw HTML and returns the main content.
func (e *Extractor) ExtractContent(rawHTML string) (*leadscan.MainContent, error) {
	if rawHTML == "" {
		return nil, leadscan.Errorf(leadscan.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &leadscan.MainContent{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
