package mock

import (
	"context"

	"github.com/konverta/leadscan"
)

var _ leadscan.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of leadscan.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*leadscan.Page, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*leadscan.Page, error) {
	return f.FetchFn(ctx, url)
}

var _ leadscan.SiteDiscoverer = (*SiteDiscoverer)(nil)

// SiteDiscoverer is a mock implementation of leadscan.SiteDiscoverer.
type SiteDiscoverer struct {
	DiscoverPagesFn func(ctx context.Context, baseURL string, limit int) ([]string, error)
}

func (d *SiteDiscoverer) DiscoverPages(ctx context.Context, baseURL string, limit int) ([]string, error) {
	return d.DiscoverPagesFn(ctx, baseURL, limit)
}

var _ leadscan.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of leadscan.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ leadscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of leadscan.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string) (*leadscan.ExtractedElements, error)
}

func (e *Extractor) Extract(html string, baseURL string) (*leadscan.ExtractedElements, error) {
	return e.ExtractFn(html, baseURL)
}

var _ leadscan.IndustryClassifier = (*IndustryClassifier)(nil)

// IndustryClassifier is a mock implementation of leadscan.IndustryClassifier.
type IndustryClassifier struct {
	ClassifyFn func(elements *leadscan.ExtractedElements) leadscan.Industry
}

func (c *IndustryClassifier) Classify(elements *leadscan.ExtractedElements) leadscan.Industry {
	return c.ClassifyFn(elements)
}

var _ leadscan.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of leadscan.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string) (*leadscan.MainContent, error)
}

func (e *ContentExtractor) ExtractContent(html string) (*leadscan.MainContent, error) {
	return e.ExtractContentFn(html)
}

var _ leadscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of leadscan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ leadscan.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of leadscan.Scorer.
type Scorer struct {
	ScoreFn func(elements *leadscan.ExtractedElements) *leadscan.AnalysisResult
}

func (s *Scorer) Score(elements *leadscan.ExtractedElements) *leadscan.AnalysisResult {
	return s.ScoreFn(elements)
}
