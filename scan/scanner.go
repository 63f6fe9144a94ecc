// Package scan orchestrates the analysis pipeline: fetch a page, extract
// its conversion elements, classify the industry, score the result, persist
// the report, and hand off narrative enrichment to the background queue.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/bloom"
)

// DefaultConcurrency bounds parallel page scans in a site scan.
const DefaultConcurrency = 4

// DefaultSiteLimit caps the number of pages discovered per site scan.
const DefaultSiteLimit = 25

// Scanner runs the full analysis pipeline for single URLs and whole sites.
type Scanner struct {
	Fetcher    leadscan.Fetcher
	Extractor  leadscan.Extractor
	Classifier leadscan.IndustryClassifier
	Scorer     leadscan.Scorer
	Reports    leadscan.ReportService
	Tasks      leadscan.TaskQueue

	// Content and Converter prepare main-content markdown as enrichment
	// context. Both optional; tasks carry no content when either is unset.
	Content   leadscan.ContentExtractor
	Converter leadscan.Converter

	// Discoverer and Limiter are only needed for site scans.
	Discoverer leadscan.SiteDiscoverer
	Limiter    leadscan.DomainLimiter

	Concurrency int
	Logger      *slog.Logger
}

// SiteResult holds the outcome of a site scan.
type SiteResult struct {
	Scanned int
	Failed  int
	Reports []*leadscan.Report
}

// Scan analyzes a single URL and persists the structural report. The
// report is complete when this returns; narrative enrichment runs in the
// background and merges in later.
func (s *Scanner) Scan(ctx context.Context, rawURL string) (*leadscan.Report, error) {
	page, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	elements, err := s.Extractor.Extract(page.HTML, page.URL)
	if err != nil {
		return nil, err
	}

	industry := s.Classifier.Classify(elements)
	analysis := s.Scorer.Score(elements)

	report := &leadscan.Report{
		URL:                page.URL,
		CompanyName:        elements.CompanyInfo.Name,
		CompanyDescription: elements.CompanyInfo.Description,
		ShortSummary:       teaser(elements.CompanyInfo.Name, analysis),
		OverallScore:       analysis.OverallScore,
		IssuesFound:        analysis.IssuesFound,
		Industry:           industry,
		Elements:           elements,
		Analysis:           analysis,
		CreatedAt:          page.FetchedAt,
		UpdatedAt:          page.FetchedAt,
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}
	if err := s.Reports.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	// Enrichment is best effort: a full queue must not fail the scan.
	if s.Tasks != nil {
		task := &leadscan.EnrichmentTask{
			ReportID:        report.ID,
			ContentMarkdown: s.contentMarkdown(page.HTML),
			Elements:        elements,
			Analysis:        analysis,
			Industry:        industry,
		}
		if err := s.Tasks.Enqueue(ctx, task); err != nil {
			s.logger().Warn("enqueue enrichment", "reportID", report.ID, "error", err)
		}
	}

	return report, nil
}

// ScanSite discovers pages for a site and scans each one, rate limited per
// domain and deduplicated across sitemaps. When no sitemap exists the base
// URL itself is scanned.
func (s *Scanner) ScanSite(ctx context.Context, baseURL string, limit int) (*SiteResult, error) {
	if s.Discoverer == nil {
		return nil, leadscan.Errorf(leadscan.EINTERNAL, "site scans require a discoverer")
	}
	if limit <= 0 {
		limit = DefaultSiteLimit
	}

	urls, err := s.Discoverer.DiscoverPages(ctx, baseURL, limit)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		urls = []string{baseURL}
	}

	seen := bloom.NewFilter(uint(limit)*4, 0.001)
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	result := &SiteResult{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, pageURL := range urls {
		if seen.Test(pageURL) {
			continue
		}
		seen.Add(pageURL)

		g.Go(func() error {
			if s.Limiter != nil {
				if err := s.Limiter.Wait(gctx, domainOf(pageURL)); err != nil {
					return err
				}
			}

			report, err := s.Scan(gctx, pageURL)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				s.logger().Warn("scan page", "url", pageURL, "error", err)
				return nil
			}
			result.Scanned++
			result.Reports = append(result.Reports, report)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// contentMarkdown renders the page's main content as markdown for the
// enrichment prompt. Extraction failures just mean a task without content.
func (s *Scanner) contentMarkdown(html string) string {
	if s.Content == nil || s.Converter == nil {
		return ""
	}
	content, err := s.Content.ExtractContent(html)
	if err != nil {
		return ""
	}
	md, err := s.Converter.Convert(content.ContentHTML)
	if err != nil {
		return ""
	}
	return md
}

// teaser builds the short summary shown before the full report is opened.
func teaser(company string, analysis *leadscan.AnalysisResult) string {
	if company == "" {
		company = "Webbplatsen"
	}
	if len(analysis.LogicalErrors) > 0 {
		return fmt.Sprintf("%s fick %.1f/5 i betyg. %s", company, analysis.OverallScore, analysis.LogicalErrors[0])
	}
	return fmt.Sprintf("%s fick %.1f/5 i betyg med %d identifierade problem.",
		company, analysis.OverallScore, analysis.IssuesFound)
}

// domainOf extracts the host for rate limiting; an unparseable URL falls
// back to the raw string so it still gets a limiter.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Hostname()
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
