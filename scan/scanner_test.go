package scan_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/enrich"
	"github.com/konverta/leadscan/mock"
	"github.com/konverta/leadscan/scan"
	"github.com/konverta/leadscan/score"
)

func testElements() *leadscan.ExtractedElements {
	elements := leadscan.NewExtractedElements()
	elements.CompanyInfo = leadscan.CompanyInfo{Name: "Acme AB", Description: "Redovisning."}
	elements.ValueProposition = leadscan.ValueProposition{H1: "Bokföring utan friktion", H1Length: 23}
	return elements
}

func testScanner(reports leadscan.ReportService, tasks leadscan.TaskQueue) *scan.Scanner {
	elements := testElements()
	return &scan.Scanner{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*leadscan.Page, error) {
				return &leadscan.Page{URL: url, HTML: "<html></html>", ContentHash: "abc", FetchedAt: time.Now()}, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_, _ string) (*leadscan.ExtractedElements, error) {
				return elements, nil
			},
		},
		Classifier: &mock.IndustryClassifier{
			ClassifyFn: func(_ *leadscan.ExtractedElements) leadscan.Industry {
				return leadscan.Industry{Key: "finance", Label: "Finans & Försäkring", Confidence: 0.8}
			},
		},
		Scorer:  score.NewEngine(),
		Reports: reports,
		Tasks:   tasks,
	}
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("persists structural report and enqueues enrichment", func(t *testing.T) {
		t.Parallel()

		var created *leadscan.Report
		reports := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *leadscan.Report) error {
				r.ID = "r1"
				created = r
				return nil
			},
		}
		queue := enrich.NewQueue(4)

		s := testScanner(reports, queue)
		report, err := s.Scan(context.Background(), "https://acme.se")
		require.NoError(t, err)

		assert.Equal(t, created, report)
		assert.Equal(t, "Acme AB", report.CompanyName)
		assert.Equal(t, "finance", report.Industry.Key)
		assert.NotNil(t, report.Analysis)
		assert.NotEmpty(t, report.ShortSummary)
		assert.False(t, report.Enriched)
		assert.InDelta(t, report.Analysis.OverallScore, report.OverallScore, 0.001)

		task, err := queue.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "r1", task.ReportID)
		assert.Equal(t, report.Analysis, task.Analysis)
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		t.Parallel()

		s := testScanner(&mock.ReportService{}, nil)
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*leadscan.Page, error) {
				return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "fetch %s: connection refused", url)
			},
		}

		_, err := s.Scan(context.Background(), "https://nere.se")
		require.Error(t, err)
		assert.Equal(t, leadscan.EUNAVAILABLE, leadscan.ErrorCode(err))
	})

	t.Run("task carries main-content markdown when wired", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *leadscan.Report) error {
				r.ID = "r1"
				return nil
			},
		}
		queue := enrich.NewQueue(4)

		s := testScanner(reports, queue)
		s.Content = &mock.ContentExtractor{
			ExtractContentFn: func(html string) (*leadscan.MainContent, error) {
				return &leadscan.MainContent{Title: "Acme", ContentHTML: "<h1>Bokföring utan friktion</h1>"}, nil
			},
		}
		s.Converter = &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "# Bokföring utan friktion", nil
			},
		}

		_, err := s.Scan(context.Background(), "https://acme.se")
		require.NoError(t, err)

		task, err := queue.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "# Bokföring utan friktion", task.ContentMarkdown)
	})

	t.Run("content extraction failure leaves task without content", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *leadscan.Report) error {
				r.ID = "r1"
				return nil
			},
		}
		queue := enrich.NewQueue(4)

		s := testScanner(reports, queue)
		s.Content = &mock.ContentExtractor{
			ExtractContentFn: func(_ string) (*leadscan.MainContent, error) {
				return nil, leadscan.Errorf(leadscan.EINVALID, "no content found")
			},
		}
		s.Converter = &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "", leadscan.Errorf(leadscan.EINVALID, "empty input")
			},
		}

		_, err := s.Scan(context.Background(), "https://acme.se")
		require.NoError(t, err)

		task, err := queue.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Empty(t, task.ContentMarkdown)
	})

	t.Run("full enrichment queue does not fail the scan", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *leadscan.Report) error {
				r.ID = "r1"
				return nil
			},
		}
		tasks := &mock.TaskQueue{
			EnqueueFn: func(_ context.Context, _ *leadscan.EnrichmentTask) error {
				return leadscan.Errorf(leadscan.EUNAVAILABLE, "enrichment queue full")
			},
		}

		s := testScanner(reports, tasks)
		_, err := s.Scan(context.Background(), "https://acme.se")
		assert.NoError(t, err)
	})
}

func TestScanner_ScanSite(t *testing.T) {
	t.Parallel()

	t.Run("scans discovered pages with deduplication", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var createdURLs []string
		reports := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *leadscan.Report) error {
				mu.Lock()
				defer mu.Unlock()
				r.ID = r.URL
				createdURLs = append(createdURLs, r.URL)
				return nil
			},
		}

		s := testScanner(reports, nil)
		s.Discoverer = &mock.SiteDiscoverer{
			DiscoverPagesFn: func(_ context.Context, _ string, _ int) ([]string, error) {
				return []string{"https://acme.se/", "https://acme.se/priser", "https://acme.se/"}, nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.se", 10)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Scanned)
		assert.Zero(t, result.Failed)
		assert.Len(t, createdURLs, 2)
	})

	t.Run("falls back to base url without sitemap", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *leadscan.Report) error {
				r.ID = "r1"
				return nil
			},
		}

		s := testScanner(reports, nil)
		s.Discoverer = &mock.SiteDiscoverer{
			DiscoverPagesFn: func(_ context.Context, _ string, _ int) ([]string, error) {
				return []string{}, nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.se", 10)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Scanned)
		require.Len(t, result.Reports, 1)
		assert.Equal(t, "https://acme.se", result.Reports[0].URL)
	})

	t.Run("failed pages are counted not fatal", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *leadscan.Report) error {
				r.ID = r.URL
				return nil
			},
		}

		s := testScanner(reports, nil)
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*leadscan.Page, error) {
				if url == "https://acme.se/trasig" {
					return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "HTTP 500")
				}
				return &leadscan.Page{URL: url, HTML: "<html></html>", FetchedAt: time.Now()}, nil
			},
		}
		s.Discoverer = &mock.SiteDiscoverer{
			DiscoverPagesFn: func(_ context.Context, _ string, _ int) ([]string, error) {
				return []string{"https://acme.se/", "https://acme.se/trasig"}, nil
			},
		}

		result, err := s.ScanSite(context.Background(), "https://acme.se", 10)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Scanned)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("waits on the domain limiter per page", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var waited []string
		reports := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *leadscan.Report) error {
				r.ID = r.URL
				return nil
			},
		}

		s := testScanner(reports, nil)
		s.Discoverer = &mock.SiteDiscoverer{
			DiscoverPagesFn: func(_ context.Context, _ string, _ int) ([]string, error) {
				return []string{"https://acme.se/", "https://acme.se/priser"}, nil
			},
		}
		s.Limiter = &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				mu.Lock()
				defer mu.Unlock()
				waited = append(waited, domain)
				return nil
			},
		}

		_, err := s.ScanSite(context.Background(), "https://acme.se", 10)
		require.NoError(t, err)

		assert.Equal(t, []string{"acme.se", "acme.se"}, waited)
	})
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("limits within a domain", func(t *testing.T) {
		t.Parallel()

		limiter := scan.NewDomainLimiter(20)
		ctx := context.Background()

		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, limiter.Wait(ctx, "acme.se"))
		}
		// 3 requests at 20 rps need at least 100ms of spacing after the
		// initial token.
		assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	})

	t.Run("domains do not block each other", func(t *testing.T) {
		t.Parallel()

		limiter := scan.NewDomainLimiter(1)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "a.se"))
		require.NoError(t, limiter.Wait(ctx, "b.se"))
		require.NoError(t, limiter.Wait(ctx, "c.se"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("respects cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := scan.NewDomainLimiter(0.1)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		require.NoError(t, limiter.Wait(ctx, "a.se"))
		assert.Error(t, limiter.Wait(ctx, "a.se"))
	})
}
