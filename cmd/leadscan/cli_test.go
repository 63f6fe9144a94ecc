package main_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konverta/leadscan"
	main "github.com/konverta/leadscan/cmd/leadscan"
	"github.com/konverta/leadscan/enrich"
	"github.com/konverta/leadscan/goquery"
	"github.com/konverta/leadscan/industry"
	"github.com/konverta/leadscan/mock"
	"github.com/konverta/leadscan/scan"
	"github.com/konverta/leadscan/score"
)

func testReport(id string) *leadscan.Report {
	criteria := make([]leadscan.CriterionResult, 0, 7)
	for _, c := range leadscan.Criteria() {
		criteria = append(criteria, leadscan.NewCriterionResult(c, 3, nil))
	}
	return &leadscan.Report{
		ID:           id,
		URL:          "https://acme.se",
		CompanyName:  "Acme AB",
		OverallScore: 3.0,
		IssuesFound:  2,
		Industry:     leadscan.Industry{Key: "accounting", Label: "Redovisning"},
		Elements:     leadscan.NewExtractedElements(),
		Analysis: &leadscan.AnalysisResult{
			Criteria:       criteria,
			OverallScore:   3.0,
			IssuesFound:    2,
			LogicalErrors:  []string{"Sidan länkar e-post direkt via mailto."},
			LeakingFunnels: []leadscan.LeakingFunnel{},
		},
		AccessToken: "tok-abc",
		CreatedAt:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists reports with score and URL", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportsFn: func(_ context.Context, filter leadscan.ReportFilter) ([]*leadscan.Report, error) {
				assert.Equal(t, 20, filter.Limit)
				r := testReport("rep-123")
				r.Enriched = true
				return []*leadscan.Report{r}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Reports: reports}

		require.NoError(t, (&main.ListCmd{Limit: 20}).Run(deps))
		output := stdout.String()
		assert.Contains(t, output, "rep-123")
		assert.Contains(t, output, "3.0/5")
		assert.Contains(t, output, "https://acme.se")
	})

	t.Run("prints hint when empty", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportsFn: func(_ context.Context, _ leadscan.ReportFilter) ([]*leadscan.Report, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Reports: reports}

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No reports found")
	})
}

func TestReportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints report by ID", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportByIDFn: func(_ context.Context, id string) (*leadscan.Report, error) {
				return testReport(id), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Reports: reports}

		require.NoError(t, (&main.ReportCmd{ID: "rep-123"}).Run(deps))
		output := stdout.String()
		assert.Contains(t, output, "Acme AB")
		assert.Contains(t, output, "Helhetsbetyg: 3.0/5")
		assert.Contains(t, output, "Värdeerbjudandets Tydlighet")
		assert.Contains(t, output, "Logiska fel:")
		assert.Contains(t, output, "mailto")
	})

	t.Run("falls back to token lookup", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportByIDFn: func(_ context.Context, _ string) (*leadscan.Report, error) {
				return nil, leadscan.Errorf(leadscan.ENOTFOUND, "report not found")
			},
			FindReportByTokenFn: func(_ context.Context, token string) (*leadscan.Report, error) {
				assert.Equal(t, "tok-abc", token)
				return testReport("rep-123"), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Reports: reports}

		require.NoError(t, (&main.ReportCmd{ID: "tok-abc"}).Run(deps))
		assert.Contains(t, stdout.String(), "Acme AB")
	})

	t.Run("reports not found", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportByIDFn: func(_ context.Context, _ string) (*leadscan.Report, error) {
				return nil, leadscan.Errorf(leadscan.ENOTFOUND, "report not found")
			},
			FindReportByTokenFn: func(_ context.Context, _ string) (*leadscan.Report, error) {
				return nil, leadscan.Errorf(leadscan.ENOTFOUND, "report not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Reports: reports}

		err := (&main.ReportCmd{ID: "missing"}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, leadscan.ENOTFOUND, leadscan.ErrorCode(err))
		assert.Contains(t, stderr.String(), "report not found")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.DeleteCmd{ID: "rep-123"}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, leadscan.EINVALID, leadscan.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes with force", func(t *testing.T) {
		t.Parallel()

		var deleted string
		reports := &mock.ReportService{
			DeleteReportFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Reports: reports}

		require.NoError(t, (&main.DeleteCmd{ID: "rep-123", Force: true}).Run(deps))
		assert.Equal(t, "rep-123", deleted)
		assert.Contains(t, stdout.String(), "Deleted report")
	})
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("scans, enriches, and prints the report", func(t *testing.T) {
		t.Parallel()

		const html = `<html><head><title>Acme AB | Redovisning</title></head>
			<body><h1>Redovisning för småföretag i Stockholm</h1>
			<a href="mailto:info@acme.se">Maila oss</a></body></html>`

		var mu sync.Mutex
		stored := map[string]*leadscan.Report{}
		reports := &mock.ReportService{
			CreateReportFn: func(_ context.Context, r *leadscan.Report) error {
				r.ID = "rep-1"
				r.AccessToken = "tok-1"
				mu.Lock()
				defer mu.Unlock()
				stored[r.ID] = r
				return nil
			},
			FindReportByIDFn: func(_ context.Context, id string) (*leadscan.Report, error) {
				mu.Lock()
				defer mu.Unlock()
				r, ok := stored[id]
				if !ok {
					return nil, leadscan.Errorf(leadscan.ENOTFOUND, "report not found")
				}
				return r, nil
			},
			UpdateReportFn: func(_ context.Context, id string, upd leadscan.ReportUpdate) (*leadscan.Report, error) {
				mu.Lock()
				defer mu.Unlock()
				r := stored[id]
				r.Narrative = upd.Narrative
				if upd.Enriched != nil {
					r.Enriched = *upd.Enriched
				}
				return r, nil
			},
		}

		queue := enrich.NewQueue(4)
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*leadscan.Page, error) {
				return &leadscan.Page{URL: url, HTML: html, FetchedAt: time.Now()}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Reports: reports,
			Queue:   queue,
			Worker:  enrich.NewWorker(queue, enrich.StaticEnricher{}, reports, nil),
			Scanner: &scan.Scanner{
				Fetcher:    fetcher,
				Extractor:  goquery.NewExtractor(),
				Classifier: industry.NewClassifier(),
				Scorer:     score.NewEngine(),
				Reports:    reports,
				Tasks:      queue,
			},
		}

		require.NoError(t, (&main.AnalyzeCmd{URLs: []string{"https://acme.se"}}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Acme AB")
		assert.Contains(t, output, "Helhetsbetyg:")
		assert.Contains(t, output, "Rekommendationer:")

		mu.Lock()
		defer mu.Unlock()
		require.NotNil(t, stored["rep-1"])
		assert.True(t, stored["rep-1"].Enriched)
		require.NotNil(t, stored["rep-1"].Narrative)
	})

	t.Run("propagates fetch failure", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*leadscan.Page, error) {
				return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "connection refused")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Scanner: &scan.Scanner{
				Fetcher:    fetcher,
				Extractor:  goquery.NewExtractor(),
				Classifier: industry.NewClassifier(),
				Scorer:     score.NewEngine(),
			},
		}

		err := (&main.AnalyzeCmd{URLs: []string{"https://down.se"}}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, leadscan.EUNAVAILABLE, leadscan.ErrorCode(err))
		assert.Contains(t, stderr.String(), "connection refused")
	})
}
