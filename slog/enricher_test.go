package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/mock"
	leadslog "github.com/konverta/leadscan/slog"
)

func TestLoggingEnricher_Enrich(t *testing.T) {
	t.Parallel()

	t.Run("logs enrichment with industry and adjusted score count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Enricher{
			EnrichFn: func(ctx context.Context, task *leadscan.EnrichmentTask) (*leadscan.NarrativeSections, error) {
				return &leadscan.NarrativeSections{
					ShortDescription: "Acme AB hjälper småföretag.",
					AdjustedScores: map[leadscan.Criterion]float64{
						leadscan.CriterionValueProposition: 4,
					},
				}, nil
			},
		}

		e := leadslog.NewLoggingEnricher(inner, logger)
		sections, err := e.Enrich(context.Background(), &leadscan.EnrichmentTask{
			ReportID: "rep-1",
			Elements: leadscan.NewExtractedElements(),
			Analysis: &leadscan.AnalysisResult{},
			Industry: leadscan.Industry{Key: "accounting"},
		})

		require.NoError(t, err)
		assert.NotEmpty(t, sections.ShortDescription)
		output := buf.String()
		assert.Contains(t, output, "narrative enrichment")
		assert.Contains(t, output, "industry=accounting")
		assert.Contains(t, output, "adjustedScores=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Enricher{
			EnrichFn: func(ctx context.Context, task *leadscan.EnrichmentTask) (*leadscan.NarrativeSections, error) {
				return nil, errors.New("model overloaded")
			},
		}

		e := leadslog.NewLoggingEnricher(inner, logger)
		_, err := e.Enrich(context.Background(), &leadscan.EnrichmentTask{
			Elements: leadscan.NewExtractedElements(),
			Analysis: &leadscan.AnalysisResult{},
			Industry: leadscan.Industry{Key: "general"},
		})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "narrative enrichment")
		assert.Contains(t, output, "err=\"model overloaded\"")
	})
}
