package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/konverta/leadscan"
)

// Ensure LoggingEnricher implements leadscan.Enricher.
var _ leadscan.Enricher = (*LoggingEnricher)(nil)

// LoggingEnricher wraps an Enricher with call logging.
type LoggingEnricher struct {
	next   leadscan.Enricher
	logger *slog.Logger
}

// NewLoggingEnricher creates a new LoggingEnricher.
func NewLoggingEnricher(next leadscan.Enricher, logger *slog.Logger) *LoggingEnricher {
	return &LoggingEnricher{next: next, logger: logger}
}

// Enrich delegates to the wrapped enricher and logs the operation.
func (e *LoggingEnricher) Enrich(ctx context.Context, task *leadscan.EnrichmentTask) (sections *leadscan.NarrativeSections, err error) {
	defer func(begin time.Time) {
		adjusted := 0
		if sections != nil {
			adjusted = len(sections.AdjustedScores)
		}
		e.logger.Info("narrative enrichment",
			"reportID", task.ReportID,
			"industry", task.Industry.Key,
			"adjustedScores", adjusted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Enrich(ctx, task)
}
