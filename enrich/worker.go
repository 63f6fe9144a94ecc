package enrich

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/konverta/leadscan"
)

// dequeueRetryDelay paces the loop when the queue keeps failing, so a
// broken queue does not spin the worker at full speed.
const dequeueRetryDelay = time.Second

// Worker consumes enrichment tasks and merges the narrative result into the
// persisted report. Enrichment failures degrade to static fallback text;
// only persistence failures are surfaced as errors.
type Worker struct {
	queue    leadscan.TaskQueue
	enricher leadscan.Enricher
	reports  leadscan.ReportService
	logger   *slog.Logger
}

// NewWorker creates a Worker. A nil logger discards log output.
func NewWorker(queue leadscan.TaskQueue, enricher leadscan.Enricher, reports leadscan.ReportService, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Worker{
		queue:    queue,
		enricher: enricher,
		reports:  reports,
		logger:   logger,
	}
}

// Run processes tasks until the context is canceled. It returns the
// context's error on shutdown.
func (w *Worker) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		task, err := w.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			w.logger.Error("dequeue enrichment task", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(dequeueRetryDelay):
			}
			continue
		}

		if err := w.Process(ctx, task); err != nil {
			w.logger.Error("process enrichment task", "reportID", task.ReportID, "error", err)
		}
	}
}

// Process enriches one report. When the model call fails the report still
// gets fallback narrative text so it is never left half-finished. A report
// deleted while its task was queued is a no-op.
func (w *Worker) Process(ctx context.Context, task *leadscan.EnrichmentTask) error {
	sections, err := w.enricher.Enrich(ctx, task)
	if err != nil {
		w.logger.Warn("enrichment failed, using fallback narrative", "reportID", task.ReportID, "error", err)
		sections = FallbackSections(task.Elements, task.Analysis, task.Industry)
	}

	analysis := task.Analysis
	if len(sections.AdjustedScores) > 0 {
		analysis = leadscan.AdjustScores(analysis, sections.AdjustedScores)
	}

	enriched := true
	_, err = w.reports.UpdateReport(ctx, task.ReportID, leadscan.ReportUpdate{
		Narrative: sections,
		Analysis:  analysis,
		Enriched:  &enriched,
	})
	if leadscan.ErrorCode(err) == leadscan.ENOTFOUND {
		w.logger.Info("report deleted before enrichment", "reportID", task.ReportID)
		return nil
	}
	return err
}
