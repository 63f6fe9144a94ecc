package mock

import (
	"context"

	"github.com/konverta/leadscan"
)

var _ leadscan.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of leadscan.Enricher.
type Enricher struct {
	EnrichFn func(ctx context.Context, task *leadscan.EnrichmentTask) (*leadscan.NarrativeSections, error)
}

func (e *Enricher) Enrich(ctx context.Context, task *leadscan.EnrichmentTask) (*leadscan.NarrativeSections, error) {
	return e.EnrichFn(ctx, task)
}

var _ leadscan.TaskQueue = (*TaskQueue)(nil)

// TaskQueue is a mock implementation of leadscan.TaskQueue.
type TaskQueue struct {
	EnqueueFn func(ctx context.Context, task *leadscan.EnrichmentTask) error
	DequeueFn func(ctx context.Context) (*leadscan.EnrichmentTask, error)
}

func (q *TaskQueue) Enqueue(ctx context.Context, task *leadscan.EnrichmentTask) error {
	return q.EnqueueFn(ctx, task)
}

func (q *TaskQueue) Dequeue(ctx context.Context) (*leadscan.EnrichmentTask, error) {
	return q.DequeueFn(ctx)
}
