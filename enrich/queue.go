// Package enrich runs narrative enrichment in the background, decoupled
// from the analysis request path. The structural report is always complete
// before enrichment starts; a failed enrichment falls back to static
// narrative templates and never invalidates the report.
package enrich

import (
	"context"

	"github.com/konverta/leadscan"
)

// Ensure Queue implements leadscan.TaskQueue at compile time.
var _ leadscan.TaskQueue = (*Queue)(nil)

// DefaultQueueSize bounds the in-memory task buffer.
const DefaultQueueSize = 64

// Queue is an in-process, channel-backed task queue. Delivery is
// at-most-once: tasks are lost on process exit.
type Queue struct {
	tasks chan *leadscan.EnrichmentTask
}

// NewQueue creates a Queue buffering up to size tasks. A size of 0 uses
// DefaultQueueSize.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{tasks: make(chan *leadscan.EnrichmentTask, size)}
}

// Enqueue adds a task for background processing. It fails with EUNAVAILABLE
// when the buffer is full rather than blocking the request path.
func (q *Queue) Enqueue(ctx context.Context, task *leadscan.EnrichmentTask) error {
	select {
	case q.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return leadscan.Errorf(leadscan.EUNAVAILABLE, "enrichment queue full")
	}
}

// Dequeue blocks until a task is available or the context is canceled.
func (q *Queue) Dequeue(ctx context.Context) (*leadscan.EnrichmentTask, error) {
	select {
	case task := <-q.tasks:
		return task, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
