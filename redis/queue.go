// Package redis provides a Redis-backed implementation of
// leadscan.TaskQueue, for deployments where enrichment workers run in a
// separate process from the scanner.
package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/konverta/leadscan"
)

// DefaultKey is the Redis list key used for enrichment tasks.
const DefaultKey = "leadscan:enrichment"

// Ensure Queue implements leadscan.TaskQueue at compile time.
var _ leadscan.TaskQueue = (*Queue)(nil)

// Queue stores enrichment tasks as JSON in a Redis list. Tasks survive a
// process restart but delivery is still at-most-once: a task popped by a
// crashing worker is lost.
type Queue struct {
	client *redis.Client
	key    string
}

// NewQueue creates a Queue on the given client. An empty key uses
// DefaultKey.
func NewQueue(client *redis.Client, key string) *Queue {
	if key == "" {
		key = DefaultKey
	}
	return &Queue{client: client, key: key}
}

// Enqueue pushes a task onto the list.
func (q *Queue) Enqueue(ctx context.Context, task *leadscan.EnrichmentTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return leadscan.Errorf(leadscan.EINTERNAL, "marshal enrichment task: %v", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return leadscan.Errorf(leadscan.EUNAVAILABLE, "redis enqueue: %v", err)
	}
	return nil
}

// Dequeue blocks until a task is available or the context is canceled.
func (q *Queue) Dequeue(ctx context.Context) (*leadscan.EnrichmentTask, error) {
	result, err := q.client.BRPop(ctx, 0, q.key).Result()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "redis dequeue: %v", err)
	}
	if len(result) != 2 {
		return nil, leadscan.Errorf(leadscan.EINTERNAL, "unexpected BRPOP reply length %d", len(result))
	}

	var task leadscan.EnrichmentTask
	if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
		return nil, leadscan.Errorf(leadscan.EINTERNAL, "unmarshal enrichment task: %v", err)
	}
	return &task, nil
}
