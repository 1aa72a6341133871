package queue

import (
	"context"
	"fmt"
	"log"

	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// PendingKeyPrefix is the key space external producers enqueue into. The
// existence of a key means the task has not been claimed yet; deleting the key
// is the claim.
const PendingKeyPrefix = "pending_task:"

// PendingKey returns the queue key for a task id.
func PendingKey(taskID string) string {
	return PendingKeyPrefix + taskID
}

type Queue struct {
	client *redis.Client
}

// compile-time check: *Queue must satisfy port.Queue
var _ port.Queue = (*Queue)(nil)

// New wraps an existing Redis client. The client is shared with the status
// recorder; it is safe for concurrent use.
func New(client *redis.Client) *Queue {
	return &Queue{client: client}
}

func (q *Queue) Enqueue(ctx context.Context, taskID string, payload []byte) error {
	log.Printf("enqueueing task #%s...", taskID)

	if err := q.client.Set(ctx, PendingKey(taskID), payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (q *Queue) Ping(ctx context.Context) error {
	if err := q.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
