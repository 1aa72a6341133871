package queue

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/net/context"
)

// ListPending enumerates every pending key currently visible. The snapshot is
// best-effort: keys written while the enumeration runs may or may not appear.
func (q *Queue) ListPending(ctx context.Context) ([]string, error) {
	keys, err := q.client.Keys(ctx, PendingKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("redis keys failed: %w", err)
	}
	return keys, nil
}

// Claim reads the record at key and deletes the key before returning it, so
// the same entry is never handed out twice within this instance. A key whose
// value is empty or already gone is reclaimed (deleted) and reported as
// (nil, nil). There is no lease: a crash after Claim loses the task.
func (q *Queue) Claim(ctx context.Context, key string) ([]byte, error) {
	val, err := q.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// claimed elsewhere, or an orphaned key that already expired
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	if err := q.client.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("redis del failed: %w", err)
	}

	if val == "" {
		return nil, nil
	}
	return []byte(val), nil
}

// PendingExists reports whether the task still sits unclaimed in the queue.
func (q *Queue) PendingExists(ctx context.Context, taskID string) (bool, error) {
	n, err := q.client.Exists(ctx, PendingKey(taskID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists failed: %w", err)
	}
	return n > 0, nil
}
