package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// Key returns the store key a task's status record lives under.
func Key(taskID string) string {
	return "task:" + taskID
}

// Recorder writes status records with a bounded lifetime. Every write replaces
// the whole record and restarts the TTL; the task id is owned by a single
// in-flight claim, so no locking is needed.
type Recorder struct {
	client *redis.Client
	ttl    time.Duration

	now func() time.Time
}

// compile-time check: *Recorder must satisfy port.StatusRecorder
var _ port.StatusRecorder = (*Recorder)(nil)

func NewRecorder(client *redis.Client, ttl time.Duration) *Recorder {
	return &Recorder{client: client, ttl: ttl, now: time.Now}
}

func (r *Recorder) Record(ctx context.Context, taskID string, st model.TaskStatus, progress int, result json.RawMessage, errMsg string) error {
	log.Printf("recording status %q for task #%s...", st, taskID)

	rec := model.StatusRecord{
		TaskID:    taskID,
		Status:    st,
		Progress:  progress,
		Timestamp: model.EpochSeconds(r.now()),
		Result:    result,
		Error:     errMsg,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	if err := r.client.SetEx(ctx, Key(taskID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis setex failed: %w", err)
	}
	return nil
}

func (r *Recorder) Get(ctx context.Context, taskID string) (json.RawMessage, error) {
	val, err := r.client.Get(ctx, Key(taskID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // no record: the task is pending or expired
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return json.RawMessage(val), nil
}
