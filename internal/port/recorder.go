package port

import (
	"context"
	"encoding/json"

	"github.com/aiforge/tasks-ms-go/internal/model"
)

// StatusRecorder owns the `task:<task_id>` status records. Record overwrites
// any previous record for the id and resets its TTL; it is idempotent modulo
// the timestamp field.
type StatusRecorder interface {
	Record(ctx context.Context, taskID string, status model.TaskStatus, progress int, result json.RawMessage, errMsg string) error
	// Get returns the raw stored record, or (nil, nil) when none exists.
	Get(ctx context.Context, taskID string) (json.RawMessage, error)
}
