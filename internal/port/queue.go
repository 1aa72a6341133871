package port

import "context"

// Queue defines operations on the shared pending-task queue. The queue is a
// best-effort key space: producers write `pending_task:<id>` entries, workers
// enumerate and claim them. Deletion is the sole claim mechanism.
type Queue interface {
	// Enqueue writes a serialized task record under the pending key for taskID.
	Enqueue(ctx context.Context, taskID string, payload []byte) error
	// ListPending returns a best-effort snapshot of all pending keys.
	ListPending(ctx context.Context) ([]string, error)
	// Claim reads and deletes the entry at key. It returns (nil, nil) when the
	// entry is empty or already gone; an orphaned empty key is deleted on the way.
	Claim(ctx context.Context, key string) ([]byte, error)
	// PendingExists reports whether the task is still waiting to be claimed.
	PendingExists(ctx context.Context, taskID string) (bool, error)
	// Ping checks the underlying store connection.
	Ping(ctx context.Context) error
}
