package mock

import (
	"context"
	"sync"

	"github.com/aiforge/tasks-ms-go/internal/port"
)

// Queue implements pending-queue behaviour for tests.
type Queue struct {
	mu sync.Mutex

	// stored payloads by full key
	Entries map[string][]byte

	// errors
	EnqueueErr     error
	ListPendingErr error
	ClaimErr       error
	ExistsErr      error
	PingErr        error

	// call flags
	EnqueueCalled     bool
	ListPendingCalled bool
	ClaimCalled       bool

	// captured args
	EnqueuedID      string
	EnqueuedPayload []byte
	ClaimedKeys     []string
}

// compile-time check: *Queue must satisfy port.Queue
var _ port.Queue = (*Queue)(nil)

func (q *Queue) Enqueue(ctx context.Context, taskID string, payload []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.EnqueueCalled = true
	if q.EnqueueErr != nil {
		return q.EnqueueErr
	}
	q.EnqueuedID = taskID
	q.EnqueuedPayload = append([]byte(nil), payload...)
	if q.Entries == nil {
		q.Entries = map[string][]byte{}
	}
	q.Entries["pending_task:"+taskID] = q.EnqueuedPayload
	return nil
}

func (q *Queue) ListPending(ctx context.Context) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ListPendingCalled = true
	if q.ListPendingErr != nil {
		return nil, q.ListPendingErr
	}
	keys := make([]string, 0, len(q.Entries))
	for k := range q.Entries {
		keys = append(keys, k)
	}
	return keys, nil
}

func (q *Queue) Claim(ctx context.Context, key string) ([]byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ClaimCalled = true
	q.ClaimedKeys = append(q.ClaimedKeys, key)
	if q.ClaimErr != nil {
		return nil, q.ClaimErr
	}
	payload, ok := q.Entries[key]
	delete(q.Entries, key)
	if !ok || len(payload) == 0 {
		return nil, nil
	}
	return payload, nil
}

func (q *Queue) PendingExists(ctx context.Context, taskID string) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ExistsErr != nil {
		return false, q.ExistsErr
	}
	_, ok := q.Entries["pending_task:"+taskID]
	return ok, nil
}

func (q *Queue) Ping(ctx context.Context) error {
	return q.PingErr
}
