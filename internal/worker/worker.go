package worker

import (
	"context"
	"time"

	"github.com/aiforge/tasks-ms-go/internal/dispatch"
	"github.com/aiforge/tasks-ms-go/internal/logger"
	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/aiforge/tasks-ms-go/internal/task_context"
)

// Worker drains the pending-task queue: enumerate, claim, dispatch, sleep,
// repeat. One instance processes claimed tasks sequentially; a slow handler
// delays the rest of the sweep but never the correctness of it.
type Worker struct {
	queue      port.Queue
	dispatcher *dispatch.Dispatcher
	interval   time.Duration
}

func New(q port.Queue, d *dispatch.Dispatcher, interval time.Duration) *Worker {
	return &Worker{queue: q, dispatcher: d, interval: interval}
}

// Run polls until ctx is cancelled. A failing sweep (store unreachable) is
// logged and retried after the usual interval; the loop itself never exits on
// a transient backend failure. The sleep bounds the polling rate only, a
// burst of pending tasks is drained fully within one sweep.
func (w *Worker) Run(ctx context.Context) {
	logger.Info(ctx, "🚀 Worker started, watching pending task queue")

	for {
		if err := w.sweep(ctx); err != nil {
			logger.Errorf(ctx, "⚠️  Sweep failed: %v", err)
		}

		select {
		case <-ctx.Done():
			logger.Info(ctx, "🛑 Worker stopped")
			return
		case <-time.After(w.interval):
		}
	}
}

// sweep claims and dispatches every pending task visible right now. Claiming
// deletes the key before the task runs, so each entry is handled at most once;
// a crash between claim and terminal status write loses the task, there is no
// lease to recover it.
func (w *Worker) sweep(ctx context.Context) error {
	keys, err := w.queue.ListPending(ctx)
	if err != nil {
		return err
	}

	for _, key := range keys {
		payload, err := w.queue.Claim(ctx, key)
		if err != nil {
			logger.Errorf(ctx, "⚠️  Could not claim %q: %v", key, err)
			continue
		}
		if payload == nil {
			// empty or vanished entry, already reclaimed
			continue
		}

		rec, err := model.ParseTaskRecord(payload)
		if err != nil {
			// the key is gone; a record nobody can parse is dropped
			logger.Errorf(ctx, "⚠️  Malformed task record at %q: %v", key, err)
			continue
		}

		w.dispatcher.Dispatch(task_context.WithTaskID(ctx, rec.TaskID), rec)
	}

	return nil
}
