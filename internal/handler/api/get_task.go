package api

import (
	"net/http"

	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/aiforge/tasks-ms-go/internal/task_context"
)

// GetTaskStatusHandler serves the status record for a task. A task the
// worker has not claimed yet has no record; the pending key is checked so
// the caller can tell "not started" apart from "never existed".
func GetTaskStatusHandler(rec port.StatusRecorder, q port.Queue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		taskID, ok := task_context.TaskIDFromContext(ctx)
		if !ok {
			WriteError(w, http.StatusBadRequest, "Missing task ID in context", nil)
			return
		}

		raw, err := rec.Get(ctx, taskID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not read task status", err)
			return
		}
		if raw != nil {
			RespondRawJSON(w, http.StatusOK, raw)
			return
		}

		pending, err := q.PendingExists(ctx, taskID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not read task status", err)
			return
		}
		if pending {
			WriteError(w, http.StatusNotFound, "Task is still pending", nil)
			return
		}

		WriteError(w, http.StatusNotFound, "Task not found", nil)
	}
}
