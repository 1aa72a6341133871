package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/aiforge/tasks-ms-go/internal/logger"
	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/aiforge/tasks-ms-go/internal/validation"
)

// maxTaskBodyBytes bounds how large an enqueued task record may be.
const maxTaskBodyBytes = 1 << 20

type EnqueueTaskRequest struct {
	Type string `json:"type" validate:"required"`
}

type EnqueueTaskResponse struct {
	TaskID string `json:"task_id"`
}

// EnqueueTaskHandler accepts a task record, mints its id and writes it under
// the pending queue key the worker sweeps. Handler-specific fields pass
// through untouched; they are validated at dispatch time.
func EnqueueTaskHandler(q port.Queue, recognized []string, genID func() string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxTaskBodyBytes))
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not read request body", err)
			return
		}

		var req EnqueueTaskRequest
		if err := json.Unmarshal(body, &req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		if !slices.Contains(recognized, req.Type) {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("Unrecognized task type %q", req.Type), nil)
			return
		}

		var fields map[string]any
		if err := json.Unmarshal(body, &fields); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", err)
			return
		}
		id := genID()
		fields["task_id"] = id

		payload, err := json.Marshal(fields)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not serialize task record", err)
			return
		}

		if err := q.Enqueue(r.Context(), id, payload); err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not enqueue task", err)
			return
		}

		RespondJSON(w, http.StatusCreated, EnqueueTaskResponse{TaskID: id})
		logger.Infof(r.Context(), "✅  Successfully enqueued %s task #%s", req.Type, id)
	}
}
