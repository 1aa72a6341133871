package middleware

import (
	"net/http"

	"github.com/aiforge/tasks-ms-go/internal/handler/api"
	"github.com/aiforge/tasks-ms-go/internal/task_context"
	"github.com/go-chi/chi/v5"
)

// WithTaskID pulls the task id out of the URL and stashes it in context.
// Task ids minted elsewhere are opaque strings, so no format is enforced.
func WithTaskID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "Task ID is required", nil)
				return
			}

			ctx := task_context.WithTaskID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
