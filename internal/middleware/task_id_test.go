package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aiforge/tasks-ms-go/internal/task_context"
	"github.com/go-chi/chi/v5"
)

func TestWithTaskID(t *testing.T) {
	var gotID string
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		gotID, _ = task_context.TaskIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	router := chi.NewRouter()
	router.With(WithTaskID()).Get("/tasks/{id}", next)

	t.Run("id stashed in context", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodGet, "/tasks/task-abc-123", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusNoContent)
		}
		if !nextCalled {
			t.Fatal("next handler not called")
		}
		if gotID != "task-abc-123" {
			t.Fatalf("task id = %q; want %q", gotID, "task-abc-123")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodGet, "/tasks/", nil)
		rec := httptest.NewRecorder()
		rctx := chi.NewRouteContext()
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		handler := WithTaskID()(next)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
		if nextCalled {
			t.Fatal("next handler should not be called")
		}
	})
}
