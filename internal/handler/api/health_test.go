package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aiforge/tasks-ms-go/internal/mock"
)

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		handlerFn := HealthHandler(&mock.Queue{})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()
		handlerFn(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rr.Code, http.StatusOK)
		}
		if !strings.Contains(rr.Body.String(), `"ok"`) {
			t.Errorf("body = %q; want to contain %q", rr.Body.String(), `"ok"`)
		}
	})

	t.Run("store unreachable", func(t *testing.T) {
		handlerFn := HealthHandler(&mock.Queue{PingErr: errors.New("connection refused")})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()
		handlerFn(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d; want %d", rr.Code, http.StatusServiceUnavailable)
		}
		if !strings.Contains(rr.Body.String(), "Task store unreachable") {
			t.Errorf("body = %q", rr.Body.String())
		}
	})
}
