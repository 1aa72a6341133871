package api

import (
	"net/http"

	"github.com/aiforge/tasks-ms-go/internal/port"
)

func HealthHandler(q port.Queue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := q.Ping(r.Context()); err != nil {
			WriteError(w, http.StatusServiceUnavailable, "Task store unreachable", err)
			return
		}

		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
