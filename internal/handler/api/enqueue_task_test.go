package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aiforge/tasks-ms-go/internal/mock"
	"github.com/aiforge/tasks-ms-go/internal/model"
)

func TestEnqueueTaskHandler(t *testing.T) {
	const fixedID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

	tests := []struct {
		name       string
		body       string
		enqueueErr error
		wantStatus int

		wantEnqueued     bool
		wantErrorMap     map[string]string
		wantBodyContains string
	}{
		{
			name:         "happy path",
			body:         `{"type":"image_generation","prompt":"a red fox"}`,
			wantStatus:   http.StatusCreated,
			wantEnqueued: true,
		},
		{
			name:             "invalid JSON",
			body:             `{"type":`, // malformed
			wantStatus:       http.StatusBadRequest,
			wantBodyContains: "Invalid request",
		},
		{
			name:         "validation error: missing type",
			body:         `{"prompt":"a red fox"}`,
			wantStatus:   http.StatusBadRequest,
			wantErrorMap: map[string]string{"type": "required"},
		},
		{
			name:             "unrecognized type",
			body:             `{"type":"quantum_render"}`,
			wantStatus:       http.StatusBadRequest,
			wantBodyContains: "Unrecognized task type",
		},
		{
			name:             "queue error",
			body:             `{"type":"image_generation","prompt":"a red fox"}`,
			enqueueErr:       errors.New("boom"),
			wantStatus:       http.StatusInternalServerError,
			wantBodyContains: "Could not enqueue task",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := &mock.Queue{EnqueueErr: tc.enqueueErr}
			handlerFn := EnqueueTaskHandler(q, model.RecognizedTypes(), func() string { return fixedID })

			req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			handlerFn(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if gotCT := rec.Header().Get("Content-Type"); gotCT != "application/json" {
				t.Errorf("Content-Type = %q; want %q", gotCT, "application/json")
			}

			data := rec.Body.Bytes()

			switch {
			case tc.wantEnqueued:
				var out EnqueueTaskResponse
				if err := json.Unmarshal(data, &out); err != nil {
					t.Fatalf("JSON decode = %v (body=%q)", err, string(data))
				}
				if out.TaskID != fixedID {
					t.Errorf("task_id = %q; want %q", out.TaskID, fixedID)
				}
				if q.EnqueuedID != fixedID {
					t.Errorf("enqueued id = %q; want %q", q.EnqueuedID, fixedID)
				}

				var stored map[string]any
				if err := json.Unmarshal(q.EnqueuedPayload, &stored); err != nil {
					t.Fatalf("stored payload: %v", err)
				}
				if stored["task_id"] != fixedID {
					t.Errorf("stored task_id = %v; want %q", stored["task_id"], fixedID)
				}
				if stored["prompt"] != "a red fox" {
					t.Errorf("stored prompt = %v; want %q", stored["prompt"], "a red fox")
				}

			case tc.wantErrorMap != nil:
				var errs map[string]string
				if err := json.Unmarshal(data, &errs); err != nil {
					t.Fatalf("error JSON: %v; body=%q", err, string(data))
				}
				for k, want := range tc.wantErrorMap {
					if got, ok := errs[k]; !ok {
						t.Errorf("missing key %q in error response: %v", k, errs)
					} else if got != want {
						t.Errorf("errs[%q] = %q; want %q", k, got, want)
					}
				}
				if q.EnqueueCalled {
					t.Error("Enqueue should not have been called")
				}

			case tc.wantBodyContains != "":
				if !strings.Contains(string(data), tc.wantBodyContains) {
					t.Errorf("body = %q; want to contain %q", string(data), tc.wantBodyContains)
				}

			default:
				t.Fatal("test case has no assertion target!")
			}
		})
	}
}
