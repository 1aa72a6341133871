package mock

import (
	"context"
	"encoding/json"

	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
)

// RecordedStatus captures one StatusRecorder.Record call.
type RecordedStatus struct {
	TaskID   string
	Status   model.TaskStatus
	Progress int
	Result   json.RawMessage
	Error    string
}

// StatusRecorder implements status recording for tests.
type StatusRecorder struct {
	// stored raw record returned by Get
	Stored json.RawMessage

	// errors
	RecordErr error
	GetErr    error

	// call flags
	RecordCalled bool
	GetCalled    bool

	// every Record call in order
	Records []RecordedStatus
}

// compile-time check: *StatusRecorder must satisfy port.StatusRecorder
var _ port.StatusRecorder = (*StatusRecorder)(nil)

func (r *StatusRecorder) Record(ctx context.Context, taskID string, st model.TaskStatus, progress int, result json.RawMessage, errMsg string) error {
	r.RecordCalled = true
	if r.RecordErr != nil {
		return r.RecordErr
	}
	r.Records = append(r.Records, RecordedStatus{
		TaskID:   taskID,
		Status:   st,
		Progress: progress,
		Result:   append(json.RawMessage(nil), result...),
		Error:    errMsg,
	})
	return nil
}

func (r *StatusRecorder) Get(ctx context.Context, taskID string) (json.RawMessage, error) {
	r.GetCalled = true
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.Stored, nil
}

// Terminal returns the last non-processing record, if any.
func (r *StatusRecorder) Terminal() (RecordedStatus, bool) {
	for i := len(r.Records) - 1; i >= 0; i-- {
		if r.Records[i].Status != model.StatusProcessing {
			return r.Records[i], true
		}
	}
	return RecordedStatus{}, false
}
