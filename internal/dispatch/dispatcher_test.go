package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aiforge/tasks-ms-go/internal/mock"
	"github.com/aiforge/tasks-ms-go/internal/model"
)

func makeRecord(t *testing.T, raw string) model.TaskRecord {
	t.Helper()
	rec, err := model.ParseTaskRecord([]byte(raw))
	if err != nil {
		t.Fatalf("ParseTaskRecord: %v", err)
	}
	return rec
}

func TestDispatch_Success(t *testing.T) {
	rec := mock.StatusRecorder{}
	d := NewDispatcher(&rec)

	var handlerCalls int
	d.Register("image_generation", func(ctx context.Context, r model.TaskRecord) (json.RawMessage, error) {
		handlerCalls++
		return json.RawMessage(`{"images":["a.png"]}`), nil
	})

	d.Dispatch(context.Background(), makeRecord(t, `{"task_id":"t1","type":"image_generation","prompt":"a cat"}`))

	if handlerCalls != 1 {
		t.Fatalf("handler called %d times; want exactly once", handlerCalls)
	}
	if len(rec.Records) != 2 {
		t.Fatalf("got %d status writes; want processing + terminal", len(rec.Records))
	}
	if rec.Records[0].Status != model.StatusProcessing || rec.Records[0].Progress != 0 {
		t.Errorf("first record = %+v; want processing/0", rec.Records[0])
	}
	term, ok := rec.Terminal()
	if !ok {
		t.Fatal("no terminal record written")
	}
	if term.TaskID != "t1" || term.Status != model.StatusCompleted || term.Progress != 100 {
		t.Errorf("terminal = %+v; want t1/completed/100", term)
	}
	if string(term.Result) != `{"images":["a.png"]}` {
		t.Errorf("result = %s", term.Result)
	}
}

func TestDispatch_HandlerError(t *testing.T) {
	rec := mock.StatusRecorder{}
	d := NewDispatcher(&rec)
	d.Register("video_analysis", func(ctx context.Context, r model.TaskRecord) (json.RawMessage, error) {
		return nil, errors.New("video_analysis task is missing video_url")
	})

	d.Dispatch(context.Background(), makeRecord(t, `{"task_id":"t2","type":"video_analysis"}`))

	term, ok := rec.Terminal()
	if !ok {
		t.Fatal("no terminal record written")
	}
	if term.Status != model.StatusFailed || term.Progress != 0 {
		t.Errorf("terminal = %+v; want failed/0", term)
	}
	if !strings.Contains(term.Error, "missing video_url") {
		t.Errorf("error = %q; want the handler detail preserved", term.Error)
	}
}

func TestDispatch_UnknownType(t *testing.T) {
	rec := mock.StatusRecorder{}
	d := NewDispatcher(&rec)

	d.Dispatch(context.Background(), makeRecord(t, `{"task_id":"t3","type":"bogus"}`))

	term, ok := rec.Terminal()
	if !ok {
		t.Fatal("no terminal record written")
	}
	if term.Status != model.StatusFailed {
		t.Errorf("status = %q; want failed", term.Status)
	}
	if !strings.Contains(term.Error, "unknown task type: bogus") {
		t.Errorf("error = %q; want it to name the offending type", term.Error)
	}
}

func TestDispatch_MissingTaskID(t *testing.T) {
	rec := mock.StatusRecorder{}
	d := NewDispatcher(&rec)

	var handlerCalled bool
	d.Register("image_generation", func(ctx context.Context, r model.TaskRecord) (json.RawMessage, error) {
		handlerCalled = true
		return nil, nil
	})

	d.Dispatch(context.Background(), makeRecord(t, `{"type":"image_generation","prompt":"x"}`))

	if handlerCalled {
		t.Error("handler should not run for a task without task_id")
	}
	if rec.RecordCalled {
		t.Error("no status should be written when there is no id to key it by")
	}
}

func TestDispatch_HandlerPanic(t *testing.T) {
	rec := mock.StatusRecorder{}
	d := NewDispatcher(&rec)
	d.Register("digital_human", func(ctx context.Context, r model.TaskRecord) (json.RawMessage, error) {
		panic("avatar renderer exploded")
	})

	// must not propagate
	d.Dispatch(context.Background(), makeRecord(t, `{"task_id":"t4","type":"digital_human"}`))

	term, ok := rec.Terminal()
	if !ok {
		t.Fatal("no terminal record written")
	}
	if term.Status != model.StatusFailed {
		t.Errorf("status = %q; want failed", term.Status)
	}
	if !strings.Contains(term.Error, "avatar renderer exploded") {
		t.Errorf("error = %q; want the panic detail", term.Error)
	}
}

func TestDispatch_RecorderErrorDoesNotPanic(t *testing.T) {
	rec := mock.StatusRecorder{RecordErr: errors.New("redis down")}
	d := NewDispatcher(&rec)
	d.Register("image_generation", func(ctx context.Context, r model.TaskRecord) (json.RawMessage, error) {
		return json.RawMessage(`{}`), nil
	})

	// should only log
	d.Dispatch(context.Background(), makeRecord(t, `{"task_id":"t5","type":"image_generation"}`))
}
