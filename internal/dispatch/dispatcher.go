package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aiforge/tasks-ms-go/internal/logger"
	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
)

// HandlerFunc performs the work for one task type. It gets the full record and
// returns either a structured result or an error; it must not write status
// records itself.
type HandlerFunc func(ctx context.Context, rec model.TaskRecord) (json.RawMessage, error)

// Dispatcher routes claimed tasks to the handler registered for their type and
// writes exactly one terminal status record per dispatched task. Handler
// faults, including panics, never escape Dispatch.
type Dispatcher struct {
	handlers map[string]HandlerFunc
	recorder port.StatusRecorder
}

func NewDispatcher(recorder port.StatusRecorder) *Dispatcher {
	return &Dispatcher{
		handlers: map[string]HandlerFunc{},
		recorder: recorder,
	}
}

// Register binds a task type to its handler. The recognized set is whatever
// has been registered at wiring time.
func (d *Dispatcher) Register(taskType string, h HandlerFunc) {
	d.handlers[taskType] = h
}

// Dispatch processes one claimed task record to its terminal status.
func (d *Dispatcher) Dispatch(ctx context.Context, rec model.TaskRecord) {
	if rec.TaskID == "" {
		// nothing to key a failure record by
		logger.Warnf(ctx, "⚠️  Dropping task without task_id (type %q)", rec.Type)
		return
	}

	logger.Infof(ctx, "🎯 Processing task #%s (type %q)", rec.TaskID, rec.Type)

	// the claim already happened; make the in-flight state observable
	d.record(ctx, rec.TaskID, model.StatusProcessing, 0, nil, "")

	h, ok := d.handlers[rec.Type]
	if !ok {
		errMsg := fmt.Sprintf("unknown task type: %s", rec.Type)
		logger.Warnf(ctx, "⚠️  Task #%s: %s", rec.TaskID, errMsg)
		d.record(ctx, rec.TaskID, model.StatusFailed, 0, nil, errMsg)
		return
	}

	result, err := d.invoke(ctx, h, rec)
	if err != nil {
		logger.Errorf(ctx, "❌  Task #%s failed: %v", rec.TaskID, err)
		d.record(ctx, rec.TaskID, model.StatusFailed, 0, nil, err.Error())
		return
	}

	logger.Infof(ctx, "✅  Task #%s completed", rec.TaskID)
	d.record(ctx, rec.TaskID, model.StatusCompleted, 100, result, "")
}

// invoke runs the handler behind a recover barrier so a panicking handler
// degrades to a failed status instead of killing the worker loop.
func (d *Dispatcher) invoke(ctx context.Context, h HandlerFunc, rec model.TaskRecord) (result json.RawMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, rec)
}

func (d *Dispatcher) record(ctx context.Context, taskID string, st model.TaskStatus, progress int, result json.RawMessage, errMsg string) {
	if err := d.recorder.Record(ctx, taskID, st, progress, result, errMsg); err != nil {
		// the task outcome is lost for status readers, but the loop moves on
		logger.Errorf(ctx, "❌  Could not record status %q for task #%s: %v", st, taskID, err)
	}
}
