package model

import (
	"encoding/json"
	"time"
)

// TaskStatus is the lifecycle state surfaced to status readers. A task with no
// status record at all is implicitly pending.
type TaskStatus string

const (
	StatusProcessing TaskStatus = "processing"
	StatusCompleted  TaskStatus = "completed"
	StatusFailed     TaskStatus = "failed"
)

// StatusRecord is the TTL-bounded outcome record stored under `task:<task_id>`.
// It is always written wholesale; there is no partial update.
type StatusRecord struct {
	TaskID    string          `json:"task_id"`
	Status    TaskStatus      `json:"status"`
	Progress  int             `json:"progress"`
	Timestamp float64         `json:"timestamp"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// EpochSeconds converts t to the fractional-seconds-since-epoch format status
// readers expect in the `timestamp` field.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
