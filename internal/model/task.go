package model

import (
	"encoding/json"
	"fmt"
)

// Recognized task types. The dispatcher treats these as configuration: handlers
// are registered per type at wiring time, nothing here is a closed set.
const (
	TypeVideoGeneration = "video_generation"
	TypeVideoAnalysis   = "video_analysis"
	TypeDigitalHuman    = "digital_human"
	TypeVideoProcessing = "video_processing"
	TypeImageGeneration = "image_generation"
)

// RecognizedTypes lists every task type this service ships a handler for.
func RecognizedTypes() []string {
	return []string{
		TypeVideoGeneration,
		TypeVideoAnalysis,
		TypeDigitalHuman,
		TypeVideoProcessing,
		TypeImageGeneration,
	}
}

// TaskRecord is the envelope of a unit of work pulled off the pending queue.
// Raw keeps the full serialized record so the per-type payload can be decoded
// once a handler has been selected.
type TaskRecord struct {
	TaskID string `json:"task_id"`
	Type   string `json:"type"`

	Raw json.RawMessage `json:"-"`
}

// ParseTaskRecord decodes the envelope fields of a queued task. Handler-specific
// fields stay untouched in Raw; they are validated at dispatch time.
func ParseTaskRecord(data []byte) (TaskRecord, error) {
	var rec TaskRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return TaskRecord{}, fmt.Errorf("could not unmarshal task record: %w", err)
	}
	rec.Raw = append(json.RawMessage(nil), data...)
	return rec, nil
}

// VideoGenerationTask holds the fields of a video_generation task.
type VideoGenerationTask struct {
	Prompt   string `json:"prompt" validate:"required"`
	Style    string `json:"style"`
	Duration int    `json:"duration" validate:"gte=0"`
}

// VideoAnalysisTask holds the fields of a video_analysis task. The video is
// referenced by URL; this worker never reads analysis inputs from disk.
type VideoAnalysisTask struct {
	VideoURL string `json:"video_url" validate:"required"`
}

// DigitalHumanTask holds the fields of a digital_human task. AvatarRef may be
// a URL or an upstream identifier.
type DigitalHumanTask struct {
	Script    string `json:"script" validate:"required"`
	AvatarRef string `json:"avatar_ref"`
}

// VideoProcessingTask holds the fields of a video_processing task. It is the
// only task type handled locally, on filesystem paths.
type VideoProcessingTask struct {
	Operation  string `json:"operation" validate:"omitempty,oneof=optimise resize"`
	InputPath  string `json:"input_path" validate:"required"`
	OutputPath string `json:"output_path"`
	Width      int    `json:"width" validate:"gte=0"`
	Height     int    `json:"height" validate:"gte=0"`
}

// ImageGenerationTask holds the fields of an image_generation task.
type ImageGenerationTask struct {
	Prompt string `json:"prompt" validate:"required"`
	Style  string `json:"style"`
}

// DecodePayload unmarshals the handler-specific fields of the record into dst,
// which must be a pointer to one of the *Task variant structs.
func (r TaskRecord) DecodePayload(dst any) error {
	if err := json.Unmarshal(r.Raw, dst); err != nil {
		return fmt.Errorf("could not decode %s payload: %w", r.Type, err)
	}
	return nil
}
