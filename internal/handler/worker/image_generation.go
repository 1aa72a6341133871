package worker

import (
	"context"
	"encoding/json"

	"github.com/aiforge/tasks-ms-go/internal/dispatch"
	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/aiforge/tasks-ms-go/internal/validation"
)

// ImageGenerationHandler builds the text-to-image inference payload. The raw
// response (typically an `images` array) is stored as the task result as-is.
func ImageGenerationHandler(ai port.InferenceCaller) dispatch.HandlerFunc {
	return func(ctx context.Context, rec model.TaskRecord) (json.RawMessage, error) {
		var p model.ImageGenerationTask
		if err := rec.DecodePayload(&p); err != nil {
			return nil, err
		}
		if err := validation.ValidateStruct(p); err != nil {
			return nil, invalidPayloadErr(model.TypeImageGeneration, err)
		}

		payload := port.InferencePayload{
			Inputs: p.Prompt,
			Options: map[string]any{
				"wait_for_model": true,
			},
		}
		if p.Style != "" {
			payload.Parameters = map[string]any{"style": p.Style}
		}

		return ai.Call(ctx, payload)
	}
}
