package worker

import (
	"context"
	"encoding/json"

	"github.com/aiforge/tasks-ms-go/internal/dispatch"
	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/aiforge/tasks-ms-go/internal/validation"
)

// VideoGenerationHandler builds the text-to-video inference payload and
// delegates the call.
func VideoGenerationHandler(ai port.InferenceCaller) dispatch.HandlerFunc {
	return func(ctx context.Context, rec model.TaskRecord) (json.RawMessage, error) {
		var p model.VideoGenerationTask
		if err := rec.DecodePayload(&p); err != nil {
			return nil, err
		}
		if err := validation.ValidateStruct(p); err != nil {
			return nil, invalidPayloadErr(model.TypeVideoGeneration, err)
		}
		if p.Style == "" {
			p.Style = "cinematic"
		}
		if p.Duration == 0 {
			p.Duration = 5
		}

		return ai.Call(ctx, port.InferencePayload{
			Inputs: p.Prompt,
			Parameters: map[string]any{
				"style":    p.Style,
				"duration": p.Duration,
			},
			Options: map[string]any{
				"wait_for_model": true,
			},
		})
	}
}
