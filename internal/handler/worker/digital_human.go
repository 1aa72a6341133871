package worker

import (
	"context"
	"encoding/json"

	"github.com/aiforge/tasks-ms-go/internal/dispatch"
	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/aiforge/tasks-ms-go/internal/validation"
)

// DigitalHumanHandler builds the avatar-rendering inference payload.
func DigitalHumanHandler(ai port.InferenceCaller) dispatch.HandlerFunc {
	return func(ctx context.Context, rec model.TaskRecord) (json.RawMessage, error) {
		var p model.DigitalHumanTask
		if err := rec.DecodePayload(&p); err != nil {
			return nil, err
		}
		if err := validation.ValidateStruct(p); err != nil {
			return nil, invalidPayloadErr(model.TypeDigitalHuman, err)
		}

		return ai.Call(ctx, port.InferencePayload{
			Inputs: map[string]any{
				"script": p.Script,
				"avatar": p.AvatarRef,
			},
			Parameters: map[string]any{
				"task": model.TypeDigitalHuman,
			},
		})
	}
}
