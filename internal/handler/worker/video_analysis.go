package worker

import (
	"context"
	"encoding/json"

	"github.com/aiforge/tasks-ms-go/internal/dispatch"
	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/aiforge/tasks-ms-go/internal/validation"
)

// VideoAnalysisHandler sends the referenced video off for remote analysis.
// Inputs are URLs or upstream identifiers, never local paths.
func VideoAnalysisHandler(ai port.InferenceCaller) dispatch.HandlerFunc {
	return func(ctx context.Context, rec model.TaskRecord) (json.RawMessage, error) {
		var p model.VideoAnalysisTask
		if err := rec.DecodePayload(&p); err != nil {
			return nil, err
		}
		if err := validation.ValidateStruct(p); err != nil {
			return nil, invalidPayloadErr(model.TypeVideoAnalysis, err)
		}

		return ai.Call(ctx, port.InferencePayload{
			Inputs: p.VideoURL,
			Parameters: map[string]any{
				"task": model.TypeVideoAnalysis,
			},
		})
	}
}
