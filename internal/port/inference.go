package port

import (
	"context"
	"encoding/json"
)

// InferencePayload is the request body shape of the remote inference API.
type InferencePayload struct {
	Inputs     any            `json:"inputs"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Options    map[string]any `json:"options,omitempty"`
}

// InferenceCaller performs a remote inference call and returns the decoded
// JSON response body. Failures come back as an *inference.CallError carrying
// the upstream HTTP status code when one was received.
type InferenceCaller interface {
	Call(ctx context.Context, p InferencePayload) (json.RawMessage, error)
}
