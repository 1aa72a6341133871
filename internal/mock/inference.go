package mock

import (
	"context"
	"encoding/json"

	"github.com/aiforge/tasks-ms-go/internal/port"
)

// InferenceCaller implements the remote inference call for tests.
type InferenceCaller struct {
	// response to return
	Out json.RawMessage

	// error to return
	CallErr error

	// call flags and captured args
	CallCalled bool
	Payloads   []port.InferencePayload
}

// compile-time check: *InferenceCaller must satisfy port.InferenceCaller
var _ port.InferenceCaller = (*InferenceCaller)(nil)

func (c *InferenceCaller) Call(ctx context.Context, p port.InferencePayload) (json.RawMessage, error) {
	c.CallCalled = true
	c.Payloads = append(c.Payloads, p)
	if c.CallErr != nil {
		return nil, c.CallErr
	}
	return c.Out, nil
}
