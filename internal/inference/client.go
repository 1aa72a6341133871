package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aiforge/tasks-ms-go/internal/port"
)

// Remote calls can legitimately run for minutes while a model loads or a video
// renders; past this bound the call is treated as failed.
const callTimeout = 600 * time.Second

// maxErrorBodyBytes caps how much of an upstream error body is kept in the
// failure message.
const maxErrorBodyBytes = 512

// CallError describes a failed inference call. StatusCode is zero when no HTTP
// response was received (network error, timeout, unconfigured client).
type CallError struct {
	Msg        string
	StatusCode int
}

func (e *CallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("inference call failed (HTTP %d): %s", e.StatusCode, e.Msg)
	}
	return "inference call failed: " + e.Msg
}

// Client calls the remote inference API. Endpoint and token come from the
// environment; when either is missing the client is constructed anyway and
// every call fails with a per-task error, so a misconfigured worker keeps
// draining its queue.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

// compile-time check: *Client must satisfy port.InferenceCaller
var _ port.InferenceCaller = (*Client)(nil)

func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: callTimeout},
	}
}

func (c *Client) Configured() bool {
	return c.endpoint != "" && c.token != ""
}

func (c *Client) Call(ctx context.Context, p port.InferencePayload) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, &CallError{Msg: "HF_API_URL or HF_API_KEY is not configured"}
	}

	body, err := json.Marshal(p)
	if err != nil {
		return nil, &CallError{Msg: fmt.Sprintf("could not marshal payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &CallError{Msg: fmt.Sprintf("could not build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &CallError{Msg: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &CallError{Msg: fmt.Sprintf("could not read response body: %v", err), StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &CallError{Msg: truncate(data), StatusCode: resp.StatusCode}
	}

	if !json.Valid(data) {
		return nil, &CallError{Msg: "response body is not valid JSON", StatusCode: resp.StatusCode}
	}
	return json.RawMessage(data), nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodyBytes {
		return string(body[:maxErrorBodyBytes]) + "…"
	}
	return string(body)
}
