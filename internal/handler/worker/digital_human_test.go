package worker

import (
	"context"
	"testing"

	"github.com/aiforge/tasks-ms-go/internal/mock"
	"github.com/aiforge/tasks-ms-go/internal/model"
)

func TestDigitalHumanHandler(t *testing.T) {
	ai := mock.InferenceCaller{Out: []byte(`{"video":"avatar.mp4"}`)}
	h := DigitalHumanHandler(&ai)

	rec, _ := model.ParseTaskRecord([]byte(`{"task_id":"t1","type":"digital_human","script":"hello","avatar_ref":"avatar-7"}`))
	if _, err := h(context.Background(), rec); err != nil {
		t.Fatalf("handler: %v", err)
	}

	p := ai.Payloads[0]
	inputs, ok := p.Inputs.(map[string]any)
	if !ok {
		t.Fatalf("inputs type = %T", p.Inputs)
	}
	if inputs["script"] != "hello" || inputs["avatar"] != "avatar-7" {
		t.Errorf("inputs = %v", inputs)
	}
	if p.Parameters["task"] != "digital_human" {
		t.Errorf("parameters = %v", p.Parameters)
	}
}

func TestDigitalHumanHandler_MissingScript(t *testing.T) {
	ai := mock.InferenceCaller{}
	h := DigitalHumanHandler(&ai)

	rec, _ := model.ParseTaskRecord([]byte(`{"task_id":"t1","type":"digital_human","avatar_ref":"a"}`))
	if _, err := h(context.Background(), rec); err == nil {
		t.Error("expected an invalid payload error for a missing script")
	}
	if ai.CallCalled {
		t.Error("inference must not be called for an invalid payload")
	}
}
