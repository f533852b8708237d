package flan

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewResponse_Envelope(t *testing.T) {
	t.Parallel()

	before := time.Now()
	resp := NewResponse(StatusFlanPerfect, map[string]any{"pong": true}, "hello")

	if resp.Protocol != ProtocolVersion {
		t.Fatalf("protocol: want %q, got %q", ProtocolVersion, resp.Protocol)
	}
	if resp.Status.Code != 200 {
		t.Fatalf("status code: want 200, got %d", resp.Status.Code)
	}
	if resp.Message != "hello" {
		t.Fatalf("message: got %q", resp.Message)
	}
	if resp.Data == nil {
		t.Fatalf("data dropped")
	}
	if resp.Timestamp < float64(before.Unix()) {
		t.Fatalf("timestamp in the past: %f", resp.Timestamp)
	}
	if _, err := time.Parse(time.RFC3339, resp.TimestampHuman); err != nil {
		t.Fatalf("timestamp_human not RFC3339: %v", err)
	}
}

func TestNewResponse_OmitsEmptyDataAndMessage(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(NewResponse(StatusEmptyMold, nil, ""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, `"data"`) {
		t.Errorf("empty data not omitted: %s", body)
	}
	if strings.Contains(body, `"message"`) {
		t.Errorf("empty message not omitted: %s", body)
	}
}
