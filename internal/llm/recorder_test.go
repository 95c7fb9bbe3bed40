package llm

import (
	"context"
	"encoding/json"
	"testing"
)

func TestWithRecording_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{}`),
			Usage:   Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	)
	log := NewUsageLog()
	p := WithRecording(mock, log)

	ctx := WithPurpose(context.Background(), "question-gen")
	ctx = WithSessionID(ctx, "sess-1234")
	if _, err := p.Generate(ctx, Request{MaxTokens: 64}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := log.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID == "" {
		t.Error("expected a request ID")
	}
	if e.Purpose != "question-gen" {
		t.Errorf("Purpose = %q, want question-gen", e.Purpose)
	}
	if e.SessionID != "sess-1234" {
		t.Errorf("SessionID = %q, want sess-1234", e.SessionID)
	}
	if e.Usage.InputTokens != 100 || e.Usage.OutputTokens != 50 {
		t.Errorf("Usage = %+v, want 100 in / 50 out", e.Usage)
	}
	if e.Err != "" {
		t.Errorf("Err = %q, want empty", e.Err)
	}
}

func TestWithRecording_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrTransport{StatusCode: 500, Body: "upstream exploded"}},
	)
	log := NewUsageLog()
	p := WithRecording(mock, log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	last, ok := log.Last()
	if !ok {
		t.Fatal("expected a recorded entry")
	}
	if last.Err == "" {
		t.Error("expected error message in entry")
	}

	totals := log.Totals()
	if totals.Requests != 1 || totals.Failures != 1 {
		t.Errorf("Totals = %+v, want 1 request / 1 failure", totals)
	}
}

func TestUsageLog_Totals(t *testing.T) {
	log := NewUsageLog()
	log.add(UsageEntry{Usage: Usage{InputTokens: 10, OutputTokens: 5}, CostUSD: 0.001})
	log.add(UsageEntry{Usage: Usage{InputTokens: 20, OutputTokens: 15}, CostUSD: 0.002})
	log.add(UsageEntry{Err: "boom"})

	totals := log.Totals()
	if totals.Requests != 3 {
		t.Errorf("Requests = %d, want 3", totals.Requests)
	}
	if totals.Failures != 1 {
		t.Errorf("Failures = %d, want 1", totals.Failures)
	}
	if totals.InputTokens != 30 || totals.OutputTokens != 20 {
		t.Errorf("tokens = %d in / %d out, want 30 / 20", totals.InputTokens, totals.OutputTokens)
	}
	if totals.CostUSD < 0.0029 || totals.CostUSD > 0.0031 {
		t.Errorf("CostUSD = %v, want ~0.003", totals.CostUSD)
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 2.5, OutputPerMTok: 10}
	got := c.Cost(1_000_000, 500_000)
	want := 2.5 + 5.0
	if got != want {
		t.Fatalf("Cost = %v, want %v", got, want)
	}
}

func TestLookupCost(t *testing.T) {
	if LookupCost("gpt-4o-mini") == nil {
		t.Error("expected pricing for gpt-4o-mini")
	}
	if LookupCost("some-unknown-model") != nil {
		t.Error("expected nil for unknown model")
	}
}
