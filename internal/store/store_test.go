package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "exercise",
		SessionID:    "run-1",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    450,
		CostUSD:      0.0002,
		Success:      true,
		RequestBody:  "[user]\ngenerate",
		ResponseBody: "<exercise>Write a letter.</exercise>",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "feedback",
		Success: false, ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append second: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "feedback" || events[1].Purpose != "exercise" {
		t.Fatalf("unexpected order: %s, %s", events[0].Purpose, events[1].Purpose)
	}
	if events[1].InputTokens != 120 || !events[1].Success {
		t.Fatalf("event fields lost: %+v", events[1])
	}
	if events[1].Timestamp.IsZero() {
		t.Fatal("expected parsed timestamp")
	}
}

func TestQueryFilterByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, p := range []string{"exercise", "feedback", "exercise"} {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: p, Success: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "exercise"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 exercise events, got %d", len(events))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "qa", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "qa" {
		t.Fatalf("unexpected event: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "exercise", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, CostUSD: 0.001, Success: true},
		{Provider: "mock", Model: "m1", Purpose: "exercise", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, CostUSD: 0.001, Success: true},
		{Provider: "mock", Model: "m2", Purpose: "feedback", InputTokens: 300, OutputTokens: 200, LatencyMs: 600, CostUSD: 0.004, Success: true},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose groups, got %d", len(byPurpose))
	}
	if byPurpose[0].Key != "exercise" || byPurpose[0].Calls != 2 {
		t.Fatalf("unexpected top group: %+v", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 200 || byPurpose[0].AvgLatencyMs != 300 {
		t.Fatalf("bad aggregates: %+v", byPurpose[0])
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model groups, got %d", len(byModel))
	}
}
