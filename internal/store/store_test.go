package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendProblem(ctx, ProblemEventData{
		ProblemID:    "p1",
		Level:        "2A",
		Worksheet:    10,
		Topic:        "addition",
		Subtype:      "add-small",
		QuestionText: "4 + 3 =",
		Answer:       "7",
		AnswerKind:   "integer",
	})
	if err != nil {
		t.Fatalf("append problem: %v", err)
	}

	err = repo.AppendHint(ctx, HintEventData{
		ProblemID:    "p1",
		Level:        "2A",
		Tag:          "add",
		Tier:         "micro",
		QuestionText: "4 + 3 =",
		HintText:     "Start at 4 and count up 3.",
	})
	if err != nil {
		t.Fatalf("append hint: %v", err)
	}

	pe, err := s.Client().ProblemEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query problem event: %v", err)
	}
	he, err := s.Client().HintEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query hint event: %v", err)
	}

	if he.Sequence <= pe.Sequence {
		t.Errorf("hint sequence %d should follow problem sequence %d", he.Sequence, pe.Sequence)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5",
		Purpose:      "hint-enrich",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    450,
		CostUSD:      0.00052,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	ev, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if ev.Purpose != "hint-enrich" {
		t.Errorf("purpose = %q, want 'hint-enrich'", ev.Purpose)
	}
	if !ev.Success {
		t.Error("expected success = true")
	}
}

func TestQueryLLMEvents_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"hint-enrich", "hint-enrich", "preview"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      purpose,
			InputTokens:  10,
			OutputTokens: 5,
			LatencyMs:    100,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := s.LLMEvents().QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected newest first, got sequences %d, %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].Purpose != "preview" {
		t.Errorf("newest purpose = %q, want 'preview'", events[0].Purpose)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:    "mock",
		Model:       "mock-model",
		Purpose:     "hint-enrich",
		Success:     true,
		RequestBody: "[user]\nhello",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.LLMEvents().QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := s.LLMEvents().GetLLMEvent(ctx, events[0].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.RequestBody != "[user]\nhello" {
		t.Errorf("event = %+v", e)
	}

	missing, err := s.LLMEvents().GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "mock", Model: "model-a", Purpose: "hint-enrich", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "mock", Model: "model-a", Purpose: "hint-enrich", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "mock", Model: "model-b", Purpose: "preview", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: true},
	}
	for i, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := s.LLMEvents().LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	found := false
	for _, u := range byPurpose {
		if u.Purpose != "hint-enrich" {
			continue
		}
		found = true
		if u.Calls != 2 || u.InputTokens != 400 || u.OutputTokens != 200 {
			t.Errorf("hint-enrich usage = %+v", u)
		}
		if u.AvgLatencyMs != 300 {
			t.Errorf("avg latency = %d, want 300", u.AvgLatencyMs)
		}
	}
	if !found {
		t.Fatal("no hint-enrich row in purpose aggregation")
	}

	byModel, err := s.LLMEvents().LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d model rows, want 2", len(byModel))
	}
}

func TestCustomerLookupAndCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Customers()
	ctx := context.Background()

	_, err := repo.ByUserID(ctx, "user-1")
	if err == nil {
		t.Fatal("expected error for missing customer")
	}
	var noCust *ErrNoCustomer
	if !errors.As(err, &noCust) {
		t.Fatalf("expected ErrNoCustomer, got: %T", err)
	}
	if noCust.UserID != "user-1" {
		t.Errorf("error user ID = %q, want 'user-1'", noCust.UserID)
	}

	err = repo.Create(ctx, Customer{
		UserID:     "user-1",
		CustomerID: "cus_123",
		Email:      "kid@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	c, err := repo.ByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("lookup after create: %v", err)
	}
	if c.CustomerID != "cus_123" {
		t.Errorf("customer ID = %q, want 'cus_123'", c.CustomerID)
	}
	if c.Email != "kid@example.com" {
		t.Errorf("email = %q", c.Email)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"problem_events", "hint_events", "llm_request_events", "billing_customers"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
