package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/misaki/kumora/internal/store"
)

type captureEventRepo struct {
	events []store.LLMRequestEventData
}

func (c *captureEventRepo) AppendProblem(context.Context, store.ProblemEventData) error {
	return nil
}

func (c *captureEventRepo) AppendHint(context.Context, store.HintEventData) error {
	return nil
}

func (c *captureEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func TestLogging_RecordsSuccessfulRequest(t *testing.T) {
	repo := &captureEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 100, OutputTokens: 40},
	})
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), "hint-enrich")
	_, err := p.Generate(ctx, Request{
		System:   "be helpful",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "mock" || ev.Model != "mock" {
		t.Errorf("provider/model = %q/%q", ev.Provider, ev.Model)
	}
	if ev.Purpose != "hint-enrich" {
		t.Errorf("purpose = %q, want 'hint-enrich'", ev.Purpose)
	}
	if ev.InputTokens != 100 || ev.OutputTokens != 40 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	if !ev.Success {
		t.Error("expected success")
	}
	if !strings.Contains(ev.RequestBody, "[system]") || !strings.Contains(ev.RequestBody, "hello") {
		t.Errorf("request body missing content: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &captureEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	p := WithLogging(mock, "mock", repo)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected success = false")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected an error message")
	}
}

func TestLogging_NilRepoSkipsLogging(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil)

	if _, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}); err != nil {
		t.Fatalf("generate with nil repo: %v", err)
	}
}

func TestLogging_AttachesKnownModelCost(t *testing.T) {
	repo := &captureEventRepo{}
	p := WithLogging(&fixedModelProvider{model: "gpt-4o-mini"}, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	want := LookupCost("gpt-4o-mini").Cost(1_000_000, 1_000_000)
	if got := repo.events[0].CostUSD; got != want {
		t.Errorf("cost = %v, want %v", got, want)
	}
}

// fixedModelProvider reports a real model ID so pricing lookup applies.
type fixedModelProvider struct {
	model string
}

func (f *fixedModelProvider) Generate(context.Context, Request) (*Response, error) {
	return &Response{
		Content:    json.RawMessage(`{}`),
		Usage:      Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000},
		Model:      f.model,
		StopReason: "end",
	}, nil
}

func (f *fixedModelProvider) ModelID() string { return f.model }
