package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/misaki/kumora/internal/hints"
	"github.com/misaki/kumora/internal/llm"
)

func cannedBundle() hints.Bundle {
	return hints.Build("add", []int64{4, 3}, "2A")
}

func TestEnrich_RewritesText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"micro":    {"text": "Try counting up from 4!"},
			"visual":   {"text": "Picture 4 apples and 3 more."},
			"teaching": {"text": "Here is one just like it: 5 + 3."}
		}`),
	})
	e := New(mock)

	orig := cannedBundle()
	got := e.Enrich(context.Background(), "4 + 3 =", orig)

	if got.Micro.Text != "Try counting up from 4!" {
		t.Errorf("micro text = %q", got.Micro.Text)
	}
	if got.Visual.Text != "Picture 4 apples and 3 more." {
		t.Errorf("visual text = %q", got.Visual.Text)
	}
	// Timing and animation stay canned.
	if got.Micro.Seconds != orig.Micro.Seconds {
		t.Errorf("micro seconds changed: %d != %d", got.Micro.Seconds, orig.Micro.Seconds)
	}
	if got.Visual.Animation != orig.Visual.Animation {
		t.Errorf("visual animation changed: %q", got.Visual.Animation)
	}
}

func TestEnrich_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	e := New(mock)

	orig := cannedBundle()
	got := e.Enrich(context.Background(), "4 + 3 =", orig)

	if got != orig {
		t.Error("expected canned bundle on provider failure")
	}
}

func TestEnrich_MalformedResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json at all`),
	})
	e := New(mock)

	orig := cannedBundle()
	got := e.Enrich(context.Background(), "4 + 3 =", orig)

	if got != orig {
		t.Error("expected canned bundle on malformed response")
	}
}

func TestEnrich_EmptyTierTextKeepsCanned(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"micro":    {"text": ""},
			"visual":   {"text": "New visual."},
			"teaching": {"text": ""}
		}`),
	})
	e := New(mock)

	orig := cannedBundle()
	got := e.Enrich(context.Background(), "4 + 3 =", orig)

	if got.Micro.Text != orig.Micro.Text {
		t.Error("empty micro text should keep the canned wording")
	}
	if got.Visual.Text != "New visual." {
		t.Errorf("visual text = %q", got.Visual.Text)
	}
}

func TestEnrich_SetsRequestPurposeAndSchema(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock)

	e.Enrich(context.Background(), "4 + 3 =", cannedBundle())

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "hint-bundle" {
		t.Errorf("expected hint-bundle schema, got %+v", req.Schema)
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}
