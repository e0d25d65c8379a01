// Package enrich rewrites canned hint bundles into friendlier
// age-appropriate language using an LLM provider. Enrichment is best
// effort: any failure returns the canned bundle unchanged, so hint
// delivery never depends on network success.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/misaki/kumora/internal/hints"
	"github.com/misaki/kumora/internal/llm"
)

// Enricher rewrites hint bundles through an LLM provider.
type Enricher struct {
	provider llm.Provider
}

// New creates an Enricher on the given provider.
func New(provider llm.Provider) *Enricher {
	return &Enricher{provider: provider}
}

// bundlePayload mirrors hints.Bundle for the wire format.
type bundlePayload struct {
	Micro    tierPayload `json:"micro"`
	Visual   tierPayload `json:"visual"`
	Teaching tierPayload `json:"teaching"`
}

type tierPayload struct {
	Text      string `json:"text"`
	Seconds   int    `json:"seconds"`
	Animation string `json:"animation"`
}

const systemPrompt = `You rewrite math hints for children working through graded
arithmetic worksheets. Keep every hint mathematically equivalent to the
original: same numbers, same strategy, same worked example. Only improve
the wording so a young learner finds it warm and easy to follow. Keep
the seconds and animation values unchanged.`

// Enrich rewrites the bundle for the given question. On any provider,
// parsing or validation failure it returns the input bundle.
func (e *Enricher) Enrich(ctx context.Context, question string, bundle hints.Bundle) hints.Bundle {
	ctx = llm.WithPurpose(ctx, "hint-enrich")

	payload, err := json.Marshal(toPayload(bundle))
	if err != nil {
		return bundle
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf("Question: %s\n\nHints to rewrite:\n%s",
				question, payload),
		}},
		Schema:    bundleSchema(),
		MaxTokens: 1024,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return bundle
	}

	var out bundlePayload
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return bundle
	}
	return fromPayload(out, bundle)
}

func toPayload(b hints.Bundle) bundlePayload {
	return bundlePayload{
		Micro:    tierPayload{b.Micro.Text, b.Micro.Seconds, b.Micro.Animation},
		Visual:   tierPayload{b.Visual.Text, b.Visual.Seconds, b.Visual.Animation},
		Teaching: tierPayload{b.Teaching.Text, b.Teaching.Seconds, b.Teaching.Animation},
	}
}

// fromPayload applies rewritten text onto the original bundle. Timing
// and animation always come from the canned bundle; only the wording is
// the model's to change.
func fromPayload(p bundlePayload, orig hints.Bundle) hints.Bundle {
	out := orig
	if p.Micro.Text != "" {
		out.Micro.Text = p.Micro.Text
	}
	if p.Visual.Text != "" {
		out.Visual.Text = p.Visual.Text
	}
	if p.Teaching.Text != "" {
		out.Teaching.Text = p.Teaching.Text
	}
	return out
}

func bundleSchema() *llm.Schema {
	tier := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":      map[string]any{"type": "string"},
			"seconds":   map[string]any{"type": "integer"},
			"animation": map[string]any{"type": "string"},
		},
		"required": []any{"text"},
	}
	return &llm.Schema{
		Name:        "hint-bundle",
		Description: "Three graduated hint tiers for one math problem",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"micro":    tier,
				"visual":   tier,
				"teaching": tier,
			},
			"required": []any{"micro", "visual", "teaching"},
		},
	}
}
