// Package llm abstracts the language-model providers used to enrich
// hint bundles. Callers send a Request with an optional JSON Schema
// and receive validated JSON back; the concrete provider (Anthropic,
// OpenAI or Gemini) is chosen by configuration.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the rest of the app talks to.
type Provider interface {
	// Generate sends the request and returns structured output. When
	// Request.Schema is set, Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Hint enrichment is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, constrains the response to the given JSON
	// Schema via the provider's structured-output mechanism.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0-1.0; zero value means deterministic.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "hint-bundle".
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, otherwise
	// the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type contextKey string

const purposeKey contextKey = "llm-purpose"

// WithPurpose labels the context so event logging can attribute the
// request, e.g. "hint-enrich".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
