package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func tierSchema() *Schema {
	return &Schema{
		Name:        "tier-test",
		Description: "A single hint tier",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":      map[string]any{"type": "string"},
				"seconds":   map[string]any{"type": "integer", "minimum": 1},
				"animation": map[string]any{"type": "string", "enum": []any{"pulse", "sweep", "none"}},
			},
			"required": []any{"text", "seconds"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"text":"Count up from 4.","seconds":20,"animation":"pulse"}`)
	if err := validateResponse(tierSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"text":"Count up from 4.","seconds":20}`)
	if err := validateResponse(tierSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"text":"Count up from 4."}`)
	err := validateResponse(tierSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"text":"Count up.","seconds":"twenty"}`)
	err := validateResponse(tierSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_BadEnumValue(t *testing.T) {
	raw := json.RawMessage(`{"text":"Count up.","seconds":20,"animation":"spin"}`)
	err := validateResponse(tierSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(tierSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedArrays(t *testing.T) {
	schema := &Schema{
		Name:        "bundle-test",
		Description: "Nested bundle",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"micro": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
					"required": []any{"text"},
				},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"micro", "steps"},
		},
	}

	valid := json.RawMessage(`{"micro":{"text":"Look at the ones column."},"steps":["add ones","carry"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"micro":{"text":"Look."},"steps":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
