package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// User is the authenticated identity behind a bearer token.
type User struct {
	ID    string
	Email string
}

// ErrUnauthorized indicates the bearer token is missing, invalid or expired.
type ErrUnauthorized struct {
	Reason string
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

// TokenVerifier resolves a bearer token to a user.
type TokenVerifier interface {
	// Verify returns the user for a token, or *ErrUnauthorized.
	Verify(ctx context.Context, token string) (*User, error)
}

// AuthConfig holds auth provider connection settings.
type AuthConfig struct {
	// BaseURL is the auth provider root, e.g. https://xyz.supabase.co.
	BaseURL string

	// AnonKey is the provider's public API key, sent alongside the
	// user's token.
	AnonKey string

	Timeout time.Duration
}

// AuthConfigFromEnv builds an AuthConfig from KUMORA_* environment variables.
func AuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		BaseURL: os.Getenv("KUMORA_AUTH_URL"),
		AnonKey: os.Getenv("KUMORA_AUTH_ANON_KEY"),
		Timeout: 10 * time.Second,
	}
}

// HTTPVerifier verifies tokens against the auth provider's user endpoint.
type HTTPVerifier struct {
	cfg    AuthConfig
	client *http.Client
}

// NewHTTPVerifier creates a verifier. The base URL is required.
func NewHTTPVerifier(cfg AuthConfig) (*HTTPVerifier, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("auth base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &HTTPVerifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (v *HTTPVerifier) Verify(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, &ErrUnauthorized{Reason: "missing token"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.cfg.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if v.cfg.AnonKey != "" {
		req.Header.Set("apikey", v.cfg.AnonKey)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &ErrUnauthorized{Reason: "invalid or expired token"}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth provider returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read auth response: %w", err)
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse auth response: %w", err)
	}
	if payload.ID == "" {
		return nil, &ErrUnauthorized{Reason: "no user for token"}
	}

	return &User{ID: payload.ID, Email: payload.Email}, nil
}
