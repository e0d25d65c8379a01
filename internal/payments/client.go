package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds provider connection settings.
type Config struct {
	// BaseURL is the provider API root.
	BaseURL string

	// SecretKey authenticates server-side calls.
	SecretKey string

	Timeout time.Duration
}

// DefaultConfig returns defaults with no key set.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://api.stripe.com/v1",
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from KUMORA_* environment variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if u := os.Getenv("KUMORA_PAYMENTS_URL"); u != "" {
		cfg.BaseURL = u
	}
	if k := os.Getenv("KUMORA_PAYMENTS_SECRET_KEY"); k != "" {
		cfg.SecretKey = k
	}
	return cfg
}

// HTTPClient implements Client over the provider's form-encoded API.
type HTTPClient struct {
	cfg    Config
	client *http.Client
}

// NewHTTPClient creates a client. The secret key is required.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("payments secret key is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &HTTPClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *HTTPClient) CreateCustomer(ctx context.Context, email string) (string, error) {
	form := url.Values{}
	if email != "" {
		form.Set("email", email)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/customers", form, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *HTTPClient) PortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	if returnURL != "" {
		form.Set("return_url", returnURL)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.post(ctx, "/billing_portal/sessions", form, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *HTTPClient) CheckoutSession(ctx context.Context, customerID, priceID, successURL, cancelURL string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("mode", "subscription")
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)

	var out struct {
		URL string `json:"url"`
	}
	if err := c.post(ctx, "/checkout/sessions", form, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// post sends a form-encoded request and decodes the JSON response into
// out. Non-2xx responses become *ErrUpstream.
func (c *HTTPClient) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return &ErrUpstream{StatusCode: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ErrUpstream{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
