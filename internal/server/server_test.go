package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/misaki/kumora/internal/billing"
	"github.com/misaki/kumora/internal/payments"
	"github.com/misaki/kumora/internal/store"
)

type stubVerifier struct {
	user *billing.User
	err  error
}

func (s *stubVerifier) Verify(_ context.Context, token string) (*billing.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubPayments struct {
	url string
	err error
}

func (s *stubPayments) CreateCustomer(context.Context, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "cus_stub", nil
}

func (s *stubPayments) PortalSession(context.Context, string, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func (s *stubPayments) CheckoutSession(context.Context, string, string, string, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

type stubCustomers struct {
	rows map[string]store.Customer
}

func (s *stubCustomers) ByUserID(_ context.Context, userID string) (*store.Customer, error) {
	c, ok := s.rows[userID]
	if !ok {
		return nil, &store.ErrNoCustomer{UserID: userID}
	}
	return &c, nil
}

func (s *stubCustomers) Create(_ context.Context, c store.Customer) error {
	s.rows[c.UserID] = c
	return nil
}

func newTestServer(v billing.TokenVerifier, p payments.Client, customers map[string]store.Customer, cfg Config) *Server {
	if customers == nil {
		customers = make(map[string]store.Customer)
	}
	svc := billing.NewService(v, p, &stubCustomers{rows: customers}, billing.Config{
		PriceID:   "price_123",
		ReturnURL: "https://app.example.com",
	})
	return New(svc, cfg)
}

func doRequest(t *testing.T, srv *Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestPortal_MissingAuth(t *testing.T) {
	srv := newTestServer(&stubVerifier{}, &stubPayments{}, nil, DefaultConfig())

	rec := doRequest(t, srv, "POST", "/v1/billing/portal", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if decodeBody(t, rec)["error"] == "" {
		t.Error("expected an error message")
	}
}

func TestPortal_InvalidToken(t *testing.T) {
	srv := newTestServer(
		&stubVerifier{err: &billing.ErrUnauthorized{Reason: "expired"}},
		&stubPayments{}, nil, DefaultConfig())

	rec := doRequest(t, srv, "POST", "/v1/billing/portal",
		map[string]string{"Authorization": "Bearer bad"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestPortal_NoCustomer(t *testing.T) {
	srv := newTestServer(
		&stubVerifier{user: &billing.User{ID: "u1"}},
		&stubPayments{}, nil, DefaultConfig())

	rec := doRequest(t, srv, "POST", "/v1/billing/portal",
		map[string]string{"Authorization": "Bearer tok"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPortal_UpstreamFailure(t *testing.T) {
	srv := newTestServer(
		&stubVerifier{user: &billing.User{ID: "u1"}},
		&stubPayments{err: &payments.ErrUpstream{StatusCode: 503, Body: "down"}},
		map[string]store.Customer{"u1": {UserID: "u1", CustomerID: "cus_1"}},
		DefaultConfig())

	rec := doRequest(t, srv, "POST", "/v1/billing/portal",
		map[string]string{"Authorization": "Bearer tok"})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestPortal_Success(t *testing.T) {
	srv := newTestServer(
		&stubVerifier{user: &billing.User{ID: "u1"}},
		&stubPayments{url: "https://pay.example.com/p/session"},
		map[string]store.Customer{"u1": {UserID: "u1", CustomerID: "cus_1"}},
		DefaultConfig())

	rec := doRequest(t, srv, "POST", "/v1/billing/portal",
		map[string]string{"Authorization": "Bearer tok"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if got := decodeBody(t, rec)["url"]; got != "https://pay.example.com/p/session" {
		t.Errorf("url = %q", got)
	}
}

func TestCheckout_CreatesCustomer(t *testing.T) {
	customers := make(map[string]store.Customer)
	srv := newTestServer(
		&stubVerifier{user: &billing.User{ID: "u1", Email: "kid@example.com"}},
		&stubPayments{url: "https://pay.example.com/c/session"},
		customers, DefaultConfig())

	rec := doRequest(t, srv, "POST", "/v1/billing/checkout",
		map[string]string{"Authorization": "Bearer tok"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if _, ok := customers["u1"]; !ok {
		t.Error("expected customer row to be created")
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&stubVerifier{}, &stubPayments{}, nil, DefaultConfig())

	rec := doRequest(t, srv, "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCORS_AllowedOriginReflected(t *testing.T) {
	cfg := Config{Addr: ":0", AllowedOrigins: []string{"https://app.example.com"}}
	srv := newTestServer(&stubVerifier{}, &stubPayments{}, nil, cfg)

	rec := doRequest(t, srv, "OPTIONS", "/v1/billing/portal",
		map[string]string{"Origin": "https://app.example.com"})
	if rec.Code != http.StatusOK {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow-origin = %q", got)
	}
}

func TestCORS_DisallowedOriginNotReflected(t *testing.T) {
	cfg := Config{Addr: ":0", AllowedOrigins: []string{"https://app.example.com"}}
	srv := newTestServer(&stubVerifier{}, &stubPayments{}, nil, cfg)

	rec := doRequest(t, srv, "OPTIONS", "/v1/billing/portal",
		map[string]string{"Origin": "https://evil.example.com"})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("allow-origin = %q, want empty", got)
	}
}
