package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/misaki/kumora/internal/billing"
	"github.com/misaki/kumora/internal/payments"
	"github.com/misaki/kumora/internal/store"
)

// handlePortal handles POST /v1/billing/portal.
func (s *Server) handlePortal(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	url, err := s.svc.Portal(r.Context(), token, s.requestOrigin(r))
	if err != nil {
		writeBillingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// handleCheckout handles POST /v1/billing/checkout.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	url, err := s.svc.Checkout(r.Context(), token, s.requestOrigin(r))
	if err != nil {
		writeBillingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// writeBillingError maps service errors onto status codes.
func writeBillingError(w http.ResponseWriter, err error) {
	var unauth *billing.ErrUnauthorized
	if errors.As(err, &unauth) {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	var noCust *store.ErrNoCustomer
	if errors.As(err, &noCust) {
		writeError(w, http.StatusBadRequest, "no billing customer on file")
		return
	}

	var upstream *payments.ErrUpstream
	if errors.As(err, &upstream) {
		writeError(w, http.StatusBadGateway, "payments provider unavailable")
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error())
}

// requestOrigin returns the Origin header when it passes the CORS
// allow-list, so it can feed session return URLs.
func (s *Server) requestOrigin(r *http.Request) string {
	origin := r.Header.Get("Origin")
	if s.originAllowed(origin) {
		return origin
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
