// Package server exposes the billing operations over HTTP.
package server

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/misaki/kumora/internal/billing"
)

// Config holds the HTTP listener settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowedOrigins is the CORS allow-list. Empty means allow any.
	AllowedOrigins []string
}

// DefaultConfig returns the default listener settings.
func DefaultConfig() Config {
	return Config{Addr: ":8080"}
}

// ConfigFromEnv builds a Config from KUMORA_* environment variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if a := os.Getenv("KUMORA_ADDR"); a != "" {
		cfg.Addr = a
	}
	if o := os.Getenv("KUMORA_ALLOWED_ORIGINS"); o != "" {
		for _, origin := range strings.Split(o, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
	return cfg
}

// Server routes billing requests to the service.
type Server struct {
	svc *billing.Service
	cfg Config
}

// New creates a Server.
func New(svc *billing.Service, cfg Config) *Server {
	return &Server{svc: svc, cfg: cfg}
}

// Router builds the HTTP handler with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.Use(s.corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/billing/portal", s.handlePortal).Methods("POST", "OPTIONS")
	v1.HandleFunc("/billing/checkout", s.handleCheckout).Methods("POST", "OPTIONS")

	r.HandleFunc("/health", handleHealth).Methods("GET")

	return r
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return srv.ListenAndServe()
}

// originAllowed reports whether the Origin may be reflected back. An
// empty allow-list permits any origin.
func (s *Server) originAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	if len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else if len(s.cfg.AllowedOrigins) == 0 {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
