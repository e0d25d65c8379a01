package cmd

import (
	"fmt"

	"github.com/misaki/kumora/internal/billing"
	"github.com/misaki/kumora/internal/payments"
	"github.com/misaki/kumora/internal/server"
	"github.com/misaki/kumora/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the billing HTTP API",
	Long: `Start the HTTP server exposing the billing endpoints:

  POST /v1/billing/portal    — customer portal session
  POST /v1/billing/checkout  — subscription checkout session
  GET  /health

Requires KUMORA_AUTH_URL, KUMORA_AUTH_ANON_KEY and
KUMORA_PAYMENTS_SECRET_KEY to be set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		verifier, err := billing.NewHTTPVerifier(billing.AuthConfigFromEnv())
		if err != nil {
			return fmt.Errorf("auth verifier: %w", err)
		}
		pay, err := payments.NewHTTPClient(payments.ConfigFromEnv())
		if err != nil {
			return fmt.Errorf("payments client: %w", err)
		}

		svc := billing.NewService(verifier, pay, st.Customers(), billing.ConfigFromEnv())

		cfg := server.ConfigFromEnv()
		srv := server.New(svc, cfg)

		fmt.Println("Listening on", cfg.Addr)
		return srv.ListenAndServe()
	},
}
