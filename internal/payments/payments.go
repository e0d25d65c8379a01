// Package payments talks to the hosted payment provider. The provider
// API is form-encoded HTTP with a secret bearer key; the client mints
// customer records and hosted session URLs and nothing else.
package payments

import (
	"context"
	"fmt"
)

// Client is the surface the billing service needs from the provider.
type Client interface {
	// CreateCustomer registers a customer and returns the provider's ID.
	CreateCustomer(ctx context.Context, email string) (string, error)

	// PortalSession mints a hosted billing-portal URL for a customer.
	PortalSession(ctx context.Context, customerID, returnURL string) (string, error)

	// CheckoutSession mints a hosted checkout URL for a subscription.
	CheckoutSession(ctx context.Context, customerID, priceID, successURL, cancelURL string) (string, error)
}

// ErrUpstream indicates the provider rejected or failed a request.
type ErrUpstream struct {
	StatusCode int
	Body       string
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("payments API error %d: %s", e.StatusCode, e.Body)
}
