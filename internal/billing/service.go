// Package billing resolves authenticated users to payment-provider
// sessions: the billing portal for existing customers and checkout for
// new subscriptions.
package billing

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/misaki/kumora/internal/payments"
	"github.com/misaki/kumora/internal/store"
)

// Config holds the URLs woven into hosted sessions.
type Config struct {
	// PriceID is the subscription price used at checkout.
	PriceID string

	// ReturnURL is the default portal return target when the request
	// carries no allowed Origin.
	ReturnURL string

	// SuccessURL and CancelURL are the checkout redirect targets.
	SuccessURL string
	CancelURL  string
}

// ConfigFromEnv builds a Config from KUMORA_* environment variables.
func ConfigFromEnv() Config {
	return Config{
		PriceID:    os.Getenv("KUMORA_PRICE_ID"),
		ReturnURL:  os.Getenv("KUMORA_PORTAL_RETURN_URL"),
		SuccessURL: os.Getenv("KUMORA_CHECKOUT_SUCCESS_URL"),
		CancelURL:  os.Getenv("KUMORA_CHECKOUT_CANCEL_URL"),
	}
}

// Service implements the two billing operations.
type Service struct {
	verifier  TokenVerifier
	payments  payments.Client
	customers store.CustomerRepo
	cfg       Config
}

// NewService wires the billing dependencies together.
func NewService(verifier TokenVerifier, pay payments.Client, customers store.CustomerRepo, cfg Config) *Service {
	return &Service{verifier: verifier, payments: pay, customers: customers, cfg: cfg}
}

// Portal verifies the token and mints a billing-portal URL for the
// user's existing customer. origin, when non-empty, overrides the
// configured return URL.
func (s *Service) Portal(ctx context.Context, token, origin string) (string, error) {
	user, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return "", err
	}

	cust, err := s.customers.ByUserID(ctx, user.ID)
	if err != nil {
		return "", err
	}

	returnURL := s.cfg.ReturnURL
	if origin != "" {
		returnURL = origin
	}

	url, err := s.payments.PortalSession(ctx, cust.CustomerID, returnURL)
	if err != nil {
		return "", err
	}
	return url, nil
}

// Checkout verifies the token and mints a checkout URL, creating the
// billing customer on first use.
func (s *Service) Checkout(ctx context.Context, token, origin string) (string, error) {
	user, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return "", err
	}

	cust, err := s.customers.ByUserID(ctx, user.ID)
	if err != nil {
		var noCust *store.ErrNoCustomer
		if !errors.As(err, &noCust) {
			return "", err
		}
		cust, err = s.createCustomer(ctx, user)
		if err != nil {
			return "", err
		}
	}

	successURL := s.cfg.SuccessURL
	cancelURL := s.cfg.CancelURL
	if origin != "" {
		successURL = origin
		cancelURL = origin
	}

	url, err := s.payments.CheckoutSession(ctx, cust.CustomerID, s.cfg.PriceID, successURL, cancelURL)
	if err != nil {
		return "", err
	}
	return url, nil
}

func (s *Service) createCustomer(ctx context.Context, user *User) (*store.Customer, error) {
	customerID, err := s.payments.CreateCustomer(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	cust := store.Customer{
		UserID:     user.ID,
		CustomerID: customerID,
		Email:      user.Email,
	}
	if err := s.customers.Create(ctx, cust); err != nil {
		return nil, fmt.Errorf("persist billing customer: %w", err)
	}
	return &cust, nil
}
