package store

import (
	"context"
	"fmt"

	"github.com/misaki/kumora/ent"
	"github.com/misaki/kumora/ent/billingcustomer"
)

// customerRepo implements CustomerRepo on the ent client.
type customerRepo struct {
	client *ent.Client
}

func (r *customerRepo) ByUserID(ctx context.Context, userID string) (*Customer, error) {
	row, err := r.client.BillingCustomer.Query().
		Where(billingcustomer.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &ErrNoCustomer{UserID: userID}
		}
		return nil, fmt.Errorf("query billing customer: %w", err)
	}

	return &Customer{
		UserID:     row.UserID,
		CustomerID: row.CustomerID,
		Email:      row.Email,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func (r *customerRepo) Create(ctx context.Context, c Customer) error {
	_, err := r.client.BillingCustomer.Create().
		SetUserID(c.UserID).
		SetCustomerID(c.CustomerID).
		SetEmail(c.Email).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create billing customer: %w", err)
	}
	return nil
}
