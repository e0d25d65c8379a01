package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/misaki/kumora/internal/payments"
	"github.com/misaki/kumora/internal/store"
)

type fakeVerifier struct {
	user *User
	err  error
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakePayments struct {
	customerID  string
	portalURL   string
	checkoutURL string
	err         error

	createdEmails []string
}

func (f *fakePayments) CreateCustomer(_ context.Context, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.createdEmails = append(f.createdEmails, email)
	return f.customerID, nil
}

func (f *fakePayments) PortalSession(_ context.Context, customerID, returnURL string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.portalURL + "?return=" + returnURL, nil
}

func (f *fakePayments) CheckoutSession(_ context.Context, customerID, priceID, successURL, cancelURL string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.checkoutURL, nil
}

type memCustomers struct {
	rows map[string]store.Customer
}

func newMemCustomers() *memCustomers {
	return &memCustomers{rows: make(map[string]store.Customer)}
}

func (m *memCustomers) ByUserID(_ context.Context, userID string) (*store.Customer, error) {
	c, ok := m.rows[userID]
	if !ok {
		return nil, &store.ErrNoCustomer{UserID: userID}
	}
	return &c, nil
}

func (m *memCustomers) Create(_ context.Context, c store.Customer) error {
	m.rows[c.UserID] = c
	return nil
}

func testService(v TokenVerifier, p payments.Client, c store.CustomerRepo) *Service {
	return NewService(v, p, c, Config{
		PriceID:    "price_123",
		ReturnURL:  "https://app.example.com/account",
		SuccessURL: "https://app.example.com/welcome",
		CancelURL:  "https://app.example.com/plans",
	})
}

func TestPortal_ExistingCustomer(t *testing.T) {
	customers := newMemCustomers()
	customers.Create(context.Background(), store.Customer{UserID: "u1", CustomerID: "cus_1"})

	svc := testService(
		&fakeVerifier{user: &User{ID: "u1", Email: "a@b.c"}},
		&fakePayments{portalURL: "https://pay.example.com/portal"},
		customers,
	)

	url, err := svc.Portal(context.Background(), "tok", "")
	if err != nil {
		t.Fatalf("portal: %v", err)
	}
	if url != "https://pay.example.com/portal?return=https://app.example.com/account" {
		t.Errorf("url = %q", url)
	}
}

func TestPortal_OriginOverridesReturnURL(t *testing.T) {
	customers := newMemCustomers()
	customers.Create(context.Background(), store.Customer{UserID: "u1", CustomerID: "cus_1"})

	svc := testService(
		&fakeVerifier{user: &User{ID: "u1"}},
		&fakePayments{portalURL: "https://pay.example.com/portal"},
		customers,
	)

	url, err := svc.Portal(context.Background(), "tok", "https://staging.example.com")
	if err != nil {
		t.Fatalf("portal: %v", err)
	}
	if url != "https://pay.example.com/portal?return=https://staging.example.com" {
		t.Errorf("url = %q", url)
	}
}

func TestPortal_InvalidToken(t *testing.T) {
	svc := testService(
		&fakeVerifier{err: &ErrUnauthorized{Reason: "bad token"}},
		&fakePayments{},
		newMemCustomers(),
	)

	_, err := svc.Portal(context.Background(), "bad", "")
	var unauth *ErrUnauthorized
	if !errors.As(err, &unauth) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestPortal_NoCustomer(t *testing.T) {
	svc := testService(
		&fakeVerifier{user: &User{ID: "u1"}},
		&fakePayments{},
		newMemCustomers(),
	)

	_, err := svc.Portal(context.Background(), "tok", "")
	var noCust *store.ErrNoCustomer
	if !errors.As(err, &noCust) {
		t.Fatalf("expected ErrNoCustomer, got: %v", err)
	}
}

func TestPortal_UpstreamFailure(t *testing.T) {
	customers := newMemCustomers()
	customers.Create(context.Background(), store.Customer{UserID: "u1", CustomerID: "cus_1"})

	svc := testService(
		&fakeVerifier{user: &User{ID: "u1"}},
		&fakePayments{err: &payments.ErrUpstream{StatusCode: 500, Body: "boom"}},
		customers,
	)

	_, err := svc.Portal(context.Background(), "tok", "")
	var up *payments.ErrUpstream
	if !errors.As(err, &up) {
		t.Fatalf("expected ErrUpstream, got: %v", err)
	}
}

func TestCheckout_CreatesCustomerOnFirstUse(t *testing.T) {
	customers := newMemCustomers()
	pay := &fakePayments{customerID: "cus_new", checkoutURL: "https://pay.example.com/checkout"}

	svc := testService(
		&fakeVerifier{user: &User{ID: "u1", Email: "kid@example.com"}},
		pay,
		customers,
	)

	url, err := svc.Checkout(context.Background(), "tok", "")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if url != "https://pay.example.com/checkout" {
		t.Errorf("url = %q", url)
	}

	if len(pay.createdEmails) != 1 || pay.createdEmails[0] != "kid@example.com" {
		t.Errorf("created emails = %v", pay.createdEmails)
	}
	c, err := customers.ByUserID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("customer not persisted: %v", err)
	}
	if c.CustomerID != "cus_new" {
		t.Errorf("customer ID = %q", c.CustomerID)
	}
}

func TestCheckout_ReusesExistingCustomer(t *testing.T) {
	customers := newMemCustomers()
	customers.Create(context.Background(), store.Customer{UserID: "u1", CustomerID: "cus_old"})
	pay := &fakePayments{customerID: "cus_should_not_happen", checkoutURL: "https://pay.example.com/checkout"}

	svc := testService(&fakeVerifier{user: &User{ID: "u1"}}, pay, customers)

	if _, err := svc.Checkout(context.Background(), "tok", ""); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(pay.createdEmails) != 0 {
		t.Errorf("expected no customer creation, got %v", pay.createdEmails)
	}
}
