package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BillingCustomer maps an authenticated user to their payment-provider
// customer ID. One row per user, created on first checkout.
type BillingCustomer struct {
	ent.Schema
}

func (BillingCustomer) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty().
			Comment("Auth provider user ID"),
		field.String("customer_id").
			NotEmpty().
			Comment("Payment provider customer ID"),
		field.String("email").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (BillingCustomer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
