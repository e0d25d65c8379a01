// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BillingCustomer is the predicate function for billingcustomer builders.
type BillingCustomer func(*sql.Selector)

// HintEvent is the predicate function for hintevent builders.
type HintEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProblemEvent is the predicate function for problemevent builders.
type ProblemEvent func(*sql.Selector)
