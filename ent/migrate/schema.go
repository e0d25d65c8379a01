// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillingCustomersColumns holds the columns for the "billing_customers" table.
	BillingCustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BillingCustomersTable holds the schema information for the "billing_customers" table.
	BillingCustomersTable = &schema.Table{
		Name:       "billing_customers",
		Columns:    BillingCustomersColumns,
		PrimaryKey: []*schema.Column{BillingCustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "billingcustomer_user_id",
				Unique:  false,
				Columns: []*schema.Column{BillingCustomersColumns[1]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "problem_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "tag", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "hint_text", Type: field.TypeString},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_level",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[4]},
			},
			{
				Name:    "hintevent_tag",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[5]},
			},
			{
				Name:    "hintevent_tier",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// ProblemEventsColumns holds the columns for the "problem_events" table.
	ProblemEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "problem_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "worksheet", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString},
		{Name: "subtype", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "answer_kind", Type: field.TypeString},
	}
	// ProblemEventsTable holds the schema information for the "problem_events" table.
	ProblemEventsTable = &schema.Table{
		Name:       "problem_events",
		Columns:    ProblemEventsColumns,
		PrimaryKey: []*schema.Column{ProblemEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "problemevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProblemEventsColumns[1]},
			},
			{
				Name:    "problemevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProblemEventsColumns[2]},
			},
			{
				Name:    "problemevent_level",
				Unique:  false,
				Columns: []*schema.Column{ProblemEventsColumns[4]},
			},
			{
				Name:    "problemevent_subtype",
				Unique:  false,
				Columns: []*schema.Column{ProblemEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillingCustomersTable,
		HintEventsTable,
		LlmRequestEventsTable,
		ProblemEventsTable,
	}
)

func init() {
}
