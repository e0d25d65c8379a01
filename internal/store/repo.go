package store

import (
	"context"
	"fmt"
	"time"
)

// ProblemEventData captures a problem being shown to the learner.
type ProblemEventData struct {
	ProblemID    string
	Level        string
	Worksheet    int
	Topic        string
	Subtype      string
	QuestionText string
	Answer       string
	AnswerKind   string
}

// HintEventData captures a hint tier being shown.
type HintEventData struct {
	ProblemID    string
	Level        string
	Tag          string
	Tier         string
	QuestionText string
	HintText     string
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event row.
type LLMEvent struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts bound event queries.
type QueryOpts struct {
	Limit int
}

// PurposeUsage aggregates LLM calls by purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates LLM calls by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to the domain event log.
type EventRepo interface {
	// AppendProblem records a generated problem being presented.
	AppendProblem(ctx context.Context, data ProblemEventData) error

	// AppendHint records a hint tier being revealed.
	AppendHint(ctx context.Context, data HintEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// LLMEventSource reads back logged LLM request events.
type LLMEventSource interface {
	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given sequence number, or
	// nil when it does not exist.
	GetLLMEvent(ctx context.Context, seq int64) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// Customer is a user's billing identity.
type Customer struct {
	UserID     string
	CustomerID string
	Email      string
	CreatedAt  time.Time
}

// ErrNoCustomer indicates no billing customer exists for a user.
type ErrNoCustomer struct {
	UserID string
}

func (e *ErrNoCustomer) Error() string {
	return fmt.Sprintf("no billing customer for user %s", e.UserID)
}

// CustomerRepo manages the user-to-billing-customer mapping.
type CustomerRepo interface {
	// ByUserID looks up a customer. Returns *ErrNoCustomer when absent.
	ByUserID(ctx context.Context, userID string) (*Customer, error)

	// Create stores a new customer row.
	Create(ctx context.Context, c Customer) error
}
