// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/misaki/kumora/ent/billingcustomer"
	"github.com/misaki/kumora/ent/hintevent"
	"github.com/misaki/kumora/ent/llmrequestevent"
	"github.com/misaki/kumora/ent/problemevent"
	"github.com/misaki/kumora/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billingcustomerFields := schema.BillingCustomer{}.Fields()
	_ = billingcustomerFields
	// billingcustomerDescUserID is the schema descriptor for user_id field.
	billingcustomerDescUserID := billingcustomerFields[0].Descriptor()
	// billingcustomer.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	billingcustomer.UserIDValidator = billingcustomerDescUserID.Validators[0].(func(string) error)
	// billingcustomerDescCustomerID is the schema descriptor for customer_id field.
	billingcustomerDescCustomerID := billingcustomerFields[1].Descriptor()
	// billingcustomer.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	billingcustomer.CustomerIDValidator = billingcustomerDescCustomerID.Validators[0].(func(string) error)
	// billingcustomerDescEmail is the schema descriptor for email field.
	billingcustomerDescEmail := billingcustomerFields[2].Descriptor()
	// billingcustomer.DefaultEmail holds the default value on creation for the email field.
	billingcustomer.DefaultEmail = billingcustomerDescEmail.Default.(string)
	// billingcustomerDescCreatedAt is the schema descriptor for created_at field.
	billingcustomerDescCreatedAt := billingcustomerFields[3].Descriptor()
	// billingcustomer.DefaultCreatedAt holds the default value on creation for the created_at field.
	billingcustomer.DefaultCreatedAt = billingcustomerDescCreatedAt.Default.(func() time.Time)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescProblemID is the schema descriptor for problem_id field.
	hinteventDescProblemID := hinteventFields[0].Descriptor()
	// hintevent.ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	hintevent.ProblemIDValidator = hinteventDescProblemID.Validators[0].(func(string) error)
	// hinteventDescLevel is the schema descriptor for level field.
	hinteventDescLevel := hinteventFields[1].Descriptor()
	// hintevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	hintevent.LevelValidator = hinteventDescLevel.Validators[0].(func(string) error)
	// hinteventDescTag is the schema descriptor for tag field.
	hinteventDescTag := hinteventFields[2].Descriptor()
	// hintevent.TagValidator is a validator for the "tag" field. It is called by the builders before save.
	hintevent.TagValidator = hinteventDescTag.Validators[0].(func(string) error)
	// hinteventDescQuestionText is the schema descriptor for question_text field.
	hinteventDescQuestionText := hinteventFields[4].Descriptor()
	// hintevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	hintevent.QuestionTextValidator = hinteventDescQuestionText.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[5].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescCostUsd is the schema descriptor for cost_usd field.
	llmrequesteventDescCostUsd := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmrequestevent.DefaultCostUsd = llmrequesteventDescCostUsd.Default.(float64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	problemeventMixin := schema.ProblemEvent{}.Mixin()
	problemeventMixinFields0 := problemeventMixin[0].Fields()
	_ = problemeventMixinFields0
	problemeventFields := schema.ProblemEvent{}.Fields()
	_ = problemeventFields
	// problemeventDescTimestamp is the schema descriptor for timestamp field.
	problemeventDescTimestamp := problemeventMixinFields0[1].Descriptor()
	// problemevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	problemevent.DefaultTimestamp = problemeventDescTimestamp.Default.(func() time.Time)
	// problemeventDescProblemID is the schema descriptor for problem_id field.
	problemeventDescProblemID := problemeventFields[0].Descriptor()
	// problemevent.ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	problemevent.ProblemIDValidator = problemeventDescProblemID.Validators[0].(func(string) error)
	// problemeventDescLevel is the schema descriptor for level field.
	problemeventDescLevel := problemeventFields[1].Descriptor()
	// problemevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	problemevent.LevelValidator = problemeventDescLevel.Validators[0].(func(string) error)
	// problemeventDescTopic is the schema descriptor for topic field.
	problemeventDescTopic := problemeventFields[3].Descriptor()
	// problemevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	problemevent.TopicValidator = problemeventDescTopic.Validators[0].(func(string) error)
	// problemeventDescSubtype is the schema descriptor for subtype field.
	problemeventDescSubtype := problemeventFields[4].Descriptor()
	// problemevent.SubtypeValidator is a validator for the "subtype" field. It is called by the builders before save.
	problemevent.SubtypeValidator = problemeventDescSubtype.Validators[0].(func(string) error)
	// problemeventDescQuestionText is the schema descriptor for question_text field.
	problemeventDescQuestionText := problemeventFields[5].Descriptor()
	// problemevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	problemevent.QuestionTextValidator = problemeventDescQuestionText.Validators[0].(func(string) error)
	// problemeventDescAnswer is the schema descriptor for answer field.
	problemeventDescAnswer := problemeventFields[6].Descriptor()
	// problemevent.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	problemevent.AnswerValidator = problemeventDescAnswer.Validators[0].(func(string) error)
	// problemeventDescAnswerKind is the schema descriptor for answer_kind field.
	problemeventDescAnswerKind := problemeventFields[7].Descriptor()
	// problemevent.AnswerKindValidator is a validator for the "answer_kind" field. It is called by the builders before save.
	problemevent.AnswerKindValidator = problemeventDescAnswerKind.Validators[0].(func(string) error)
}
