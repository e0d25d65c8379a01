// Code generated by ent, DO NOT EDIT.

package problemevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/misaki/kumora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ProblemID applies equality check predicate on the "problem_id" field. It's identical to ProblemIDEQ.
func ProblemID(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldProblemID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldLevel, v))
}

// Worksheet applies equality check predicate on the "worksheet" field. It's identical to WorksheetEQ.
func Worksheet(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldWorksheet, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldTopic, v))
}

// Subtype applies equality check predicate on the "subtype" field. It's identical to SubtypeEQ.
func Subtype(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSubtype, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldQuestionText, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerKind applies equality check predicate on the "answer_kind" field. It's identical to AnswerKindEQ.
func AnswerKind(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldAnswerKind, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProblemIDEQ applies the EQ predicate on the "problem_id" field.
func ProblemIDEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldProblemID, v))
}

// ProblemIDNEQ applies the NEQ predicate on the "problem_id" field.
func ProblemIDNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldProblemID, v))
}

// ProblemIDIn applies the In predicate on the "problem_id" field.
func ProblemIDIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldProblemID, vs...))
}

// ProblemIDNotIn applies the NotIn predicate on the "problem_id" field.
func ProblemIDNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldProblemID, vs...))
}

// ProblemIDGT applies the GT predicate on the "problem_id" field.
func ProblemIDGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldProblemID, v))
}

// ProblemIDGTE applies the GTE predicate on the "problem_id" field.
func ProblemIDGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldProblemID, v))
}

// ProblemIDLT applies the LT predicate on the "problem_id" field.
func ProblemIDLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldProblemID, v))
}

// ProblemIDLTE applies the LTE predicate on the "problem_id" field.
func ProblemIDLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldProblemID, v))
}

// ProblemIDContains applies the Contains predicate on the "problem_id" field.
func ProblemIDContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldProblemID, v))
}

// ProblemIDHasPrefix applies the HasPrefix predicate on the "problem_id" field.
func ProblemIDHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldProblemID, v))
}

// ProblemIDHasSuffix applies the HasSuffix predicate on the "problem_id" field.
func ProblemIDHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldProblemID, v))
}

// ProblemIDEqualFold applies the EqualFold predicate on the "problem_id" field.
func ProblemIDEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldProblemID, v))
}

// ProblemIDContainsFold applies the ContainsFold predicate on the "problem_id" field.
func ProblemIDContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldProblemID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldLevel, v))
}

// WorksheetEQ applies the EQ predicate on the "worksheet" field.
func WorksheetEQ(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldWorksheet, v))
}

// WorksheetNEQ applies the NEQ predicate on the "worksheet" field.
func WorksheetNEQ(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldWorksheet, v))
}

// WorksheetIn applies the In predicate on the "worksheet" field.
func WorksheetIn(vs ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldWorksheet, vs...))
}

// WorksheetNotIn applies the NotIn predicate on the "worksheet" field.
func WorksheetNotIn(vs ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldWorksheet, vs...))
}

// WorksheetGT applies the GT predicate on the "worksheet" field.
func WorksheetGT(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldWorksheet, v))
}

// WorksheetGTE applies the GTE predicate on the "worksheet" field.
func WorksheetGTE(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldWorksheet, v))
}

// WorksheetLT applies the LT predicate on the "worksheet" field.
func WorksheetLT(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldWorksheet, v))
}

// WorksheetLTE applies the LTE predicate on the "worksheet" field.
func WorksheetLTE(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldWorksheet, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldTopic, v))
}

// SubtypeEQ applies the EQ predicate on the "subtype" field.
func SubtypeEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSubtype, v))
}

// SubtypeNEQ applies the NEQ predicate on the "subtype" field.
func SubtypeNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldSubtype, v))
}

// SubtypeIn applies the In predicate on the "subtype" field.
func SubtypeIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldSubtype, vs...))
}

// SubtypeNotIn applies the NotIn predicate on the "subtype" field.
func SubtypeNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldSubtype, vs...))
}

// SubtypeGT applies the GT predicate on the "subtype" field.
func SubtypeGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldSubtype, v))
}

// SubtypeGTE applies the GTE predicate on the "subtype" field.
func SubtypeGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldSubtype, v))
}

// SubtypeLT applies the LT predicate on the "subtype" field.
func SubtypeLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldSubtype, v))
}

// SubtypeLTE applies the LTE predicate on the "subtype" field.
func SubtypeLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldSubtype, v))
}

// SubtypeContains applies the Contains predicate on the "subtype" field.
func SubtypeContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldSubtype, v))
}

// SubtypeHasPrefix applies the HasPrefix predicate on the "subtype" field.
func SubtypeHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldSubtype, v))
}

// SubtypeHasSuffix applies the HasSuffix predicate on the "subtype" field.
func SubtypeHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldSubtype, v))
}

// SubtypeEqualFold applies the EqualFold predicate on the "subtype" field.
func SubtypeEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldSubtype, v))
}

// SubtypeContainsFold applies the ContainsFold predicate on the "subtype" field.
func SubtypeContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldSubtype, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldQuestionText, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldAnswer, v))
}

// AnswerKindEQ applies the EQ predicate on the "answer_kind" field.
func AnswerKindEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldAnswerKind, v))
}

// AnswerKindNEQ applies the NEQ predicate on the "answer_kind" field.
func AnswerKindNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldAnswerKind, v))
}

// AnswerKindIn applies the In predicate on the "answer_kind" field.
func AnswerKindIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldAnswerKind, vs...))
}

// AnswerKindNotIn applies the NotIn predicate on the "answer_kind" field.
func AnswerKindNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldAnswerKind, vs...))
}

// AnswerKindGT applies the GT predicate on the "answer_kind" field.
func AnswerKindGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldAnswerKind, v))
}

// AnswerKindGTE applies the GTE predicate on the "answer_kind" field.
func AnswerKindGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldAnswerKind, v))
}

// AnswerKindLT applies the LT predicate on the "answer_kind" field.
func AnswerKindLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldAnswerKind, v))
}

// AnswerKindLTE applies the LTE predicate on the "answer_kind" field.
func AnswerKindLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldAnswerKind, v))
}

// AnswerKindContains applies the Contains predicate on the "answer_kind" field.
func AnswerKindContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldAnswerKind, v))
}

// AnswerKindHasPrefix applies the HasPrefix predicate on the "answer_kind" field.
func AnswerKindHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldAnswerKind, v))
}

// AnswerKindHasSuffix applies the HasSuffix predicate on the "answer_kind" field.
func AnswerKindHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldAnswerKind, v))
}

// AnswerKindEqualFold applies the EqualFold predicate on the "answer_kind" field.
func AnswerKindEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldAnswerKind, v))
}

// AnswerKindContainsFold applies the ContainsFold predicate on the "answer_kind" field.
func AnswerKindContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldAnswerKind, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProblemEvent) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProblemEvent) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProblemEvent) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.NotPredicates(p))
}
