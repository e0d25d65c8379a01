// Code generated by ent, DO NOT EDIT.

package problemevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the problemevent type in the database.
	Label = "problem_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldProblemID holds the string denoting the problem_id field in the database.
	FieldProblemID = "problem_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldWorksheet holds the string denoting the worksheet field in the database.
	FieldWorksheet = "worksheet"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSubtype holds the string denoting the subtype field in the database.
	FieldSubtype = "subtype"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldAnswerKind holds the string denoting the answer_kind field in the database.
	FieldAnswerKind = "answer_kind"
	// Table holds the table name of the problemevent in the database.
	Table = "problem_events"
)

// Columns holds all SQL columns for problemevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldProblemID,
	FieldLevel,
	FieldWorksheet,
	FieldTopic,
	FieldSubtype,
	FieldQuestionText,
	FieldAnswer,
	FieldAnswerKind,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	ProblemIDValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// SubtypeValidator is a validator for the "subtype" field. It is called by the builders before save.
	SubtypeValidator func(string) error
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	AnswerValidator func(string) error
	// AnswerKindValidator is a validator for the "answer_kind" field. It is called by the builders before save.
	AnswerKindValidator func(string) error
)

// OrderOption defines the ordering options for the ProblemEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByProblemID orders the results by the problem_id field.
func ByProblemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByWorksheet orders the results by the worksheet field.
func ByWorksheet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorksheet, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySubtype orders the results by the subtype field.
func BySubtype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtype, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByAnswerKind orders the results by the answer_kind field.
func ByAnswerKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerKind, opts...).ToFunc()
}
