// Package problems generates parametrized practice problems for the
// worksheet progression. Generation is pure and in-memory: given a
// level and worksheet number the range tables pick a topic, random
// operands are drawn within level-appropriate bounds, and the answer
// is computed by direct arithmetic.
package problems

import (
	"github.com/google/uuid"

	"github.com/misaki/kumora/internal/hints"
	"github.com/misaki/kumora/internal/levels"
)

// Format indicates how the question should be laid out for display.
type Format string

const (
	// FormatHorizontal renders the question inline, e.g. "6 + 3 =".
	FormatHorizontal Format = "horizontal"

	// FormatVertical renders column arithmetic with operands stacked.
	FormatVertical Format = "vertical"

	// FormatTable renders a grid, e.g. a partial number table.
	FormatTable Format = "table"

	// FormatSequence renders a number pattern with blanks to fill.
	FormatSequence Format = "sequence"

	// FormatText renders a plain prose question.
	FormatText Format = "text"
)

// AnswerKind describes the representation of the canonical answer.
type AnswerKind string

const (
	KindInteger  AnswerKind = "integer"  // "623", "-15"
	KindDecimal  AnswerKind = "decimal"  // "3.75"
	KindFraction AnswerKind = "fraction" // "3/4", "2 1/2"
	KindString   AnswerKind = "string"   // free text, e.g. "7 R2"
	KindSequence AnswerKind = "sequence" // comma-separated blanks, e.g. "12,14"
)

// Problem is one generated practice question. Problems are built fresh
// on every call and never mutated afterwards.
type Problem struct {
	// ID uniquely identifies this generated instance.
	ID string

	// Level and Worksheet echo the generation request. Worksheet always
	// equals the requested worksheet number.
	Level     levels.Level
	Worksheet int

	// Topic is the range-table label, Subtype the generator key that
	// produced this problem.
	Topic   string
	Subtype string

	// Difficulty is the 1-5 band rating from the range table.
	Difficulty int

	// Format tells the front end how to lay the question out.
	Format Format

	// Question is the display text.
	Question string

	// Answer is the canonical correct answer; Kind describes its
	// representation.
	Answer string
	Kind   AnswerKind

	// Operands is the flat operand list the answer was computed from.
	// Fraction problems store (n1, d1, n2, d2). Nil for problems with
	// no meaningful operand decomposition.
	Operands []int64

	// QuickHints are short one-line nudges, cheapest to show.
	QuickHints []string

	// Tiers is the graduated three-tier hint bundle.
	Tiers hints.Bundle
}

// OperationTag returns the hint-dispatch tag for the problem's subtype.
// Subtypes map many-to-one onto operation tags: all three "add-N"
// bands of level 3A share the "add" builders, and so on.
func OperationTag(subtype string) string {
	switch subtype {
	case "count", "number-table", "write-numbers":
		return "count"
	case "sequence":
		return "sequence"
	case "add-1", "add-2", "add-3", "add-small", "add-medium", "add-large", "mixed-addsub-add":
		return "add"
	case "sub-intro", "sub-basic", "sub-teens", "mixed-addsub-sub":
		return "sub"
	case "vert-add-2d", "vert-add-3d":
		return "vert-add"
	case "vert-sub-2d", "vert-sub-3d":
		return "vert-sub"
	case "times-tables", "mult-2d":
		return "mul"
	case "div-basic":
		return "div"
	case "div-remainder":
		return "div-rem"
	case "long-mult":
		return "long-mult"
	case "long-div":
		return "long-div"
	case "frac-reduce", "frac-improper":
		return "frac-reduce"
	case "frac-add":
		return "frac-add"
	case "frac-sub":
		return "frac-sub"
	case "frac-mul", "frac-mixed":
		return "frac-mul"
	case "frac-div":
		return "frac-div"
	case "dec-add":
		return "dec-add"
	case "dec-sub", "dec-arith", "frac-dec":
		return "dec-sub"
	case "order-ops":
		return "order-ops"
	default:
		return subtype
	}
}

// newProblem assembles a Problem with an ID and its hint bundle
// attached. tag overrides the subtype-derived operation tag when
// non-empty (mixed bands pick per-instance tags).
func newProblem(level levels.Level, worksheet int, cfg levels.Config, tag string, p Problem) *Problem {
	p.ID = uuid.NewString()
	p.Level = level
	p.Worksheet = worksheet
	p.Topic = cfg.Topic
	p.Subtype = cfg.Subtype
	p.Difficulty = cfg.Difficulty
	if tag == "" {
		tag = OperationTag(cfg.Subtype)
	}
	p.Tiers = hints.Build(tag, p.Operands, level)
	return &p
}
