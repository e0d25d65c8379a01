// Package hints builds graduated three-tier hint bundles for practice
// problems. Tiers disclose progressively more help without revealing
// the answer: a Socratic question, then a setup description, then a
// worked analogous example.
package hints

import (
	"github.com/misaki/kumora/internal/levels"
)

// Tier is a single disclosure step of a hint bundle.
type Tier struct {
	// Text is the hint copy shown to the learner.
	Text string

	// Seconds is the estimated time the tier should stay on screen.
	Seconds int

	// Animation optionally names a front-end animation to play
	// alongside the text, e.g. "number-line". Empty when none applies.
	Animation string
}

// Bundle holds the three fixed hint tiers for one problem.
// All three tiers are always populated.
type Bundle struct {
	// Micro is a short Socratic question nudging the first step.
	Micro Tier

	// Visual describes how to set the problem up, usually paired with
	// an animation reference.
	Visual Tier

	// Teaching walks through a similar-but-different example in full,
	// so the learner sees the method without seeing their answer.
	Teaching Tier
}

// Input carries everything a builder needs to format its templates.
type Input struct {
	// Tag is the operation tag, e.g. "add", "vert-sub", "frac-mul".
	Tag string

	// Operands is the flat operand list for the problem. Arithmetic
	// tags use two entries; fraction tags use four (n1, d1, n2, d2).
	Operands []int64

	// Level the problem was generated for. Builders may soften or
	// shorten wording for early levels.
	Level levels.Level
}

// builder formats one bundle for one operation tag.
type builder func(in Input) Bundle

// builders is the dispatch table from operation tag to hint builder.
// Tags without an entry get the generic fallback bundle.
var builders = map[string]builder{
	"count":       buildCount,
	"sequence":    buildSequence,
	"add":         buildAdd,
	"sub":         buildSub,
	"vert-add":    buildVerticalAdd,
	"vert-sub":    buildVerticalSub,
	"mul":         buildMul,
	"div":         buildDiv,
	"div-rem":     buildDivRemainder,
	"long-mult":   buildLongMult,
	"long-div":    buildLongDiv,
	"dec-add":     buildDecimalAdd,
	"dec-sub":     buildDecimalSub,
	"order-ops":   buildOrderOps,
	"frac-reduce": buildFracReduce,
	"frac-add":    buildFracAdd,
	"frac-sub":    buildFracSub,
	"frac-mul":    buildFracMul,
	"frac-div":    buildFracDiv,
}

// Build returns the hint bundle for an (operation tag, operands, level)
// triple. Unmapped tags and short operand lists never fail: they fall
// through to a generic bundle so every problem always has three tiers.
func Build(tag string, operands []int64, level levels.Level) Bundle {
	b, ok := builders[tag]
	if !ok {
		return fallbackBundle()
	}
	return b(Input{Tag: tag, Operands: operands, Level: level})
}

// Tags returns the operation tags with a dedicated builder, for tests
// and tooling.
func Tags() []string {
	out := make([]string, 0, len(builders))
	for tag := range builders {
		out = append(out, tag)
	}
	return out
}

// fallbackBundle is returned for operation tags without a builder.
func fallbackBundle() Bundle {
	return Bundle{
		Micro: Tier{
			Text:    "What is the problem asking you to find?",
			Seconds: 8,
		},
		Visual: Tier{
			Text:      "Read the problem again slowly and write down the numbers you are given.",
			Seconds:   15,
			Animation: "pencil-underline",
		},
		Teaching: Tier{
			Text:    "Try a smaller version of the same problem first. Solve it step by step, then use the same steps on the real one.",
			Seconds: 25,
		},
	}
}

// operand returns Operands[i], or fallback when the list is too short.
// Builders use this instead of indexing so malformed input degrades to
// a sensible bundle instead of panicking.
func (in Input) operand(i int, fallback int64) int64 {
	if i < 0 || i >= len(in.Operands) {
		return fallback
	}
	return in.Operands[i]
}
