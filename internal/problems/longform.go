package problems

import (
	"fmt"

	"github.com/misaki/kumora/internal/levels"
)

// Level D: long multiplication and division, plus the first fraction
// work (reducing, improper/mixed conversion).

func generateD(worksheet int, cfg levels.Config) *Problem {
	switch cfg.Subtype {
	case "long-div":
		return genDLongDiv(worksheet, cfg)
	case "frac-reduce":
		return genDFracReduce(worksheet, cfg)
	case "frac-improper":
		return genDFracImproper(worksheet, cfg)
	default:
		// "long-mult" and anything unrecognized.
		return genDLongMult(worksheet, cfg)
	}
}

func genDLongMult(worksheet int, cfg levels.Config) *Problem {
	a := randBetween(12, 98)
	b := randBetween(12, 98)
	return newProblem(levels.LevelD, worksheet, cfg, "", Problem{
		Format:     FormatVertical,
		Question:   renderVertical('×', a, b),
		Answer:     fmt.Sprintf("%d", a*b),
		Kind:       KindInteger,
		Operands:   []int64{a, b},
		QuickHints: []string{fmt.Sprintf("Split %d into tens and ones and multiply each part.", b)},
	})
}

func genDLongDiv(worksheet int, cfg levels.Config) *Problem {
	b := randBetween(2, 9)
	q := randBetween(11, 99)
	if coin() {
		// Exact division.
		a := b * q
		return newProblem(levels.LevelD, worksheet, cfg, "", Problem{
			Format:     FormatHorizontal,
			Question:   fmt.Sprintf("%d ÷ %d =", a, b),
			Answer:     fmt.Sprintf("%d", q),
			Kind:       KindInteger,
			Operands:   []int64{a, b},
			QuickHints: []string{"Divide the tens first, then bring down the ones."},
		})
	}
	r := randBetween(1, b-1)
	a := b*q + r
	return newProblem(levels.LevelD, worksheet, cfg, "", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d ÷ %d =", a, b),
		Answer:     fmt.Sprintf("%d R%d", q, r),
		Kind:       KindString,
		Operands:   []int64{a, b},
		QuickHints: []string{"Divide the tens first; whatever will not divide at the end is the remainder."},
	})
}

func genDFracReduce(worksheet int, cfg levels.Config) *Problem {
	// Build an unreduced fraction from a coprime core and a common
	// factor, so the reduction is always non-trivial.
	core := randProperFraction(7).reduced()
	g := randBetween(2, 6)
	shown := fraction{core.N * g, core.D * g}
	return newProblem(levels.LevelD, worksheet, cfg, "", Problem{
		Format:     FormatText,
		Question:   fmt.Sprintf("Reduce %s to lowest terms.", shown),
		Answer:     core.String(),
		Kind:       KindFraction,
		Operands:   []int64{shown.N, shown.D},
		QuickHints: []string{fmt.Sprintf("Both %d and %d divide by the same number.", shown.N, shown.D)},
	})
}

func genDFracImproper(worksheet int, cfg levels.Config) *Problem {
	d := randBetween(2, 9)
	whole := randBetween(1, 4)
	rem := randBetween(1, d-1)
	improper := fraction{whole*d + rem, d}
	if coin() {
		return newProblem(levels.LevelD, worksheet, cfg, "", Problem{
			Format:     FormatText,
			Question:   fmt.Sprintf("Write %s as a mixed number.", improper),
			Answer:     fmt.Sprintf("%d %d/%d", whole, rem, d),
			Kind:       KindFraction,
			Operands:   []int64{improper.N, improper.D},
			QuickHints: []string{fmt.Sprintf("How many whole groups of %d fit into %d?", d, improper.N)},
		})
	}
	return newProblem(levels.LevelD, worksheet, cfg, "", Problem{
		Format:     FormatText,
		Question:   fmt.Sprintf("Write %d %d/%d as an improper fraction.", whole, rem, d),
		Answer:     improper.String(),
		Kind:       KindFraction,
		Operands:   []int64{improper.N, improper.D},
		QuickHints: []string{fmt.Sprintf("Each whole is %d/%d.", d, d)},
	})
}
