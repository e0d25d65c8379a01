package problems

import (
	"fmt"

	"github.com/misaki/kumora/internal/levels"
)

// Level E: the four fraction operations with single-digit
// denominators. Answers are always reduced.

func generateE(worksheet int, cfg levels.Config) *Problem {
	switch cfg.Subtype {
	case "frac-sub":
		return genEFracSub(worksheet, cfg)
	case "frac-mul":
		return genEFracMul(worksheet, cfg)
	case "frac-div":
		return genEFracDiv(worksheet, cfg)
	default:
		// "frac-add" and anything unrecognized.
		return genEFracAdd(worksheet, cfg)
	}
}

func genEFracAdd(worksheet int, cfg levels.Config) *Problem {
	a := randProperFraction(9)
	b := randProperFraction(9)
	return newProblem(levels.LevelE, worksheet, cfg, "", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%s + %s =", a, b),
		Answer:     a.add(b).String(),
		Kind:       KindFraction,
		Operands:   []int64{a.N, a.D, b.N, b.D},
		QuickHints: []string{"Find a common denominator before adding the tops."},
	})
}

func genEFracSub(worksheet int, cfg levels.Config) *Problem {
	a := randProperFraction(9)
	b := randProperFraction(9)
	// Keep results non-negative at this level.
	if a.less(b) {
		a, b = b, a
	}
	if a == b {
		a = fraction{a.N*2 + 1, a.D * 2}
	}
	return newProblem(levels.LevelE, worksheet, cfg, "", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%s - %s =", a, b),
		Answer:     a.sub(b).String(),
		Kind:       KindFraction,
		Operands:   []int64{a.N, a.D, b.N, b.D},
		QuickHints: []string{"Rewrite both fractions over the same denominator first."},
	})
}

func genEFracMul(worksheet int, cfg levels.Config) *Problem {
	a := randProperFraction(9)
	b := randProperFraction(9)
	return newProblem(levels.LevelE, worksheet, cfg, "", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%s × %s =", a, b),
		Answer:     a.mul(b).String(),
		Kind:       KindFraction,
		Operands:   []int64{a.N, a.D, b.N, b.D},
		QuickHints: []string{"Multiply the tops together and the bottoms together."},
	})
}

func genEFracDiv(worksheet int, cfg levels.Config) *Problem {
	a := randProperFraction(9)
	b := randProperFraction(9)
	return newProblem(levels.LevelE, worksheet, cfg, "", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%s ÷ %s =", a, b),
		Answer:     a.div(b).String(),
		Kind:       KindFraction,
		Operands:   []int64{a.N, a.D, b.N, b.D},
		QuickHints: []string{"Flip the second fraction and multiply."},
	})
}
