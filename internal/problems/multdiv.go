package problems

import (
	"fmt"

	"github.com/misaki/kumora/internal/levels"
)

// Level C: multiplication tables, single-digit multipliers and basic
// division, with and without remainders.

func generateC(worksheet int, cfg levels.Config) *Problem {
	switch cfg.Subtype {
	case "mult-2d":
		return genCMult2D(worksheet, cfg)
	case "div-basic":
		return genCDivBasic(worksheet, cfg)
	case "div-remainder":
		return genCDivRemainder(worksheet, cfg)
	default:
		// "times-tables" and anything unrecognized.
		return genCTimesTables(worksheet, cfg)
	}
}

func genCTimesTables(worksheet int, cfg levels.Config) *Problem {
	a := randBetween(2, 9)
	b := randBetween(1, 9)
	x, y := a, b
	if coin() {
		x, y = b, a
	}
	return newProblem(levels.LevelC, worksheet, cfg, "", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d × %d =", x, y),
		Answer:     fmt.Sprintf("%d", a*b),
		Kind:       KindInteger,
		Operands:   []int64{x, y},
		QuickHints: []string{fmt.Sprintf("Say the %d times table until you reach the %dth step.", x, y)},
	})
}

func genCMult2D(worksheet int, cfg levels.Config) *Problem {
	a := randBetween(12, 99)
	b := randBetween(2, 9)
	return newProblem(levels.LevelC, worksheet, cfg, "", Problem{
		Format:     FormatVertical,
		Question:   renderVertical('×', a, b),
		Answer:     fmt.Sprintf("%d", a*b),
		Kind:       KindInteger,
		Operands:   []int64{a, b},
		QuickHints: []string{fmt.Sprintf("Multiply the ones of %d first, then the tens.", a)},
	})
}

func genCDivBasic(worksheet int, cfg levels.Config) *Problem {
	b := randBetween(2, 9)
	q := randBetween(2, 9)
	a := b * q
	return newProblem(levels.LevelC, worksheet, cfg, "", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d ÷ %d =", a, b),
		Answer:     fmt.Sprintf("%d", q),
		Kind:       KindInteger,
		Operands:   []int64{a, b},
		QuickHints: []string{fmt.Sprintf("Think: %d times what makes %d?", b, a)},
	})
}

func genCDivRemainder(worksheet int, cfg levels.Config) *Problem {
	b := randBetween(3, 9)
	q := randBetween(2, 9)
	r := randBetween(1, b-1)
	a := b*q + r
	return newProblem(levels.LevelC, worksheet, cfg, "", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d ÷ %d =", a, b),
		Answer:     fmt.Sprintf("%d R%d", q, r),
		Kind:       KindString,
		Operands:   []int64{a, b},
		QuickHints: []string{fmt.Sprintf("Find the biggest multiple of %d that fits inside %d.", b, a)},
	})
}
