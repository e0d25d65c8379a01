package problems

import (
	"fmt"

	"github.com/misaki/kumora/internal/levels"
)

// Level A: horizontal subtraction up to and beyond ten, then mixed
// addition/subtraction review.

func generateA(worksheet int, cfg levels.Config) *Problem {
	switch cfg.Subtype {
	case "sub-teens":
		return genASubTeens(worksheet, cfg)
	case "mixed-addsub":
		return genAMixed(worksheet, cfg)
	default:
		// "sub-basic" and anything unrecognized.
		return genASubBasic(worksheet, cfg)
	}
}

func genASubBasic(worksheet int, cfg levels.Config) *Problem {
	a := randBetween(2, 10)
	b := randBetween(1, a-1)
	return newProblem(levels.LevelA, worksheet, cfg, "sub", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d - %d =", a, b),
		Answer:     fmt.Sprintf("%d", a-b),
		Kind:       KindInteger,
		Operands:   []int64{a, b},
		QuickHints: []string{fmt.Sprintf("Think: %d plus what makes %d?", b, a)},
	})
}

func genASubTeens(worksheet int, cfg levels.Config) *Problem {
	// Crossing back through ten: minuend 11-18, answer stays positive.
	a := randBetween(11, 18)
	b := randBetween(2, 9)
	if a-b < 1 {
		b = a - 1
	}
	return newProblem(levels.LevelA, worksheet, cfg, "sub", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d - %d =", a, b),
		Answer:     fmt.Sprintf("%d", a-b),
		Kind:       KindInteger,
		Operands:   []int64{a, b},
		QuickHints: []string{fmt.Sprintf("Take away enough to reach 10 first, then the rest of %d.", b)},
	})
}

func genAMixed(worksheet int, cfg levels.Config) *Problem {
	if coin() {
		a := randBetween(1, 15)
		b := randBetween(1, 20-a)
		return newProblem(levels.LevelA, worksheet, cfg, "add", Problem{
			Format:     FormatHorizontal,
			Question:   fmt.Sprintf("%d + %d =", a, b),
			Answer:     fmt.Sprintf("%d", a+b),
			Kind:       KindInteger,
			Operands:   []int64{a, b},
			QuickHints: []string{"Watch the sign: this one is addition."},
		})
	}
	a := randBetween(5, 20)
	b := randBetween(1, a-1)
	return newProblem(levels.LevelA, worksheet, cfg, "sub", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d - %d =", a, b),
		Answer:     fmt.Sprintf("%d", a-b),
		Kind:       KindInteger,
		Operands:   []int64{a, b},
		QuickHints: []string{"Watch the sign: this one is subtraction."},
	})
}
