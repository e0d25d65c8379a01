package problems

import (
	"fmt"

	"github.com/misaki/kumora/internal/levels"
)

// Levels 3A and 2A: horizontal addition with a fixed small addend,
// then early subtraction. The addend band comes from the subtype.

func generate3A(worksheet int, cfg levels.Config) *Problem {
	switch cfg.Subtype {
	case "sequence":
		return genSequence(levels.Level3A, worksheet, cfg, 116, 1)
	case "add-2":
		return genFixedAddend(levels.Level3A, worksheet, cfg, 2, 2, 118)
	case "add-3":
		return genFixedAddend(levels.Level3A, worksheet, cfg, 3, 3, 117)
	default:
		// "add-1" and anything unrecognized.
		return genFixedAddend(levels.Level3A, worksheet, cfg, 1, 1, 119)
	}
}

func generate2A(worksheet int, cfg levels.Config) *Problem {
	switch cfg.Subtype {
	case "add-medium":
		return genFixedAddend(levels.Level2A, worksheet, cfg, 6, 8, 20)
	case "add-large":
		return genFixedAddend(levels.Level2A, worksheet, cfg, 9, 10, 20)
	case "sub-intro":
		return gen2ASubIntro(worksheet, cfg)
	default:
		// "add-small" and anything unrecognized.
		return genFixedAddend(levels.Level2A, worksheet, cfg, 4, 5, 20)
	}
}

// genFixedAddend builds "a + b =" where b is drawn from [loB, hiB] and
// a from [1, maxA]. Half the time the commutative phrasing "b + a ="
// is used instead; the operand order on the problem matches the
// phrasing so hints reference what the learner sees.
func genFixedAddend(level levels.Level, worksheet int, cfg levels.Config, loB, hiB, maxA int64) *Problem {
	a := randBetween(1, maxA)
	b := randBetween(loB, hiB)

	x, y := a, b
	if coin() {
		x, y = b, a
	}
	return newProblem(level, worksheet, cfg, "add", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d + %d =", x, y),
		Answer:     fmt.Sprintf("%d", a+b),
		Kind:       KindInteger,
		Operands:   []int64{x, y},
		QuickHints: []string{fmt.Sprintf("Count up from the bigger number, %d.", max64(x, y))},
	})
}

func gen2ASubIntro(worksheet int, cfg levels.Config) *Problem {
	b := randBetween(1, 3)
	a := randBetween(b+1, 20)
	return newProblem(levels.Level2A, worksheet, cfg, "sub", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d - %d =", a, b),
		Answer:     fmt.Sprintf("%d", a-b),
		Kind:       KindInteger,
		Operands:   []int64{a, b},
		QuickHints: []string{fmt.Sprintf("Count back %d from %d.", b, a)},
	})
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
