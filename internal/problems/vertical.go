package problems

import (
	"fmt"

	"github.com/misaki/kumora/internal/levels"
)

// Level B: column addition and subtraction. Questions are rendered as
// stacked operands so the front end can display true column layout.

func generateB(worksheet int, cfg levels.Config) *Problem {
	switch cfg.Subtype {
	case "vert-add-3d":
		return genBVertical(worksheet, cfg, '+', 100, 899)
	case "vert-sub-2d":
		return genBVertical(worksheet, cfg, '-', 10, 99)
	case "vert-sub-3d":
		return genBVertical(worksheet, cfg, '-', 100, 999)
	default:
		// "vert-add-2d" and anything unrecognized.
		return genBVertical(worksheet, cfg, '+', 10, 99)
	}
}

func genBVertical(worksheet int, cfg levels.Config, op rune, lo, hi int64) *Problem {
	a := randBetween(lo, hi)
	b := randBetween(lo, hi)

	var answer int64
	var tag string
	if op == '+' {
		answer = a + b
		tag = "vert-add"
	} else {
		if b > a {
			a, b = b, a
		}
		if a == b {
			a++
		}
		answer = a - b
		tag = "vert-sub"
	}

	return newProblem(levels.LevelB, worksheet, cfg, tag, Problem{
		Format:     FormatVertical,
		Question:   renderVertical(op, a, b),
		Answer:     fmt.Sprintf("%d", answer),
		Kind:       KindInteger,
		Operands:   []int64{a, b},
		QuickHints: []string{"Start with the ones column, on the right."},
	})
}

// renderVertical stacks two operands column-style:
//
//	  47
//	+ 35
//	----
func renderVertical(op rune, a, b int64) string {
	width := len(fmt.Sprintf("%d", a))
	if w := len(fmt.Sprintf("%d", b)); w > width {
		width = w
	}
	rule := ""
	for range width + 2 {
		rule += "-"
	}
	return fmt.Sprintf("  %*d\n%c %*d\n%s", width, a, op, width, b, rule)
}
