package problems

import (
	"fmt"
	"strings"

	"github.com/misaki/kumora/internal/levels"
)

// Level F: mixed-number fractions, decimal arithmetic, converting
// between fractions and decimals, and order of operations.

func generateF(worksheet int, cfg levels.Config) *Problem {
	switch cfg.Subtype {
	case "dec-arith":
		return genFDecimalArith(worksheet, cfg)
	case "frac-dec":
		return genFFracToDecimal(worksheet, cfg)
	case "order-ops":
		return genFOrderOps(worksheet, cfg)
	default:
		// "frac-mixed" and anything unrecognized.
		return genFFracMixed(worksheet, cfg)
	}
}

func genFFracMixed(worksheet int, cfg levels.Config) *Problem {
	// Mixed number times a proper fraction.
	whole := randBetween(1, 3)
	a := randProperFraction(6)
	b := randProperFraction(6)
	improper := fraction{whole*a.D + a.N, a.D}
	result := improper.mul(b)
	return newProblem(levels.LevelF, worksheet, cfg, "frac-mul", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d %s × %s =", whole, a, b),
		Answer:     result.Mixed(),
		Kind:       KindFraction,
		Operands:   []int64{improper.N, improper.D, b.N, b.D},
		QuickHints: []string{fmt.Sprintf("Turn %d %s into an improper fraction first.", whole, a)},
	})
}

func genFDecimalArith(worksheet int, cfg levels.Config) *Problem {
	// Operands held in hundredths so arithmetic stays exact.
	a := randBetween(100, 999)
	b := randBetween(100, 999)
	if coin() {
		return newProblem(levels.LevelF, worksheet, cfg, "dec-add", Problem{
			Format:     FormatHorizontal,
			Question:   fmt.Sprintf("%s + %s =", formatCents(a), formatCents(b)),
			Answer:     formatCents(a + b),
			Kind:       KindDecimal,
			Operands:   []int64{a, b},
			QuickHints: []string{"Line up the decimal points before adding."},
		})
	}
	if b > a {
		a, b = b, a
	}
	if a == b {
		a += 25
	}
	return newProblem(levels.LevelF, worksheet, cfg, "dec-sub", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%s - %s =", formatCents(a), formatCents(b)),
		Answer:     formatCents(a - b),
		Kind:       KindDecimal,
		Operands:   []int64{a, b},
		QuickHints: []string{"Line up the decimal points before subtracting."},
	})
}

// decimalFriendlyDenominators are denominators whose fractions have an
// exact two-place decimal form.
var decimalFriendlyDenominators = []int64{2, 4, 5, 10, 20, 25, 50}

func genFFracToDecimal(worksheet int, cfg levels.Config) *Problem {
	d := pick(decimalFriendlyDenominators)
	n := randBetween(1, d-1)
	cents := n * 100 / d
	return newProblem(levels.LevelF, worksheet, cfg, "", Problem{
		Format:     FormatText,
		Question:   fmt.Sprintf("Write %d/%d as a decimal.", n, d),
		Answer:     formatCents(cents),
		Kind:       KindDecimal,
		Operands:   []int64{n, d},
		QuickHints: []string{fmt.Sprintf("Find an equivalent fraction of %d/%d with denominator 100.", n, d)},
	})
}

func genFOrderOps(worksheet int, cfg levels.Config) *Problem {
	a := randBetween(2, 20)
	b := randBetween(2, 9)
	c := randBetween(2, 9)
	if coin() {
		return newProblem(levels.LevelF, worksheet, cfg, "", Problem{
			Format:     FormatHorizontal,
			Question:   fmt.Sprintf("%d + %d × %d =", a, b, c),
			Answer:     fmt.Sprintf("%d", a+b*c),
			Kind:       KindInteger,
			Operands:   []int64{a, b, c},
			QuickHints: []string{"Multiplication comes before addition."},
		})
	}
	// Keep the subtraction variant non-negative.
	for a < b*c {
		a += 10
	}
	return newProblem(levels.LevelF, worksheet, cfg, "", Problem{
		Format:     FormatHorizontal,
		Question:   fmt.Sprintf("%d - %d × %d =", a, b, c),
		Answer:     fmt.Sprintf("%d", a-b*c),
		Kind:       KindInteger,
		Operands:   []int64{a, b, c},
		QuickHints: []string{"Multiplication comes before subtraction."},
	})
}

// formatCents renders a value held in hundredths as a decimal string,
// trimming trailing zeros ("250" -> "2.5", "200" -> "2").
func formatCents(v int64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	s := fmt.Sprintf("%d.%02d", v/100, v%100)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return neg + s
}
