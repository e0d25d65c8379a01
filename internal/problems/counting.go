package problems

import (
	"fmt"
	"strings"

	"github.com/misaki/kumora/internal/levels"
)

// Level 4A: counting pictures, number tables, writing numbers and
// simple sequences. Everything stays at or below 100.

var countedObjects = []string{"apples", "stars", "balloons", "fish", "blocks", "ducks"}

func generate4A(worksheet int, cfg levels.Config) *Problem {
	switch cfg.Subtype {
	case "number-table":
		return gen4ANumberTable(worksheet, cfg)
	case "write-numbers":
		return gen4AWriteNumber(worksheet, cfg)
	case "sequence":
		return genSequence(levels.Level4A, worksheet, cfg, 96, 2)
	default:
		// "count" and anything unrecognized.
		return gen4ACount(worksheet, cfg)
	}
}

func gen4ACount(worksheet int, cfg levels.Config) *Problem {
	n := randBetween(3, 10)
	obj := pick(countedObjects)
	dots := strings.TrimSpace(strings.Repeat("● ", int(n)))
	return newProblem(levels.Level4A, worksheet, cfg, "", Problem{
		Format:     FormatText,
		Question:   fmt.Sprintf("How many %s are there?  %s", obj, dots),
		Answer:     fmt.Sprintf("%d", n),
		Kind:       KindInteger,
		Operands:   []int64{n},
		QuickHints: []string{"Touch each one as you count."},
	})
}

func gen4ANumberTable(worksheet int, cfg levels.Config) *Problem {
	// A row of five consecutive numbers with the middle one blanked.
	start := randBetween(1, 44)
	row := make([]string, 5)
	for i := range row {
		row[i] = fmt.Sprintf("%d", start+int64(i))
	}
	blank := randBetween(1, 3)
	answer := row[blank]
	row[blank] = "__"
	return newProblem(levels.Level4A, worksheet, cfg, "", Problem{
		Format:     FormatTable,
		Question:   fmt.Sprintf("Fill in the missing number:  %s", strings.Join(row, "  ")),
		Answer:     answer,
		Kind:       KindInteger,
		Operands:   []int64{start + blank},
		QuickHints: []string{"The numbers go up by 1 across the row."},
	})
}

func gen4AWriteNumber(worksheet int, cfg levels.Config) *Problem {
	n := randBetween(2, 98)
	if coin() {
		return newProblem(levels.Level4A, worksheet, cfg, "", Problem{
			Format:     FormatText,
			Question:   fmt.Sprintf("Write the number that comes after %d.", n),
			Answer:     fmt.Sprintf("%d", n+1),
			Kind:       KindInteger,
			Operands:   []int64{n + 1},
			QuickHints: []string{"Count up one from the number you see."},
		})
	}
	return newProblem(levels.Level4A, worksheet, cfg, "", Problem{
		Format:     FormatText,
		Question:   fmt.Sprintf("Write the number that comes before %d.", n),
		Answer:     fmt.Sprintf("%d", n-1),
		Kind:       KindInteger,
		Operands:   []int64{n - 1},
		QuickHints: []string{"Count back one from the number you see."},
	})
}

// genSequence is shared by 4A and 3A: show three terms of an
// arithmetic pattern and ask for the next. maxStart bounds the first
// term; maxStep bounds the common difference.
func genSequence(level levels.Level, worksheet int, cfg levels.Config, maxStart, maxStep int64) *Problem {
	start := randBetween(1, maxStart)
	step := randBetween(1, maxStep)
	next := start + 3*step
	return newProblem(level, worksheet, cfg, "", Problem{
		Format:     FormatSequence,
		Question:   fmt.Sprintf("%d, %d, %d, __", start, start+step, start+2*step),
		Answer:     fmt.Sprintf("%d", next),
		Kind:       KindInteger,
		Operands:   []int64{start, step, next},
		QuickHints: []string{fmt.Sprintf("Each number grows by the same amount. Start from %d.", start)},
	})
}
