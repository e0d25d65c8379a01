package levels

import (
	"fmt"
	"strings"
)

// Level identifies a difficulty tier in the worksheet progression.
// Levels run from 4A (pre-school counting) up through F (fraction
// calculations), each covering worksheets 1-200.
type Level string

const (
	Level4A Level = "4A" // Counting and number recognition
	Level3A Level = "3A" // Adding 1 to 3
	Level2A Level = "2A" // Adding 4 to 10, early subtraction
	LevelA  Level = "A"  // Horizontal addition and subtraction
	LevelB  Level = "B"  // Vertical addition and subtraction
	LevelC  Level = "C"  // Multiplication and division
	LevelD  Level = "D"  // Long multiplication/division, fraction intro
	LevelE  Level = "E"  // Fraction arithmetic
	LevelF  Level = "F"  // Four operations with fractions, decimals
)

// MaxWorksheet is the highest worksheet number within any level.
const MaxWorksheet = 200

// All returns every level in progression order.
func All() []Level {
	return []Level{
		Level4A, Level3A, Level2A,
		LevelA, LevelB, LevelC, LevelD, LevelE, LevelF,
	}
}

// Parse converts a user-supplied level string (case-insensitive) into
// a Level. Returns an error for unknown names.
func Parse(s string) (Level, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for _, l := range All() {
		if string(l) == want {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (expected one of 4A, 3A, 2A, A-F)", s)
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	for _, known := range All() {
		if l == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for the level.
func (l Level) DisplayName() string {
	switch l {
	case Level4A:
		return "Level 4A — Counting"
	case Level3A:
		return "Level 3A — Adding up to 3"
	case Level2A:
		return "Level 2A — Adding up to 10"
	case LevelA:
		return "Level A — Addition & Subtraction"
	case LevelB:
		return "Level B — Vertical Calculation"
	case LevelC:
		return "Level C — Multiplication & Division"
	case LevelD:
		return "Level D — Long Calculation & Fractions"
	case LevelE:
		return "Level E — Fractions"
	case LevelF:
		return "Level F — Four Operations"
	default:
		return "Level " + string(l)
	}
}

// Grade returns the school grade the level roughly corresponds to.
// Pre-school levels map to 0.
func (l Level) Grade() int {
	switch l {
	case Level4A, Level3A:
		return 0
	case Level2A:
		return 1
	case LevelA:
		return 1
	case LevelB:
		return 2
	case LevelC:
		return 3
	case LevelD:
		return 4
	case LevelE:
		return 5
	case LevelF:
		return 6
	default:
		return 0
	}
}
