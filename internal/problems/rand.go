package problems

import "math/rand/v2"

// Operand randomness is intentionally unseeded: problems are meant to
// differ between calls and no replay guarantee is offered. Tests treat
// generator output as a distribution.

// randBetween returns a uniform int64 in [lo, hi].
func randBetween(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + rand.Int64N(hi-lo+1)
}

// coin returns true half the time; generators use it to pick between
// equivalent phrasing variants.
func coin() bool {
	return rand.IntN(2) == 0
}

// pick returns a random element of choices.
func pick[T any](choices []T) T {
	return choices[rand.IntN(len(choices))]
}
