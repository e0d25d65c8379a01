package hints

// Analogous-example perturbation. The teaching tier never reuses the
// learner's own numbers: it nudges operands by a small amount so the
// worked example teaches the method without leaking the answer.

// perturbWithin nudges v by ±1 while staying inside [lo, hi].
func perturbWithin(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	if v+1 <= hi {
		return v + 1
	}
	return v - 1
}

// perturbPair produces a pair close to (a, b) but not equal to it.
// The second operand is preserved so the example exercises the same
// count-up or count-back distance.
func perturbPair(a, b int64) (int64, int64) {
	ea := a + 1
	if ea > 9 && a <= 9 {
		// Stay single-digit when the original was.
		ea = a - 1
	}
	if ea < 1 {
		ea = a + 2
	}
	return ea, b
}

// perturbCarryPair nudges (a, b) while preserving whether the ones
// column carries (for addition) or borrows (for subtraction). Keeping
// the regrouping behavior is what makes the example analogous: a
// worked example without a carry teaches nothing about carrying.
func perturbCarryPair(a, b int64, add bool) (int64, int64) {
	regroups := func(x, y int64) bool {
		if add {
			return x%10+y%10 >= 10
		}
		return x%10 < y%10
	}
	orig := regroups(a, b)
	for _, delta := range []int64{10, -10, 20, -20, 11, -11} {
		ea := a + delta
		if ea > 9 && ea != a && regroups(ea, b) == orig {
			return ea, b
		}
	}
	return a + 10, b
}

// perturbFracPair nudges a fraction pair to a nearby pair with the
// same denominators, keeping numerators proper where they started
// proper.
func perturbFracPair(a, b frac) (frac, frac) {
	ea := frac{a.n + 1, a.d}
	if ea.n >= ea.d && a.n < a.d {
		ea.n = a.n - 1
	}
	if ea.n < 1 {
		ea.n = 1
		if ea == a {
			ea = frac{1, a.d + 1}
		}
	}
	return ea, b
}
