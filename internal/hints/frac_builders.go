package hints

import "fmt"

// frac is a small rational helper local to hint formatting. Fraction
// operand lists arrive flat as (n1, d1, n2, d2).
type frac struct {
	n, d int64
}

func (f frac) String() string {
	if f.d == 1 {
		return fmt.Sprintf("%d", f.n)
	}
	return fmt.Sprintf("%d/%d", f.n, f.d)
}

func (f frac) reduced() frac {
	if f.d == 0 {
		return f
	}
	g := gcd(abs64(f.n), abs64(f.d))
	if g == 0 {
		return f
	}
	return frac{f.n / g, f.d / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// fracPair reads the two fraction operands, substituting a tame
// default when the operand list is malformed.
func fracPair(in Input) (frac, frac) {
	a := frac{in.operand(0, 1), in.operand(1, 2)}
	b := frac{in.operand(2, 1), in.operand(3, 3)}
	if a.d == 0 {
		a.d = 2
	}
	if b.d == 0 {
		b.d = 3
	}
	return a, b
}

func buildFracReduce(in Input) Bundle {
	f := frac{in.operand(0, 4), in.operand(1, 8)}
	if f.d == 0 {
		f.d = 8
	}
	g := gcd(abs64(f.n), abs64(f.d))
	// Analogous example: same reduction factor, different fraction.
	ex := frac{g * 3, g * 4}
	if ex == f {
		ex = frac{g * 2, g * 5}
	}
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("Is there a number that divides evenly into both %d and %d?", f.n, f.d),
			Seconds: 10,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("List the numbers that divide %d and the numbers that divide %d. Find the biggest one on both lists.", f.n, f.d),
			Seconds:   18,
			Animation: "factor-lists",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: reduce %s. Both %d and %d divide by %d, giving %s. Divide top and bottom of your fraction by the same number.",
				ex, ex.n, ex.d, g, ex.reduced()),
			Seconds: 28,
		},
	}
}

func buildFracAdd(in Input) Bundle {
	a, b := fracPair(in)
	ea, eb := perturbFracPair(a, b)
	common := ea.d * eb.d
	sum := frac{ea.n*eb.d + eb.n*ea.d, common}.reduced()
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("Do %s and %s have the same denominator? If not, what do you need to do first?", a, b),
			Seconds: 10,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Rewrite both fractions over a common denominator of %d × %d, then add just the tops.", a.d, b.d),
			Seconds:   20,
			Animation: "fraction-bars",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %s + %s. Common denominator %d: %d/%d + %d/%d = %d/%d, which reduces to %s.",
				ea, eb, common, ea.n*eb.d, common, eb.n*ea.d, common,
				ea.n*eb.d+eb.n*ea.d, common, sum),
			Seconds: 32,
		},
	}
}

func buildFracSub(in Input) Bundle {
	a, b := fracPair(in)
	ea, eb := perturbFracPair(a, b)
	// Keep the example positive.
	if ea.n*eb.d < eb.n*ea.d {
		ea, eb = eb, ea
	}
	common := ea.d * eb.d
	diff := frac{ea.n*eb.d - eb.n*ea.d, common}.reduced()
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("Before subtracting, can you write %s and %s with the same denominator?", a, b),
			Seconds: 10,
		},
		Visual: Tier{
			Text:      "Shade both fractions on bars split into the common denominator, then take the second shading away from the first.",
			Seconds:   20,
			Animation: "fraction-bars",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %s - %s. Over %d: %d/%d - %d/%d = %s.",
				ea, eb, common, ea.n*eb.d, common, eb.n*ea.d, common, diff),
			Seconds: 32,
		},
	}
}

func buildFracMul(in Input) Bundle {
	a, b := fracPair(in)
	ea, eb := perturbFracPair(a, b)
	prod := frac{ea.n * eb.n, ea.d * eb.d}.reduced()
	return Bundle{
		Micro: Tier{
			Text:    "When you multiply fractions, do you need a common denominator?",
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Multiply straight across: tops together (%d × %d) and bottoms together (%d × %d).", a.n, b.n, a.d, b.d),
			Seconds:   15,
			Animation: "fraction-grid",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %s × %s = %d/%d = %s. Multiply across, then reduce.",
				ea, eb, ea.n*eb.n, ea.d*eb.d, prod),
			Seconds: 25,
		},
	}
}

func buildFracDiv(in Input) Bundle {
	a, b := fracPair(in)
	ea, eb := perturbFracPair(a, b)
	flipped := frac{eb.d, eb.n}
	prod := frac{ea.n * flipped.n, ea.d * flipped.d}.reduced()
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("Dividing by %s is the same as multiplying by what?", b),
			Seconds: 10,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Flip the second fraction upside down (%s becomes %d/%d), then multiply straight across.", b, b.d, b.n),
			Seconds:   18,
			Animation: "flip-multiply",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %s ÷ %s. Flip and multiply: %s × %s = %s.",
				ea, eb, ea, flipped, prod),
			Seconds: 30,
		},
	}
}
