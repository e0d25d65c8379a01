package problems

import "fmt"

// fraction is the rational value used by the level D-F generators.
type fraction struct {
	N, D int64
}

func (f fraction) String() string {
	if f.D == 1 {
		return fmt.Sprintf("%d", f.N)
	}
	return fmt.Sprintf("%d/%d", f.N, f.D)
}

// Mixed renders an improper fraction as a mixed number, e.g. "2 1/3".
func (f fraction) Mixed() string {
	r := f.reduced()
	if r.D == 1 {
		return fmt.Sprintf("%d", r.N)
	}
	if r.N < r.D {
		return r.String()
	}
	return fmt.Sprintf("%d %d/%d", r.N/r.D, r.N%r.D, r.D)
}

func (f fraction) reduced() fraction {
	g := gcd(f.N, f.D)
	if g == 0 {
		return f
	}
	return fraction{f.N / g, f.D / g}
}

func (f fraction) add(o fraction) fraction {
	return fraction{f.N*o.D + o.N*f.D, f.D * o.D}.reduced()
}

func (f fraction) sub(o fraction) fraction {
	return fraction{f.N*o.D - o.N*f.D, f.D * o.D}.reduced()
}

func (f fraction) mul(o fraction) fraction {
	return fraction{f.N * o.N, f.D * o.D}.reduced()
}

func (f fraction) div(o fraction) fraction {
	return fraction{f.N * o.D, f.D * o.N}.reduced()
}

// less reports f < o.
func (f fraction) less(o fraction) bool {
	return f.N*o.D < o.N*f.D
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// randProperFraction draws a proper fraction with denominator in
// [2, maxDen] and numerator at least 1.
func randProperFraction(maxDen int64) fraction {
	d := randBetween(2, maxDen)
	n := randBetween(1, d-1)
	return fraction{n, d}
}
