package hints

import (
	"fmt"
	"strings"

	"github.com/misaki/kumora/internal/levels"
)

func buildCount(in Input) Bundle {
	n := in.operand(0, 5)
	return Bundle{
		Micro: Tier{
			Text:    "Try pointing at each picture while you say the numbers out loud. What number do you land on?",
			Seconds: 8,
		},
		Visual: Tier{
			Text:      "Touch each object once, in order, and count up by one each time.",
			Seconds:   15,
			Animation: "count-dots",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"If there were %d apples, you would count: %s. The last number you say is how many there are.",
				n-1, countingRun(n-1)),
			Seconds: 20,
		},
	}
}

func buildSequence(in Input) Bundle {
	a := in.operand(0, 1)
	step := in.operand(1, 1)
	return Bundle{
		Micro: Tier{
			Text:    "How much bigger is each number than the one before it?",
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Picture a number line. Starting at %d, hop the same distance each time.", a),
			Seconds:   15,
			Animation: "number-line",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"In the pattern %d, %d, %d each number goes up by %d, so the next one is %d. Your pattern works the same way.",
				a+step, a+2*step, a+3*step, step, a+4*step),
			Seconds: 25,
		},
	}
}

func buildAdd(in Input) Bundle {
	a := in.operand(0, 2)
	b := in.operand(1, 1)
	ea, eb := perturbPair(a, b)
	micro := fmt.Sprintf("If you start at %d and count up %d more, where do you land?", a, b)
	if earlyLevel(in.Level) {
		micro = fmt.Sprintf("Say %d, then count up %d more. Where do you stop?", a, b)
	}
	return Bundle{
		Micro: Tier{
			Text:    micro,
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Put %d counters in one group and %d in another, then push them together and count.", a, b),
			Seconds:   15,
			Animation: "join-blocks",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %d + %d. Start at %d, count up %d: %s. So %d + %d = %d. Now do yours the same way.",
				ea, eb, ea, eb, countUpRun(ea, eb), ea, eb, ea+eb),
			Seconds: 25,
		},
	}
}

func buildSub(in Input) Bundle {
	a := in.operand(0, 5)
	b := in.operand(1, 2)
	ea, eb := perturbPair(a, b)
	if eb >= ea {
		eb = ea - 1
	}
	if eb < 1 {
		eb = 1
	}
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("If you have %d and take away %d, are you counting up or counting down?", a, b),
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Draw %d circles and cross out %d of them. How many are left?", a, b),
			Seconds:   15,
			Animation: "cross-out",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %d - %d. Start at %d and count back %d: you reach %d. So %d - %d = %d.",
				ea, eb, ea, eb, ea-eb, ea, eb, ea-eb),
			Seconds: 25,
		},
	}
}

func buildVerticalAdd(in Input) Bundle {
	a := in.operand(0, 24)
	b := in.operand(1, 13)
	ea, eb := perturbCarryPair(a, b, true)
	return Bundle{
		Micro: Tier{
			Text:    "Which column do you add first: the ones or the tens?",
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Line up %d over %d so the ones digits sit in the same column. Add the ones column first; if it makes ten or more, carry 1 to the tens.", a, b),
			Seconds:   18,
			Animation: "column-add",
		},
		Teaching: Tier{
			Text:    workedColumnAdd(ea, eb),
			Seconds: 30,
		},
	}
}

func buildVerticalSub(in Input) Bundle {
	a := in.operand(0, 42)
	b := in.operand(1, 17)
	ea, eb := perturbCarryPair(a, b, false)
	if eb >= ea {
		ea, eb = eb+1, ea
	}
	return Bundle{
		Micro: Tier{
			Text:    "Look at the ones column. Is the top digit big enough to subtract from, or do you need to borrow?",
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Write %d on top and %d underneath, lining up the ones. Subtract the ones first, borrowing a ten when the top digit is smaller.", a, b),
			Seconds:   18,
			Animation: "column-sub",
		},
		Teaching: Tier{
			Text:    workedColumnSub(ea, eb),
			Seconds: 30,
		},
	}
}

func buildMul(in Input) Bundle {
	a := in.operand(0, 3)
	b := in.operand(1, 4)
	ea := perturbWithin(a, 2, 9)
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("%d × %d means %d groups of %d. Could you add %d over and over instead?", a, b, a, b, b),
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Draw %d rows with %d dots in each row, then count the dots.", a, b),
			Seconds:   15,
			Animation: "dot-array",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %d × %d. That is %d added together %d times: %s = %d. Use the same idea on yours.",
				ea, b, b, ea, repeatedAddRun(b, ea), ea*b),
			Seconds: 25,
		},
	}
}

func buildDiv(in Input) Bundle {
	a := in.operand(0, 12)
	b := in.operand(1, 3)
	if b == 0 {
		b = 1
	}
	eq := perturbWithin(a/b, 2, 9)
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("How many groups of %d fit inside %d?", b, a),
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Share %d counters equally into %d groups and count how many land in each group.", a, b),
			Seconds:   15,
			Animation: "share-groups",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %d ÷ %d. Ask: %d times what makes %d? Since %d × %d = %d, the answer is %d.",
				eq*b, b, b, eq*b, b, eq, eq*b, eq),
			Seconds: 25,
		},
	}
}

func buildDivRemainder(in Input) Bundle {
	a := in.operand(0, 14)
	b := in.operand(1, 4)
	if b == 0 {
		b = 1
	}
	eq := perturbWithin(a/b, 2, 8)
	er := int64(1)
	if b > 2 {
		er = 2
	}
	ea := eq*b + er
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("What is the biggest multiple of %d that still fits inside %d?", b, a),
			Seconds: 10,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Deal %d counters into groups of %d. Whatever will not make a full group is the remainder.", a, b),
			Seconds:   18,
			Animation: "share-groups",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %d ÷ %d. The biggest multiple of %d inside %d is %d (%d × %d). That leaves %d over, so the answer is %d R%d.",
				ea, b, b, ea, eq*b, b, eq, er, eq, er),
			Seconds: 30,
		},
	}
}

func buildLongMult(in Input) Bundle {
	a := in.operand(0, 34)
	b := in.operand(1, 12)
	tens := (b / 10) * 10
	ones := b % 10
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("Can you split %d into tens and ones before multiplying?", b),
			Seconds: 10,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Multiply %d by the ones digit of %d first, then by the tens digit, writing the second row one place to the left. Add the rows.", a, b),
			Seconds:   20,
			Animation: "long-mult-rows",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Break it apart: %d × %d = %d × %d + %d × %d = %d + %d = %d. Split your problem the same way.",
				a, b, a, tens, a, ones, a*tens, a*ones, a*b),
			Seconds: 30,
		},
	}
}

func buildLongDiv(in Input) Bundle {
	a := in.operand(0, 96)
	b := in.operand(1, 4)
	if b == 0 {
		b = 1
	}
	eq := perturbWithin(a/b, 11, 24)
	ea := eq * b
	return Bundle{
		Micro: Tier{
			Text:    fmt.Sprintf("Start with the tens of %d: how many times does %d go into them?", a, b),
			Seconds: 10,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Set up %d ÷ %d in long division. Divide the tens, bring down the ones, divide again.", a, b),
			Seconds:   20,
			Animation: "long-division",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %d ÷ %d. Tens first: %d goes into %d tens %d times. Bring down the ones and divide again to get %d. Check: %d × %d = %d.",
				ea, b, b, ea/10, eq/10, eq, eq, b, ea),
			Seconds: 32,
		},
	}
}

func buildDecimalAdd(in Input) Bundle {
	// Operands are in hundredths.
	a := in.operand(0, 150)
	b := in.operand(1, 75)
	return Bundle{
		Micro: Tier{
			Text:    "Where should the decimal points sit before you add?",
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Write %s over %s with the decimal points lined up, then add column by column just like whole numbers.", cents(a), cents(b)),
			Seconds:   18,
			Animation: "decimal-align",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Think in hundredths: %s is %d hundredths and %s is %d hundredths. %d + %d = %d hundredths, which is %s.",
				cents(a), a, cents(b), b, a, b, a+b, cents(a+b)),
			Seconds: 30,
		},
	}
}

func buildDecimalSub(in Input) Bundle {
	a := in.operand(0, 300)
	b := in.operand(1, 125)
	return Bundle{
		Micro: Tier{
			Text:    "Line up the decimal points first. Which column do you subtract first?",
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Write %s on top and %s underneath with the points aligned, then subtract right to left, borrowing as usual.", cents(a), cents(b)),
			Seconds:   18,
			Animation: "decimal-align",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Think in hundredths: %d hundredths minus %d hundredths is %d hundredths, so %s - %s = %s.",
				a, b, a-b, cents(a), cents(b), cents(a-b)),
			Seconds: 30,
		},
	}
}

func buildOrderOps(in Input) Bundle {
	a := in.operand(0, 4)
	b := in.operand(1, 3)
	c := in.operand(2, 5)
	ea := perturbWithin(a, 2, 9)
	return Bundle{
		Micro: Tier{
			Text:    "Which part of the expression must you work out first?",
			Seconds: 8,
		},
		Visual: Tier{
			Text:      fmt.Sprintf("Circle %d × %d and work it out before touching anything else.", b, c),
			Seconds:   15,
			Animation: "circle-first",
		},
		Teaching: Tier{
			Text: fmt.Sprintf(
				"Here is a similar one: %d + %d × %d. Multiply first: %d × %d = %d. Then add: %d + %d = %d. Multiplication always goes before addition.",
				ea, b, c, b, c, b*c, ea, b*c, ea+b*c),
			Seconds: 28,
		},
	}
}

// countingRun formats "1, 2, ..., n" for small n.
func countingRun(n int64) string {
	if n < 1 {
		n = 1
	}
	if n > 6 {
		n = 6
	}
	s := ""
	for i := int64(1); i <= n; i++ {
		if i > 1 {
			s += ", "
		}
		s += fmt.Sprintf("%d", i)
	}
	return s
}

// countUpRun formats "a+1, a+2, ..., a+b" for small b.
func countUpRun(a, b int64) string {
	if b < 1 {
		b = 1
	}
	if b > 5 {
		b = 5
	}
	s := ""
	for i := int64(1); i <= b; i++ {
		if i > 1 {
			s += ", "
		}
		s += fmt.Sprintf("%d", a+i)
	}
	return s
}

// repeatedAddRun formats "b + b + ... + b" with n terms.
func repeatedAddRun(b, n int64) string {
	if n < 2 {
		n = 2
	}
	if n > 5 {
		n = 5
	}
	s := ""
	for i := int64(0); i < n; i++ {
		if i > 0 {
			s += " + "
		}
		s += fmt.Sprintf("%d", b)
	}
	return s
}

// cents renders a value in hundredths as a decimal string.
func cents(v int64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", neg, v/100, v%100)
}

// placeName labels a column for the worked examples, ones first.
func placeName(i int) string {
	names := []string{"Ones", "Tens", "Hundreds", "Thousands", "Ten-thousands"}
	if i >= len(names) {
		i = len(names) - 1
	}
	return names[i]
}

// workedColumnAdd narrates a two-number column addition, one column at
// a time through the widest operand.
func workedColumnAdd(a, b int64) string {
	var steps []string
	carry := int64(0)
	ra, rb := a, b
	for i := 0; ra > 0 || rb > 0; i++ {
		da, db := ra%10, rb%10
		ra, rb = ra/10, rb/10
		s := da + db + carry
		step := fmt.Sprintf("%s: %d + %d", placeName(i), da, db)
		if carry > 0 {
			step += " + 1"
		}
		step = fmt.Sprintf("%s = %d", step, s)
		carry = s / 10
		if carry > 0 && (ra > 0 || rb > 0) {
			step = fmt.Sprintf("%s, write %d and carry 1", step, s%10)
		}
		steps = append(steps, step)
	}
	return fmt.Sprintf("Here is a similar one: %d + %d. %s. So %d + %d = %d.",
		a, b, strings.Join(steps, ". "), a, b, a+b)
}

// workedColumnSub narrates a two-number column subtraction, borrowing
// column by column through the widest operand.
func workedColumnSub(a, b int64) string {
	var steps []string
	borrow := int64(0)
	ra, rb := a, b
	for i := 0; ra > 0 || rb > 0; i++ {
		da, db := ra%10-borrow, rb%10
		ra, rb = ra/10, rb/10
		if da < db {
			steps = append(steps, fmt.Sprintf(
				"%s: %d is less than %d, so borrow a ten: %d - %d = %d",
				placeName(i), da, db, da+10, db, da+10-db))
			borrow = 1
		} else {
			steps = append(steps, fmt.Sprintf(
				"%s: %d - %d = %d", placeName(i), da, db, da-db))
			borrow = 0
		}
	}
	return fmt.Sprintf("Here is a similar one: %d - %d. %s. So %d - %d = %d.",
		a, b, strings.Join(steps, ". "), a, b, a-b)
}

// earlyLevel reports whether wording should stay extra short.
func earlyLevel(l levels.Level) bool {
	return l == levels.Level4A || l == levels.Level3A
}
