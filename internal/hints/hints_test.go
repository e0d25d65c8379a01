package hints

import (
	"strings"
	"testing"

	"github.com/misaki/kumora/internal/levels"
)

// operandsFor returns plausible operands for each tag so the full
// dispatch table can be exercised in one sweep.
func operandsFor(tag string) []int64 {
	switch tag {
	case "frac-add", "frac-sub", "frac-mul", "frac-div":
		return []int64{1, 4, 2, 3}
	case "frac-reduce":
		return []int64{6, 8}
	case "order-ops":
		return []int64{4, 3, 5}
	case "count":
		return []int64{7}
	case "sequence":
		return []int64{5, 2, 7}
	default:
		return []int64{23, 18}
	}
}

func TestBuild_AllTagsThreeTiers(t *testing.T) {
	for _, tag := range Tags() {
		b := Build(tag, operandsFor(tag), levels.LevelC)
		for name, tier := range map[string]Tier{
			"micro": b.Micro, "visual": b.Visual, "teaching": b.Teaching,
		} {
			if tier.Text == "" {
				t.Errorf("%s: %s tier has empty text", tag, name)
			}
			if tier.Seconds <= 0 {
				t.Errorf("%s: %s tier has no display duration", tag, name)
			}
		}
		if b.Visual.Animation == "" {
			t.Errorf("%s: visual tier missing animation reference", tag)
		}
	}
}

func TestBuild_UnknownTagFallsBack(t *testing.T) {
	b := Build("quaternion-rotation", []int64{1, 2}, levels.LevelF)
	if b.Micro.Text == "" || b.Visual.Text == "" || b.Teaching.Text == "" {
		t.Fatal("fallback bundle must populate all three tiers")
	}
}

func TestBuild_ShortOperandsDoNotPanic(t *testing.T) {
	for _, tag := range Tags() {
		b := Build(tag, nil, levels.LevelA)
		if b.Teaching.Text == "" {
			t.Errorf("%s: empty teaching tier with no operands", tag)
		}
	}
}

func TestBuildAdd_TeachingUsesDifferentNumbers(t *testing.T) {
	b := Build("add", []int64{4, 3}, levels.Level2A)
	if strings.Contains(b.Teaching.Text, "4 + 3") {
		t.Errorf("teaching tier leaked the original problem: %q", b.Teaching.Text)
	}
	if !strings.Contains(b.Teaching.Text, "5 + 3") {
		t.Errorf("expected perturbed example 5 + 3, got %q", b.Teaching.Text)
	}
}

func TestPerturbCarryPair_PreservesCarry(t *testing.T) {
	tests := []struct {
		a, b  int64
		add   bool
		carry bool
	}{
		{27, 18, true, true},   // 7+8 carries
		{23, 15, true, false},  // 3+5 does not
		{42, 17, false, true},  // 2 < 7 borrows
		{48, 17, false, false}, // 8 >= 7 does not
	}
	for _, tt := range tests {
		ea, eb := perturbCarryPair(tt.a, tt.b, tt.add)
		if ea == tt.a && eb == tt.b {
			t.Errorf("perturbCarryPair(%d, %d) returned the original pair", tt.a, tt.b)
		}
		var got bool
		if tt.add {
			got = ea%10+eb%10 >= 10
		} else {
			got = ea%10 < eb%10
		}
		if got != tt.carry {
			t.Errorf("perturbCarryPair(%d, %d, add=%v) = (%d, %d): regrouping changed", tt.a, tt.b, tt.add, ea, eb)
		}
	}
}

func TestWorkedColumnAdd_Correct(t *testing.T) {
	text := workedColumnAdd(37, 18)
	if !strings.Contains(text, "37 + 18 = 55") {
		t.Errorf("worked example has wrong arithmetic: %q", text)
	}
	if !strings.Contains(text, "carry") {
		t.Errorf("carrying example should mention the carry: %q", text)
	}
}

func TestWorkedColumnAdd_ThreeDigits(t *testing.T) {
	text := workedColumnAdd(347, 285)
	if !strings.Contains(text, "347 + 285 = 632") {
		t.Errorf("worked example has wrong arithmetic: %q", text)
	}
	if !strings.Contains(text, "Hundreds: 3 + 2 + 1 = 6") {
		t.Errorf("three-digit example should narrate the hundreds column: %q", text)
	}
}

func TestWorkedColumnSub_Borrow(t *testing.T) {
	text := workedColumnSub(42, 17)
	if !strings.Contains(text, "42 - 17 = 25") {
		t.Errorf("worked example has wrong arithmetic: %q", text)
	}
	if !strings.Contains(text, "borrow") {
		t.Errorf("borrowing example should mention the borrow: %q", text)
	}
}

func TestWorkedColumnSub_ThreeDigitsChainedBorrow(t *testing.T) {
	text := workedColumnSub(432, 167)
	if !strings.Contains(text, "432 - 167 = 265") {
		t.Errorf("worked example has wrong arithmetic: %q", text)
	}
	if !strings.Contains(text, "Hundreds: 3 - 1 = 2") {
		t.Errorf("three-digit example should narrate the hundreds column: %q", text)
	}
}

func TestBuildFracAdd_ExampleReduces(t *testing.T) {
	b := Build("frac-add", []int64{1, 4, 1, 2}, levels.LevelE)
	// Perturbed first operand: 2/4 + 1/2 over 8 = 8/8 reduces to 1.
	if !strings.Contains(b.Teaching.Text, "2/4 + 1/2") {
		t.Errorf("unexpected analogous example: %q", b.Teaching.Text)
	}
}

func TestFracReduced(t *testing.T) {
	tests := []struct {
		in   frac
		want string
	}{
		{frac{6, 8}, "3/4"},
		{frac{8, 8}, "1"},
		{frac{9, 3}, "3"},
		{frac{5, 7}, "5/7"},
	}
	for _, tt := range tests {
		if got := tt.in.reduced().String(); got != tt.want {
			t.Errorf("reduced(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
