package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func seqSlots() []SeqSlot {
	// 2, 4, _, 8, _
	return []SeqSlot{
		{Value: 2},
		{Value: 4},
		{Value: 6, Blank: true},
		{Value: 8},
		{Value: 10, Blank: true},
	}
}

func typeDigits(sf SeqFill, digits string) SeqFill {
	for _, r := range digits {
		sf, _ = sf.Update(keyPress(r))
	}
	return sf
}

func TestSeqFill_AllCorrect(t *testing.T) {
	sf := NewSeqFill(seqSlots())

	sf = typeDigits(sf, "6")
	sf, _ = sf.Update(specialKey(tea.KeyTab))
	sf = typeDigits(sf, "10")

	values, ok := sf.Values()
	if !ok {
		t.Fatal("expected complete values")
	}
	if values[0] != 6 || values[1] != 10 {
		t.Fatalf("values = %v", values)
	}

	if !sf.Submit() {
		t.Error("expected all blanks correct")
	}
}

func TestSeqFill_WrongBlank(t *testing.T) {
	sf := NewSeqFill(seqSlots())

	sf = typeDigits(sf, "7")
	sf, _ = sf.Update(specialKey(tea.KeyTab))
	sf = typeDigits(sf, "10")

	if sf.Submit() {
		t.Error("expected a wrong blank to fail")
	}
}

func TestSeqFill_IncompleteValues(t *testing.T) {
	sf := NewSeqFill(seqSlots())

	sf = typeDigits(sf, "6")
	// Second blank left empty.

	if _, ok := sf.Values(); ok {
		t.Error("expected incomplete values")
	}
	if sf.Submit() {
		t.Error("incomplete submission should fail")
	}
}

func TestSeqFill_ArrowNavigationWraps(t *testing.T) {
	sf := NewSeqFill(seqSlots())

	// Left from the first blank wraps to the last.
	sf, _ = sf.Update(specialKey(tea.KeyLeft))
	sf = typeDigits(sf, "10")
	sf, _ = sf.Update(specialKey(tea.KeyRight))
	sf = typeDigits(sf, "6")

	if !sf.Submit() {
		t.Error("expected correct answers via wrapped navigation")
	}
}

func TestSeqFill_RejectsNonDigits(t *testing.T) {
	sf := NewSeqFill(seqSlots())

	sf = typeDigits(sf, "a6b")
	sf, _ = sf.Update(specialKey(tea.KeyTab))
	sf = typeDigits(sf, "10")

	values, ok := sf.Values()
	if !ok {
		t.Fatal("expected complete values")
	}
	if values[0] != 6 {
		t.Errorf("first blank = %d, want 6 (letters filtered)", values[0])
	}
}

func TestSeqFill_NoBlanks(t *testing.T) {
	sf := NewSeqFill([]SeqSlot{{Value: 1}, {Value: 2}})

	if sf.Init() != nil {
		t.Error("expected nil init command with no blanks")
	}
	sf, _ = sf.Update(specialKey(tea.KeyTab))

	values, ok := sf.Values()
	if !ok || len(values) != 0 {
		t.Errorf("values = %v, ok = %v", values, ok)
	}
}
