package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestScratchPad_DrawStroke(t *testing.T) {
	pad := NewScratchPad(10, 5)

	pad, _ = pad.Update(keyPress(' ')) // pen down
	pad, _ = pad.Update(specialKey(tea.KeyRight))
	pad, _ = pad.Update(specialKey(tea.KeyRight))
	pad, _ = pad.Update(keyPress(' ')) // pen up

	if pad.StrokeCount() != 1 {
		t.Fatalf("stroke count = %d, want 1", pad.StrokeCount())
	}
	for _, c := range []Cell{{0, 0}, {1, 0}, {2, 0}} {
		if !pad.Drawn(c) {
			t.Errorf("expected ink at %v", c)
		}
	}
	if pad.Drawn(Cell{3, 0}) {
		t.Error("unexpected ink at (3,0)")
	}
}

func TestScratchPad_MoveWithoutPenLeavesNoInk(t *testing.T) {
	pad := NewScratchPad(10, 5)

	pad, _ = pad.Update(specialKey(tea.KeyRight))
	pad, _ = pad.Update(specialKey(tea.KeyDown))

	if pad.StrokeCount() != 0 {
		t.Fatalf("stroke count = %d, want 0", pad.StrokeCount())
	}
	if pad.Drawn(Cell{1, 0}) {
		t.Error("unexpected ink after pen-up movement")
	}
}

func TestScratchPad_UndoRemovesLastStroke(t *testing.T) {
	pad := NewScratchPad(10, 5)

	// First stroke along the top.
	pad, _ = pad.Update(keyPress(' '))
	pad, _ = pad.Update(specialKey(tea.KeyRight))
	pad, _ = pad.Update(keyPress(' '))

	// Second stroke downward.
	pad, _ = pad.Update(keyPress(' '))
	pad, _ = pad.Update(specialKey(tea.KeyDown))
	pad, _ = pad.Update(keyPress(' '))

	if pad.StrokeCount() != 2 {
		t.Fatalf("stroke count = %d, want 2", pad.StrokeCount())
	}

	pad, _ = pad.Update(keyPress('u'))

	if pad.StrokeCount() != 1 {
		t.Fatalf("stroke count after undo = %d, want 1", pad.StrokeCount())
	}
	if !pad.Drawn(Cell{1, 0}) {
		t.Error("first stroke should survive undo")
	}
	if pad.Drawn(Cell{1, 1}) {
		t.Error("second stroke should be gone")
	}
}

func TestScratchPad_UndoCancelsInProgressStroke(t *testing.T) {
	pad := NewScratchPad(10, 5)

	pad, _ = pad.Update(keyPress(' '))
	pad, _ = pad.Update(specialKey(tea.KeyRight))
	pad, _ = pad.Update(keyPress('u'))

	if pad.StrokeCount() != 0 {
		t.Fatalf("stroke count = %d, want 0", pad.StrokeCount())
	}
	if pad.Drawn(Cell{1, 0}) {
		t.Error("in-progress stroke should be cancelled")
	}
}

func TestScratchPad_Clear(t *testing.T) {
	pad := NewScratchPad(10, 5)

	pad, _ = pad.Update(keyPress(' '))
	pad, _ = pad.Update(specialKey(tea.KeyRight))
	pad, _ = pad.Update(keyPress(' '))
	pad, _ = pad.Update(keyPress('c'))

	if pad.StrokeCount() != 0 {
		t.Fatalf("stroke count after clear = %d, want 0", pad.StrokeCount())
	}
}

func TestScratchPad_CursorStaysInBounds(t *testing.T) {
	pad := NewScratchPad(3, 2)

	for i := 0; i < 10; i++ {
		pad, _ = pad.Update(specialKey(tea.KeyLeft))
		pad, _ = pad.Update(specialKey(tea.KeyUp))
	}
	pad, _ = pad.Update(keyPress(' '))
	pad, _ = pad.Update(keyPress(' '))

	if !pad.Drawn(Cell{0, 0}) {
		t.Error("cursor should be pinned at the origin")
	}
}
