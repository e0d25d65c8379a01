package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/misaki/kumora/internal/store"
)

type captureRepo struct {
	problems []store.ProblemEventData
	hints    []store.HintEventData
}

func (c *captureRepo) AppendProblem(_ context.Context, d store.ProblemEventData) error {
	c.problems = append(c.problems, d)
	return nil
}

func (c *captureRepo) AppendHint(_ context.Context, d store.HintEventData) error {
	c.hints = append(c.hints, d)
	return nil
}

func (c *captureRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func press(m Model, r rune) Model {
	next, _ := m.Update(keyPress(r))
	return next.(Model)
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		got, want string
		ok        bool
	}{
		{"7", "7", true},
		{" 7 ", "7", true},
		{"7 r2", "7 R2", true},
		{"7  R2", "7 R2", true},
		{"8", "7", false},
		{"", "7", false},
		{"3/4", "3/4", true},
		{"2 1/2", "2 1/2", true},
		{"2.50", "2.5", true},
		{"2.5", "2.50", true},
		{"3.0", "3", true},
		{"2.05", "2.5", false},
	}
	for _, tt := range tests {
		if got := checkAnswer(tt.got, tt.want); got != tt.ok {
			t.Errorf("checkAnswer(%q, %q) = %v, want %v", tt.got, tt.want, got, tt.ok)
		}
	}
}

func TestNew_LoadsProblemAndLogsEvent(t *testing.T) {
	repo := &captureRepo{}
	m := New(Options{Level: "2A", Worksheet: 60, Events: repo})

	if m.problem == nil {
		t.Fatal("expected a problem on startup")
	}
	if len(repo.problems) != 1 {
		t.Fatalf("problem events = %d, want 1", len(repo.problems))
	}
	if repo.problems[0].Level != "2A" || repo.problems[0].Worksheet != 60 {
		t.Errorf("event = %+v", repo.problems[0])
	}
}

func TestHintCycle_RecordsTiersInOrder(t *testing.T) {
	repo := &captureRepo{}
	m := New(Options{Level: "A", Worksheet: 40, Events: repo})

	m = press(m, 'h')
	m = press(m, 'h')
	m = press(m, 'h')
	m = press(m, 'h') // Past the last tier, no further event.

	if len(repo.hints) != 3 {
		t.Fatalf("hint events = %d, want 3", len(repo.hints))
	}
	want := []string{"micro", "visual", "teaching"}
	for i, ev := range repo.hints {
		if ev.Tier != want[i] {
			t.Errorf("hint %d tier = %q, want %q", i, ev.Tier, want[i])
		}
		if ev.HintText == "" {
			t.Errorf("hint %d has empty text", i)
		}
	}
}

func TestNext_LoadsFreshProblem(t *testing.T) {
	m := New(Options{Level: "B", Worksheet: 30})
	firstID := m.problem.ID

	m = press(m, 'n')

	if m.problem.ID == firstID {
		t.Error("expected a new problem after n")
	}
	if m.hintTier != 0 {
		t.Errorf("hint tier = %d, want 0 after next", m.hintTier)
	}
}

func TestSubmit_CorrectAnswer(t *testing.T) {
	m := New(Options{Level: "2A", Worksheet: 60})
	if m.useSeq {
		t.Skip("sequence widget problems are covered separately")
	}

	for _, r := range m.problem.Answer {
		m = press(m, r)
	}
	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)

	if !m.answered {
		t.Fatal("expected answered state after enter")
	}
	if !m.correct {
		t.Errorf("typed %q for answer %q, expected correct", m.input.Value(), m.problem.Answer)
	}
}

func TestScratchPad_ToggleRoutesKeys(t *testing.T) {
	m := New(Options{Level: "C", Worksheet: 100})

	m = press(m, 's')
	if !m.padOpen {
		t.Fatal("expected pad open after s")
	}

	// Draw a dot: pen down then up.
	m = press(m, ' ')
	m = press(m, ' ')
	if m.pad.StrokeCount() != 1 {
		t.Errorf("stroke count = %d, want 1", m.pad.StrokeCount())
	}

	m = press(m, 's')
	if m.padOpen {
		t.Error("expected pad closed after second s")
	}
}
