package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/misaki/kumora/internal/ui/theme"
)

// SeqSlot is one position in a fill-in-the-blank sequence. Given slots
// display their value; blank slots take input.
type SeqSlot struct {
	Value int
	Blank bool
}

// SeqFill renders a number sequence with editable blanks. Tab and the
// arrow keys move between blanks.
type SeqFill struct {
	slots   []SeqSlot
	inputs  []textinput.Model
	focused int // index into inputs

	submitted bool
	results   []bool // per blank, after submission
}

// NewSeqFill creates the widget from a slot list.
func NewSeqFill(slots []SeqSlot) SeqFill {
	var inputs []textinput.Model
	for range blanks(slots) {
		ti := textinput.New()
		ti.Placeholder = "?"
		ti.CharLimit = 4
		inputs = append(inputs, ti)
	}
	s := SeqFill{slots: slots, inputs: inputs}
	if len(s.inputs) > 0 {
		s.inputs[0].Focus()
	}
	return s
}

func blanks(slots []SeqSlot) []int {
	var idx []int
	for i, s := range slots {
		if s.Blank {
			idx = append(idx, i)
		}
	}
	return idx
}

// Init returns the focus command for the first blank.
func (s SeqFill) Init() tea.Cmd {
	if len(s.inputs) > 0 {
		return s.inputs[0].Focus()
	}
	return nil
}

// Update handles navigation between blanks and digit entry.
func (s SeqFill) Update(msg tea.Msg) (SeqFill, tea.Cmd) {
	if len(s.inputs) == 0 {
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "right":
			return s.focus(s.focused + 1), nil
		case "shift+tab", "left":
			return s.focus(s.focused - 1), nil
		default:
			key := kmsg.String()
			if len(key) == 1 && !strings.ContainsAny(key, "0123456789-") {
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s SeqFill) focus(i int) SeqFill {
	n := len(s.inputs)
	i = ((i % n) + n) % n
	s.inputs[s.focused].Blur()
	s.focused = i
	s.inputs[s.focused].Focus()
	return s
}

// Values returns the entered numbers in blank order. The bool is false
// when any blank is empty or non-numeric.
func (s SeqFill) Values() ([]int, bool) {
	out := make([]int, len(s.inputs))
	for i, in := range s.inputs {
		v, err := strconv.Atoi(strings.TrimSpace(in.Value()))
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Submit checks every blank against the slot values and records
// per-blank results. It returns true when all blanks are correct.
func (s *SeqFill) Submit() bool {
	values, ok := s.Values()
	s.submitted = true
	s.results = make([]bool, len(s.inputs))
	if !ok {
		return false
	}

	all := true
	for i, slotIdx := range blanks(s.slots) {
		correct := values[i] == s.slots[slotIdx].Value
		s.results[i] = correct
		if !correct {
			all = false
		}
	}
	return all
}

// View renders the sequence with blanks inline.
func (s SeqFill) View() string {
	var parts []string
	blankIdx := 0
	for _, slot := range s.slots {
		if !slot.Blank {
			parts = append(parts, theme.Body.Render(strconv.Itoa(slot.Value)))
			continue
		}

		view := s.inputs[blankIdx].View()
		if s.submitted && blankIdx < len(s.results) {
			if s.results[blankIdx] {
				view += lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
			} else {
				view += lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
			}
		}
		parts = append(parts, view)
		blankIdx++
	}

	return strings.Join(parts, theme.Hint.Render("  ,  "))
}
