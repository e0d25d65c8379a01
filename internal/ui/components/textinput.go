package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/misaki/kumora/internal/ui/theme"
)

// answerRunes are the characters accepted by answer entry. Besides
// digits this covers negatives, decimals, fractions like 3/4 and
// remainder answers like "4 R2".
const answerRunes = "0123456789-./ Rr"

// AnswerInput wraps bubbles/textinput for worksheet answer entry.
type AnswerInput struct {
	Model     textinput.Model
	Restrict  bool
	submitted bool
	valid     bool
}

// NewAnswerInput creates a styled answer input. When restrict is true
// only answer characters are accepted.
func NewAnswerInput(placeholder string, restrict bool, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return AnswerInput{
		Model:    ti,
		Restrict: restrict,
	}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.Restrict {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !strings.ContainsAny(key, answerRunes) {
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input, with a check or cross after submission.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// NumericValue returns the input value as an integer.
func (a AnswerInput) NumericValue() (int, error) {
	return strconv.Atoi(strings.TrimSpace(a.Model.Value()))
}

// Submit marks the input as submitted with a validation result.
func (a *AnswerInput) Submit(valid bool) {
	a.submitted = true
	a.valid = valid
}

// Reset clears the value and submission state.
func (a *AnswerInput) Reset() {
	a.Model.SetValue("")
	a.submitted = false
	a.valid = false
}
