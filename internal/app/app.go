// Package app is the interactive practice loop: one generated problem
// at a time, graduated hints on demand, a scratch pad for working and
// keyboard answer entry.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/misaki/kumora/internal/enrich"
	"github.com/misaki/kumora/internal/hints"
	"github.com/misaki/kumora/internal/levels"
	"github.com/misaki/kumora/internal/problems"
	"github.com/misaki/kumora/internal/store"
	"github.com/misaki/kumora/internal/ui/components"
	"github.com/misaki/kumora/internal/ui/layout"
	"github.com/misaki/kumora/internal/ui/theme"
)

// tierNames index the graduated hint ladder.
var tierNames = []string{"micro", "visual", "teaching"}

// Options configure the practice session.
type Options struct {
	Level     levels.Level
	Worksheet int

	// Events receives problem and hint events; nil disables logging.
	Events store.EventRepo

	// Enricher rewrites hint wording when set.
	Enricher *enrich.Enricher
}

// enrichedMsg delivers an asynchronously enriched hint bundle.
type enrichedMsg struct {
	problemID string
	bundle    hints.Bundle
}

// Model is the root Bubble Tea model for practice.
type Model struct {
	opts Options

	problem *problems.Problem
	input   components.AnswerInput
	seq     components.SeqFill
	useSeq  bool

	pad     components.ScratchPad
	padOpen bool

	hintTier int // 0 = none, 1..3 = tiers revealed
	answered bool
	correct  bool

	width  int
	height int
}

// New creates the practice model with its first problem loaded.
func New(opts Options) Model {
	m := Model{
		opts: opts,
		pad:  components.NewScratchPad(40, 10),
	}
	m.loadProblem()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.input.Init()}
	if cmd := m.enrichCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// loadProblem generates the next problem and resets per-problem state.
func (m *Model) loadProblem() {
	m.problem = problems.Generate(m.opts.Level, m.opts.Worksheet)
	m.input = components.NewAnswerInput("Type your answer...", true, 20)
	m.hintTier = 0
	m.answered = false
	m.correct = false

	m.useSeq = false
	if m.problem.Format == problems.FormatSequence && len(m.problem.Operands) == 3 {
		start, step, next := m.problem.Operands[0], m.problem.Operands[1], m.problem.Operands[2]
		m.seq = components.NewSeqFill([]components.SeqSlot{
			{Value: int(start)},
			{Value: int(start + step)},
			{Value: int(start + 2*step)},
			{Value: int(next), Blank: true},
		})
		m.useSeq = true
	}

	m.appendProblemEvent()
}

// enrichCmd kicks off hint rewriting for the current problem.
func (m Model) enrichCmd() tea.Cmd {
	if m.opts.Enricher == nil || m.problem == nil {
		return nil
	}
	p := m.problem
	enricher := m.opts.Enricher
	return func() tea.Msg {
		bundle := enricher.Enrich(context.Background(), p.Question, p.Tiers)
		return enrichedMsg{problemID: p.ID, bundle: bundle}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case enrichedMsg:
		if m.problem != nil && m.problem.ID == msg.problemID {
			m.problem.Tiers = msg.bundle
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "s":
		m.padOpen = !m.padOpen
		return m, nil
	}

	if m.padOpen {
		var cmd tea.Cmd
		m.pad, cmd = m.pad.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "h":
		m.revealNextHint()
		return m, nil
	case "n":
		m.loadProblem()
		return m, tea.Batch(m.input.Init(), m.enrichCmd())
	case "enter":
		m.submit()
		return m, nil
	}

	return m.forward(msg)
}

// forward routes remaining messages to the active answer widget.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.answered {
		return m, nil
	}
	var cmd tea.Cmd
	if m.useSeq {
		m.seq, cmd = m.seq.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) submit() {
	if m.answered {
		return
	}
	if m.useSeq {
		m.correct = m.seq.Submit()
	} else {
		m.correct = checkAnswer(m.input.Value(), m.problem.Answer)
		m.input.Submit(m.correct)
	}
	m.answered = true
}

// revealNextHint advances the hint ladder one tier and records it.
func (m *Model) revealNextHint() {
	if m.hintTier >= len(tierNames) {
		return
	}
	m.hintTier++
	m.appendHintEvent(m.hintTier)
}

// checkAnswer compares learner input against the canonical answer.
// Comparison is whitespace-tolerant and case-insensitive so "7 r2"
// matches "7 R2", and trailing decimal zeros are dropped so "2.50"
// matches "2.5".
func checkAnswer(got, want string) bool {
	norm := func(s string) string {
		fields := strings.Fields(strings.ToUpper(s))
		for i, f := range fields {
			fields[i] = trimDecimalZeros(f)
		}
		return strings.Join(fields, " ")
	}
	return norm(got) == norm(want) && strings.TrimSpace(got) != ""
}

// trimDecimalZeros strips trailing zeros after a decimal point.
// Tokens that are not plain decimal numbers pass through unchanged.
func trimDecimalZeros(tok string) string {
	if !strings.Contains(tok, ".") {
		return tok
	}
	for _, r := range tok {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			return tok
		}
	}
	t := strings.TrimRight(tok, "0")
	t = strings.TrimRight(t, ".")
	if t == "" || t == "-" {
		return "0"
	}
	return t
}

func (m *Model) appendProblemEvent() {
	if m.opts.Events == nil || m.problem == nil {
		return
	}
	p := m.problem
	err := m.opts.Events.AppendProblem(context.Background(), store.ProblemEventData{
		ProblemID:    p.ID,
		Level:        string(p.Level),
		Worksheet:    p.Worksheet,
		Topic:        p.Topic,
		Subtype:      p.Subtype,
		QuestionText: p.Question,
		Answer:       p.Answer,
		AnswerKind:   string(p.Kind),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log problem event: %v\n", err)
	}
}

func (m *Model) appendHintEvent(tier int) {
	if m.opts.Events == nil || m.problem == nil {
		return
	}
	p := m.problem
	err := m.opts.Events.AppendHint(context.Background(), store.HintEventData{
		ProblemID:    p.ID,
		Level:        string(p.Level),
		Tag:          problems.OperationTag(p.Subtype),
		Tier:         tierNames[tier-1],
		QuestionText: p.Question,
		HintText:     m.tier(tier).Text,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log hint event: %v\n", err)
	}
}

func (m Model) tier(n int) hints.Tier {
	switch n {
	case 1:
		return m.problem.Tiers.Micro
	case 2:
		return m.problem.Tiers.Visual
	default:
		return m.problem.Tiers.Teaching
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader("Practice", string(m.opts.Level), m.opts.Worksheet, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	content := m.renderContent()

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) keyHints() []layout.KeyHint {
	if m.padOpen {
		return []layout.KeyHint{
			{Key: "↑↓←→", Description: "Move"},
			{Key: "Space", Description: "Pen"},
			{Key: "U", Description: "Undo"},
			{Key: "S", Description: "Close pad"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "H", Description: "Hint"},
		{Key: "S", Description: "Scratch pad"},
		{Key: "N", Description: "Next"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m Model) renderContent() string {
	var parts []string

	barWidth := m.width - 8
	if barWidth > 48 {
		barWidth = 48
	}
	parts = append(parts, components.NewLevelProgress(m.opts.Level, m.opts.Worksheet, barWidth).View())

	question := m.problem.Question
	if m.problem.Format == problems.FormatVertical {
		question = lipgloss.NewStyle().Align(lipgloss.Right).Render(question)
	}
	parts = append(parts, theme.Card.Render(theme.Body.Render(question)))

	if m.useSeq {
		parts = append(parts, m.seq.View())
	} else {
		parts = append(parts, m.input.View())
	}

	if m.answered {
		if m.correct {
			parts = append(parts, theme.Correct.Render("Correct! Press n for the next one."))
		} else {
			parts = append(parts, theme.Incorrect.Render("Not quite. The answer is "+m.problem.Answer+"."))
		}
	}

	for i := 1; i <= m.hintTier && i <= len(tierNames); i++ {
		t := m.tier(i)
		label := lipgloss.NewStyle().Foreground(theme.Accent).Render(tierNames[i-1] + ": ")
		parts = append(parts, label+theme.Hint.Render(t.Text))
	}

	if m.padOpen {
		parts = append(parts, m.pad.View())
	}

	return strings.Join(parts, "\n\n")
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
