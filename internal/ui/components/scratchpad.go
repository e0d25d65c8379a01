package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/misaki/kumora/internal/ui/theme"
)

// Cell is one drawable position on the scratch pad grid.
type Cell struct {
	X, Y int
}

// Stroke is a contiguous run of drawn cells. Undo removes whole strokes.
type Stroke []Cell

// ScratchPad is a freehand working area rendered as a cell grid. The
// cursor moves with the arrow keys; while the pen is down every move
// draws. Lifting and lowering the pen starts a new stroke.
type ScratchPad struct {
	Width  int
	Height int

	cursor  Cell
	penDown bool
	strokes []Stroke
	current Stroke
}

// NewScratchPad creates an empty pad of the given size.
func NewScratchPad(width, height int) ScratchPad {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return ScratchPad{Width: width, Height: height}
}

// Init returns nil (no initial command).
func (s ScratchPad) Init() tea.Cmd {
	return nil
}

// Update handles drawing keys: arrows move (and draw when the pen is
// down), space toggles the pen, u undoes the last stroke, c clears.
func (s ScratchPad) Update(msg tea.Msg) (ScratchPad, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up":
		s.move(0, -1)
	case "down":
		s.move(0, 1)
	case "left":
		s.move(-1, 0)
	case "right":
		s.move(1, 0)
	case " ", "space":
		s.togglePen()
	case "u":
		s.undo()
	case "c":
		s.clear()
	}

	return s, nil
}

func (s *ScratchPad) move(dx, dy int) {
	s.cursor.X = clamp(s.cursor.X+dx, 0, s.Width-1)
	s.cursor.Y = clamp(s.cursor.Y+dy, 0, s.Height-1)
	if s.penDown {
		s.current = append(s.current, s.cursor)
	}
}

func (s *ScratchPad) togglePen() {
	if s.penDown {
		s.finishStroke()
		s.penDown = false
		return
	}
	s.penDown = true
	s.current = Stroke{s.cursor}
}

func (s *ScratchPad) finishStroke() {
	if len(s.current) > 0 {
		s.strokes = append(s.strokes, s.current)
		s.current = nil
	}
}

// undo removes the most recent stroke, including one in progress.
func (s *ScratchPad) undo() {
	if len(s.current) > 0 {
		s.current = nil
		s.penDown = false
		return
	}
	if len(s.strokes) > 0 {
		s.strokes = s.strokes[:len(s.strokes)-1]
	}
}

func (s *ScratchPad) clear() {
	s.strokes = nil
	s.current = nil
	s.penDown = false
}

// StrokeCount reports the number of committed strokes.
func (s ScratchPad) StrokeCount() int {
	return len(s.strokes)
}

// Drawn reports whether the cell has ink from any stroke.
func (s ScratchPad) Drawn(c Cell) bool {
	for _, stroke := range s.strokes {
		for _, cell := range stroke {
			if cell == c {
				return true
			}
		}
	}
	for _, cell := range s.current {
		if cell == c {
			return true
		}
	}
	return false
}

// View renders the grid with ink, the cursor and a border.
func (s ScratchPad) View() string {
	var b strings.Builder
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := Cell{X: x, Y: y}
			switch {
			case c == s.cursor && s.penDown:
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("█"))
			case c == s.cursor:
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("+"))
			case s.Drawn(c):
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("█"))
			default:
				b.WriteString("·")
			}
		}
		if y < s.Height-1 {
			b.WriteString("\n")
		}
	}

	pen := "pen up"
	if s.penDown {
		pen = "pen down"
	}
	grid := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(b.String())
	status := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("  space " + pen + " · u undo · c clear")

	return grid + "\n" + status
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
