package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/misaki/kumora/internal/levels"
	"github.com/misaki/kumora/internal/ui/theme"
)

// LevelProgress shows how far through a level's worksheets the learner
// is. Each topic band boundary gets a notch so the bar doubles as a
// map of what is coming up.
type LevelProgress struct {
	Level     levels.Level
	Worksheet int
	Width     int
}

// NewLevelProgress creates a progress bar for a worksheet position.
func NewLevelProgress(level levels.Level, worksheet, width int) LevelProgress {
	return LevelProgress{
		Level:     level,
		Worksheet: worksheet,
		Width:     width,
	}
}

// View renders the bar.
func (p LevelProgress) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%s  %d/%d", p.Level, p.Worksheet, levels.MaxWorksheet)) + "  "

	barWidth := p.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * p.Worksheet / levels.MaxWorksheet
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	notches := make(map[int]bool)
	for _, band := range levels.Bands(p.Level) {
		if band.Through >= levels.MaxWorksheet {
			continue
		}
		pos := band.Through * barWidth / levels.MaxWorksheet
		if pos > 0 && pos < barWidth {
			notches[pos] = true
		}
	}

	var done, ahead strings.Builder
	for i := 0; i < barWidth; i++ {
		ch := " "
		if notches[i] {
			ch = "┆"
		}
		if i < filled {
			done.WriteString(ch)
		} else {
			ahead.WriteString(ch)
		}
	}

	bar := lipgloss.NewStyle().
		Background(theme.Secondary).
		Foreground(theme.BgCard).
		Render(done.String()) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Foreground(theme.TextDim).
			Render(ahead.String())

	return label + bar
}
