package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/misaki/kumora/internal/levels"
)

func TestLevelProgress_ShowsPosition(t *testing.T) {
	view := NewLevelProgress(levels.Level2A, 57, 48).View()

	if !strings.Contains(view, "2A") {
		t.Errorf("missing level label: %q", view)
	}
	if !strings.Contains(view, "57/200") {
		t.Errorf("missing worksheet position: %q", view)
	}
}

func TestLevelProgress_FitsWidth(t *testing.T) {
	view := NewLevelProgress(levels.LevelC, 120, 48).View()

	if w := lipgloss.Width(view); w > 48 {
		t.Errorf("rendered width = %d, want <= 48", w)
	}
}

func TestLevelProgress_MarksBandBoundaries(t *testing.T) {
	view := NewLevelProgress(levels.Level2A, 10, 48).View()

	if !strings.Contains(view, "┆") {
		t.Errorf("expected band notches in bar: %q", view)
	}
}
