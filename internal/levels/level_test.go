package levels

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"3A", Level3A, false},
		{"3a", Level3A, false},
		{" b ", LevelB, false},
		{"F", LevelF, false},
		{"Z", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInfo_Deterministic(t *testing.T) {
	for _, l := range All() {
		for _, ws := range []int{1, 30, 75, 150, 200} {
			a := Info(l, ws)
			b := Info(l, ws)
			if a != b {
				t.Errorf("Info(%s, %d) not deterministic: %+v vs %+v", l, ws, a, b)
			}
			if a.Topic == "" || a.Subtype == "" {
				t.Errorf("Info(%s, %d): empty topic or subtype: %+v", l, ws, a)
			}
		}
	}
}

func TestInfo_BandBoundaries(t *testing.T) {
	if got := Info(Level3A, 30).Subtype; got != "sequence" {
		t.Errorf("3A ws 30: got subtype %q, want sequence", got)
	}
	if got := Info(Level3A, 31).Subtype; got != "add-1" {
		t.Errorf("3A ws 31: got subtype %q, want add-1", got)
	}
	if got := Info(LevelB, 50).Subtype; got != "vert-add-2d" {
		t.Errorf("B ws 50: got subtype %q, want vert-add-2d", got)
	}
	if got := Info(LevelB, 51).Subtype; got != "vert-add-3d" {
		t.Errorf("B ws 51: got subtype %q, want vert-add-3d", got)
	}
}

func TestInfo_ClampsOutOfRange(t *testing.T) {
	low := Info(LevelC, -5)
	if low != Info(LevelC, 1) {
		t.Errorf("worksheet below range should clamp to first band")
	}
	high := Info(LevelC, 999)
	if high != Info(LevelC, 200) {
		t.Errorf("worksheet above range should clamp to last band")
	}
}

func TestInfo_UnknownLevelFallsBack(t *testing.T) {
	got := Info(Level("ZZ"), 10)
	if got != Info(LevelA, 10) {
		t.Errorf("unknown level should resolve as level A, got %+v", got)
	}
}

func TestGradeMonotonic(t *testing.T) {
	prev := -1
	for _, l := range All() {
		g := l.Grade()
		if g < prev {
			t.Errorf("grade for %s (%d) regressed below %d", l, g, prev)
		}
		prev = g
	}
}
