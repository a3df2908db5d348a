package core

import "testing"

func TestRectContains(t *testing.T) {
	board := NewRect(2, 3, 10, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 2, 3, true},
		{"last cell", 11, 7, true},
		{"right edge is exclusive", 12, 3, false},
		{"bottom edge is exclusive", 2, 8, false},
		{"left of board", 1, 4, false},
		{"above board", 4, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := board.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCenterIn(t *testing.T) {
	tests := []struct {
		name     string
		area     Rect
		w, h     int
		expected Rect
	}{
		{"board below hud", NewRect(0, 2, 60, 27), 52, 27, NewRect(4, 2, 52, 27)},
		{"odd slack rounds down", NewRect(0, 0, 9, 6), 4, 3, NewRect(2, 1, 4, 3)},
		{"exact fit", NewRect(3, 3, 8, 4), 8, 4, NewRect(3, 3, 8, 4)},
		{"overflow goes negative", NewRect(0, 0, 6, 2), 10, 4, NewRect(-2, -1, 10, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.area.CenterIn(tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("CenterIn(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
			if got.Right()-got.X != tc.w || got.Bottom()-got.Y != tc.h {
				t.Errorf("CenterIn(%d, %d) changed the size: %+v", tc.w, tc.h, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name                  string
		val, lo, hi, expected int
	}{
		{"speed within range", 8, 1, 64, 8},
		{"speed below one", 0, 1, 64, 1},
		{"speed past max", 128, 1, 64, 64},
		{"degenerate range", 5, 3, 3, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame reports ActionPause")
	}

	f.Set(ActionPause)
	f.Set(ActionStep)
	for _, a := range []Action{ActionPause, ActionStep} {
		if !f.Has(a) {
			t.Errorf("Has(%v) = false after Set", a)
		}
	}
	if f.Has(ActionRestart) {
		t.Error("Has(Restart) = true, expected false")
	}

	f.Clear()
	if f.Has(ActionPause) || f.Has(ActionStep) {
		t.Error("Clear() left actions behind")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionRestart, "Restart"},
		{ActionFaster, "Faster"},
		{ActionSlower, "Slower"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}

func TestPalette(t *testing.T) {
	p := Palette()
	if len(p) != int(colorCount) {
		t.Fatalf("len(Palette()) = %d, expected %d", len(p), colorCount)
	}
	if p[0] != ColorDefault || p[len(p)-1] != ColorDarkGray {
		t.Errorf("Palette() = %v, expected ColorDefault..ColorDarkGray", p)
	}
}
