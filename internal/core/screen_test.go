package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		wantW  int
		wantH  int
		output string
	}{
		{"small", 3, 2, 3, 2, "   \n   "},
		{"negative clamps to empty", -3, -1, 0, 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			if s.Width() != tc.wantW || s.Height() != tc.wantH {
				t.Errorf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.wantW, tc.wantH)
			}
			if got := s.String(); got != tc.output {
				t.Errorf("String() = %q, expected %q", got, tc.output)
			}
		})
	}
}

func TestScreenCellsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 3)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], '#', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Errorf("out-of-bounds writes leaked into %q", s.String())
	}
}

func TestScreenGlyphCells(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(0, 0, "░░", ColorRed)
	s.DrawTextColored(2, 0, "▒▒", ColorGreen)
	s.DrawText(4, 0, "S ")

	tests := []struct {
		x     int
		r     rune
		color Color
	}{
		{0, '░', ColorRed},
		{1, '░', ColorRed},
		{2, '▒', ColorGreen},
		{4, 'S', ColorDefault},
		{5, ' ', ColorDefault},
	}
	for _, tc := range tests {
		if c := s.GetCell(tc.x, 0); c.Rune != tc.r || c.Color != tc.color {
			t.Errorf("GetCell(%d, 0) = %+v, expected %q in %v", tc.x, c, tc.r, tc.color)
		}
	}

	// Set drops a previous color.
	s.Set(0, 0, 'x')
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Errorf("Set() kept color %v", c.Color)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(4, 0, "step 12")
	if got := s.Row(0); got != "    st" {
		t.Errorf("Row(0) = %q, expected %q", got, "    st")
	}

	s.DrawTextCentered(0, "ok", ColorCyan)
	if got := s.Row(0); got != "  okst" {
		t.Errorf("Row(0) = %q, expected %q", got, "  okst")
	}
	if c := s.GetCell(2, 0); c.Color != ColorCyan {
		t.Errorf("centered text color = %v, expected %v", c.Color, ColorCyan)
	}
}

func TestScreenDrawBoxFramesBoard(t *testing.T) {
	s := NewScreen(8, 5)
	for y := 0; y < 5; y++ {
		s.DrawText(0, y, "########")
	}
	s.DrawBox(NewRect(1, 1, 6, 3))

	expected := strings.Join([]string{
		"########",
		"#┌────┐#",
		"#│    │#",
		"#└────┘#",
		"########",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(0, 1, s.Width(), '─')
	if got := s.Row(1); got != "──────" {
		t.Errorf("Row(1) = %q, expected a full separator", got)
	}
	if got := s.Row(7); got != "      " {
		t.Errorf("Row(7) = %q, expected blank", got)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "A* search")
	s.DrawText(0, 3, "footer")

	s.Resize(5, 2)
	if got := s.String(); got != "A* se\n     " {
		t.Errorf("shrunk String() = %q", got)
	}

	s.Resize(12, 3)
	if got := s.Row(0); got != "A* se       " {
		t.Errorf("grown Row(0) = %q", got)
	}
	if s.Bounds() != NewRect(0, 0, 12, 3) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 1, "▓▓▓", ColorBrightBlue)
	s.Clear()
	for x := 0; x < 3; x++ {
		if c := s.GetCell(x, 1); c != blankCell {
			t.Errorf("GetCell(%d, 1) = %+v after Clear", x, c)
		}
	}
}
