package core

import (
	"strings"
	"testing"
)

func assertCell(t *testing.T, s *Screen, x, y int, r rune, c Color) {
	t.Helper()
	if got := s.GetCell(x, y); got.Rune != r || got.Color != c {
		t.Errorf("cell (%d, %d) = %q/%s, expected %q/%s", x, y, got.Rune, got.Color, r, c)
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 80)+"\n", 24), "\n") {
		t.Error("new screen should be all spaces")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(0, 0, 'o')
	s.SetColored(1, 2, '@', ColorBrightGreen)

	assertCell(t, s, 0, 0, 'o', ColorDefault)
	assertCell(t, s, 1, 2, '@', ColorBrightGreen)

	// Out of bounds writes are dropped, reads are blank.
	for _, p := range [][2]int{{-1, 0}, {6, 0}, {0, -1}, {0, 4}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		assertCell(t, s, p[0], p[1], ' ', ColorDefault)
	}

	s.Clear()
	assertCell(t, s, 1, 2, ' ', ColorDefault)
}

func TestScreenText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Level")
	s.DrawTextColored(17, 0, "Score", ColorYellow)
	s.DrawTextCentered(3, "▲▲", ColorBrightYellow)

	if got := s.Row(1); !strings.HasPrefix(got, "  Level ") {
		t.Errorf("Row(1) = %q", got)
	}
	// Clipped at the right edge.
	if got := s.Row(0); !strings.HasSuffix(got, "Sco") {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
	assertCell(t, s, 19, 0, 'o', ColorYellow)

	// Centering counts runes, not bytes.
	assertCell(t, s, 9, 3, '▲', ColorBrightYellow)
	assertCell(t, s, 10, 3, '▲', ColorBrightYellow)
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	want := []string{
		"          ",
		" ┌───┐    ",
		" │   │    ",
		" │   │    ",
		" └───┘    ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
	assertCell(t, s, 5, 4, '┘', ColorGray)
	assertCell(t, s, 3, 2, ' ', ColorDefault)
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(2, 1, 5, '─', ColorGray)

	if got := s.Row(1); got != "  ─────   " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColored(0, 1, "BBBBB", ColorRed)
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Worm", ColorGreen)
	s.DrawText(0, 5, "Gone")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	assertCell(t, s, 0, 0, 'W', ColorGreen)

	s.Resize(15, 8)
	if got := s.Row(0); got != "Worm           " {
		t.Errorf("Row(0) = %q after enlarging", got)
	}
	if got := s.Row(5); strings.TrimSpace(got) != "" {
		t.Errorf("Row(5) = %q, rows cut by shrinking should stay blank", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != strings.Repeat(" ", 10) {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
}

func TestColorNames(t *testing.T) {
	tests := []struct {
		c    Color
		name string
		ansi string
	}{
		{ColorDefault, "default", ""},
		{ColorRed, "red", "1"},
		{ColorBrightGreen, "bright_green", "10"},
		{ColorGray, "gray", "245"},
		{Color(200), "default", ""},
	}

	for _, tc := range tests {
		if tc.c.String() != tc.name || tc.c.ANSI() != tc.ansi {
			t.Errorf("Color(%d) = %q/%q, expected %q/%q", tc.c, tc.c.String(), tc.c.ANSI(), tc.name, tc.ansi)
		}
	}
}
