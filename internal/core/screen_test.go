package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenWideRune(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(1, 0, "測a", ColorWhite)

	if s.Get(1, 0) != '測' {
		t.Errorf("Get(1, 0) = %q, expected '測'", s.Get(1, 0))
	}
	// Right half of the wide glyph reads as a blank.
	if s.Get(2, 0) != ' ' {
		t.Errorf("Get(2, 0) = %q, expected continuation blank", s.Get(2, 0))
	}
	if s.Get(3, 0) != 'a' {
		t.Errorf("Get(3, 0) = %q, expected 'a'", s.Get(3, 0))
	}
	if got := s.Row(0); got != " 測a  " {
		t.Errorf("Row(0) = %q, expected %q", got, " 測a  ")
	}
	if TextWidth(s.Row(0)) != s.Width() {
		t.Errorf("Row width = %d, expected %d", TextWidth(s.Row(0)), s.Width())
	}
}

func TestScreenOverwriteWideRune(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawText(0, 0, "測")
	s.Set(1, 0, 'x')

	if got := s.Row(0); got != " x  " {
		t.Errorf("Row(0) = %q, expected %q", got, " x  ")
	}
}

func TestScreenWideRuneClippedAtEdge(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawText(2, 0, "測")

	if got := s.Row(0); got != "   " {
		t.Errorf("Row(0) = %q, expected wide rune to be dropped", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorRed)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorRed {
		t.Errorf("GetCell().Color = %d, expected %d", s.GetCell(x, 2).Color, ColorRed)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox corners not drawn correctly")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges not drawn correctly")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')
	s.Resize(20, 4)

	if s.Width() != 20 || s.Height() != 4 {
		t.Errorf("Resize() dims = %dx%d, expected 20x4", s.Width(), s.Height())
	}
	lines := strings.Split(s.String(), "\n")
	if len(lines) != 4 {
		t.Errorf("String() has %d lines, expected 4", len(lines))
	}
	for i, line := range lines {
		if line != strings.Repeat(" ", 20) {
			t.Errorf("line %d = %q, expected blank", i, line)
		}
	}
}
