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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '▲', ColorBrightCyan)

	cell := s.GetCell(3, 4)
	if cell.Rune != '▲' {
		t.Errorf("GetCell rune = %q, expected '▲'", cell.Rune)
	}
	if cell.Color != ColorBrightCyan {
		t.Errorf("GetCell color = %d, expected %d", cell.Color, ColorBrightCyan)
	}

	// Out of bounds cell is a default space
	cell = s.GetCell(-1, -1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Error("Out of bounds GetCell should return a default space cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some colored characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	// Should all be default spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected default space at (%d, %d), got %q", x, y, cell.Rune)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d)", x, y)
			}
		}
	}

	// Outside should still be spaces
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not draw outside the rect")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(1, 3, 5, '─')
	for x := 1; x < 6; x++ {
		if s.Get(x, 3) != '─' {
			t.Errorf("DrawHLine: expected '─' at (%d, 3)", x)
		}
	}

	s.DrawVLine(7, 2, 4, '│')
	for y := 2; y < 6; y++ {
		if s.Get(7, y) != '│' {
			t.Errorf("DrawVLine: expected '│' at (7, %d)", y)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')

	s.Resize(20, 15)

	if s.Width() != 20 || s.Height() != 15 {
		t.Errorf("Resize: got %dx%d, expected 20x15", s.Width(), s.Height())
	}

	// Content should be preserved
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve content")
	}

	// Shrinking clips content
	s.Resize(5, 5)
	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("Resize: got %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve content within new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	str := s.String()
	lines := strings.Split(str, "\n")

	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "A  " {
		t.Errorf("Row 0 = %q, expected %q", lines[0], "A  ")
	}
	if lines[1] != "  B" {
		t.Errorf("Row 1 = %q, expected %q", lines[1], "  B")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "abcd")

	if s.Row(1) != "abcd" {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "abcd")
	}
	if s.Row(5) != "    " {
		t.Errorf("Out of bounds Row should be all spaces, got %q", s.Row(5))
	}
}
