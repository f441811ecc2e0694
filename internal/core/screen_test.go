package core

import (
	"strings"
	"testing"
)

func TestNewScreenClear(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("Screen size = %dx%d, want 10x5", s.Width(), s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Cell (%d,%d) should be a blank default cell, got %q/%v", x, y, cell.Rune, cell.Color)
			}
		}
	}
}

func TestSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3,2) = %q, want 'x'", got)
	}
	if got := s.GetCell(3, 2).Color; got != ColorDefault {
		t.Errorf("Set should leave the default color, got %v", got)
	}

	s.SetCell(4, 2, '●', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '●' || cell.Color != ColorRed {
		t.Errorf("SetCell(4,2) = %q/%v, want red ●", cell.Rune, cell.Color)
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// None of these should panic or alter the buffer.
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Out-of-bounds Get should return space, got %q", got)
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Out-of-bounds writes must not alter the buffer")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q, want %q", got, "  hello   ")
	}

	// Clipped at the right edge.
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Clipped row = %q, want %q", got, "        ab")
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(0, 0, "hit", ColorRed)

	for i, r := range "hit" {
		cell := s.GetCell(i, 0)
		if cell.Rune != r || cell.Color != ColorRed {
			t.Errorf("Cell %d = %q/%v, want red %q", i, cell.Rune, cell.Color, r)
		}
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, 'x', ColorCyan)
	s.Set(9, 4, 'y')

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("Screen size after shrink = %dx%d, want 5x3", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 2)
	if cell.Rune != 'x' || cell.Color != ColorCyan {
		t.Errorf("Shrink should preserve in-range cells, got %q/%v", cell.Rune, cell.Color)
	}

	s.Resize(20, 10)
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("Grow should preserve content, got %q", got)
	}
	if got := s.Get(15, 8); got != ' ' {
		t.Errorf("New cells should be blank, got %q", got)
	}
}

func TestStringLayout(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(5); got != "    " {
		t.Errorf("Out-of-range Row should be blank, got %q", got)
	}
}
