package game

import (
	"fmt"

	"github.com/akulikov/salvo/internal/core"
)

// Board glyphs. Each cell is drawn three columns wide with the glyph in the
// middle, under a header row of column indices and next to a row gutter.
const (
	GlyphEmpty = '□'
	GlyphShip  = '■'
	GlyphHit   = '●'
	GlyphMiss  = '·'
)

// Rendered board dimensions in screen cells.
const (
	BoardViewWidth  = 3 + 3*BoardSize // row gutter + cells
	BoardViewHeight = 1 + BoardSize   // header + rows
)

// RenderBoard draws a board into dst with its top-left corner at (x, y).
// With hideShips set, empty and ship cells are drawn blank (the opponent's
// view); hits and misses are always shown. Rendering is a pure function of
// the grid state and the flag.
func RenderBoard(dst *core.Screen, b *Board, x, y int, hideShips bool) {
	for col := 0; col < BoardSize; col++ {
		dst.DrawText(x+3+3*col, y, fmt.Sprintf(" %d ", col))
	}
	for row := 0; row < BoardSize; row++ {
		dst.DrawText(x, y+1+row, fmt.Sprintf("%2d ", row))
		for col := 0; col < BoardSize; col++ {
			r, c := cellGlyph(b.At(row, col), hideShips)
			dst.SetCell(x+3+3*col+1, y+1+row, r, c)
		}
	}
}

// cellGlyph maps a cell state to its glyph and color.
func cellGlyph(state CellState, hideShips bool) (rune, core.Color) {
	switch state {
	case Empty:
		if hideShips {
			return ' ', core.ColorDefault
		}
		return GlyphEmpty, core.ColorDefault
	case Ship:
		if hideShips {
			return ' ', core.ColorDefault
		}
		return GlyphShip, core.ColorDefault
	case Hit:
		return GlyphHit, core.ColorRed
	case Miss:
		return GlyphMiss, core.ColorCyan
	default:
		return '?', core.ColorDefault
	}
}
