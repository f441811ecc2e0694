// Package game implements the battleship engine: the board, the fleet,
// the match state machine and the shot parser. It is pure logic with no
// terminal dependencies; the platform layer drives it and renders it.
package game

import "math/rand"

// BoardSize is the side length of the square grid.
const BoardSize = 10

// FleetSizes is the fixed fleet placed on each board at setup.
// 5+4+3+3+2 = 17 occupied cells out of 100, so random placement
// always terminates.
var FleetSizes = []int{5, 4, 3, 3, 2}

// CellState is the state of a single board cell.
// Cells transition monotonically: Empty->Miss or Ship->Hit.
type CellState uint8

const (
	Empty CellState = iota
	Ship
	Hit
	Miss
)

// String returns a human-readable name for the cell state.
func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case Ship:
		return "ship"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return "unknown"
	}
}

// Coord is a (row, column) board coordinate.
type Coord struct {
	Row, Col int
}

// Board is a fixed-size grid of cell states plus the ordered list of every
// coordinate that holds a ship segment. The ship list exists only to
// evaluate game over; placement collisions are checked against the grid.
type Board struct {
	grid  [BoardSize][BoardSize]CellState
	ships []Coord
}

// NewBoard returns a board with all cells empty and no ships.
func NewBoard() *Board {
	return &Board{}
}

// At returns the state of the cell at (row, col).
// Coordinates must be within [0, BoardSize).
func (b *Board) At(row, col int) CellState {
	return b.grid[row][col]
}

// Ships returns the coordinates of every placed ship segment, in placement
// order. The returned slice is shared; callers must not modify it.
func (b *Board) Ships() []Coord {
	return b.ships
}

// PlaceShip places a ship of the given size at a uniformly random position
// and orientation, retrying until the placement fits. With the fixed fleet
// on a 10x10 grid a free spot always exists, so the loop terminates.
func (b *Board) PlaceShip(rng *rand.Rand, size int) {
	for {
		row := rng.Intn(BoardSize)
		col := rng.Intn(BoardSize)
		horizontal := rng.Intn(2) == 0
		if !b.CanPlaceShip(row, col, size, horizontal) {
			continue
		}
		for i := 0; i < size; i++ {
			r, c := row, col
			if horizontal {
				c += i
			} else {
				r += i
			}
			b.grid[r][c] = Ship
			b.ships = append(b.ships, Coord{Row: r, Col: c})
		}
		return
	}
}

// CanPlaceShip reports whether a ship of the given size starting at
// (row, col) in the given orientation stays on the board and covers only
// empty cells.
func (b *Board) CanPlaceShip(row, col, size int, horizontal bool) bool {
	if horizontal {
		if col+size > BoardSize {
			return false
		}
		for i := 0; i < size; i++ {
			if b.grid[row][col+i] != Empty {
				return false
			}
		}
		return true
	}

	if row+size > BoardSize {
		return false
	}
	for i := 0; i < size; i++ {
		if b.grid[row+i][col] != Empty {
			return false
		}
	}
	return true
}

// Fire resolves a shot at (row, col) and returns the outcome: an empty cell
// becomes Miss, a ship cell becomes Hit, and a previously resolved cell is
// reported as Miss without changing state. Coordinates must be validated by
// the caller; Fire does no bounds checking.
func (b *Board) Fire(row, col int) CellState {
	switch b.grid[row][col] {
	case Empty:
		b.grid[row][col] = Miss
		return Miss
	case Ship:
		b.grid[row][col] = Hit
		return Hit
	default:
		return Miss
	}
}

// IsGameOver reports whether every ship segment has been hit.
// A board with no ships is trivially over.
func (b *Board) IsGameOver() bool {
	for _, s := range b.ships {
		if b.grid[s.Row][s.Col] != Hit {
			return false
		}
	}
	return true
}
