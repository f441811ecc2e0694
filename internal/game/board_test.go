package game

import (
	"math/rand"
	"testing"
)

func TestNewBoardEmpty(t *testing.T) {
	b := NewBoard()

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.At(row, col) != Empty {
				t.Fatalf("Cell (%d,%d) should be empty on a new board, got %v", row, col, b.At(row, col))
			}
		}
	}
	if len(b.Ships()) != 0 {
		t.Errorf("New board should have no ships, got %d", len(b.Ships()))
	}
}

func TestFleetPlacement(t *testing.T) {
	// Many seeds: the fleet must always occupy exactly 17 distinct cells,
	// each ship collinear and contiguous.
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := NewBoard()

		start := 0
		for _, size := range FleetSizes {
			b.PlaceShip(rng, size)

			segs := b.Ships()[start : start+size]
			start += size

			sameRow, sameCol := true, true
			for _, s := range segs {
				if s.Row != segs[0].Row {
					sameRow = false
				}
				if s.Col != segs[0].Col {
					sameCol = false
				}
			}
			if !sameRow && !sameCol {
				t.Fatalf("seed %d: ship of size %d not collinear: %v", seed, size, segs)
			}
			for i := 1; i < len(segs); i++ {
				dr := segs[i].Row - segs[i-1].Row
				dc := segs[i].Col - segs[i-1].Col
				if dr+dc != 1 || dr*dc != 0 {
					t.Fatalf("seed %d: ship of size %d not contiguous: %v", seed, size, segs)
				}
			}
		}

		if len(b.Ships()) != 17 {
			t.Fatalf("seed %d: fleet should occupy 17 cells, got %d", seed, len(b.Ships()))
		}

		seen := make(map[Coord]bool)
		shipCells := 0
		for _, s := range b.Ships() {
			if seen[s] {
				t.Fatalf("seed %d: ships overlap at (%d,%d)", seed, s.Row, s.Col)
			}
			seen[s] = true
			if b.At(s.Row, s.Col) != Ship {
				t.Fatalf("seed %d: ship coordinate (%d,%d) has state %v", seed, s.Row, s.Col, b.At(s.Row, s.Col))
			}
		}
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if b.At(row, col) == Ship {
					shipCells++
				}
			}
		}
		if shipCells != 17 {
			t.Fatalf("seed %d: grid holds %d ship cells, want 17", seed, shipCells)
		}
	}
}

func TestCanPlaceShipBounds(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name       string
		row, col   int
		size       int
		horizontal bool
		want       bool
	}{
		{"fits horizontally at edge", 0, 5, 5, true, true},
		{"overflows right edge", 0, 6, 5, true, false},
		{"fits vertically at edge", 5, 0, 5, false, true},
		{"overflows bottom edge", 6, 0, 5, false, false},
		{"single cell in corner", 9, 9, 1, true, true},
		{"full row", 3, 0, 10, true, true},
		{"row plus one", 3, 0, 11, true, false},
	}

	for _, tt := range tests {
		if got := b.CanPlaceShip(tt.row, tt.col, tt.size, tt.horizontal); got != tt.want {
			t.Errorf("%s: CanPlaceShip(%d,%d,%d,%v) = %v, want %v",
				tt.name, tt.row, tt.col, tt.size, tt.horizontal, got, tt.want)
		}
	}
}

func TestCanPlaceShipOverlap(t *testing.T) {
	b := NewBoard()
	b.grid[4][4] = Ship

	if b.CanPlaceShip(4, 2, 5, true) {
		t.Error("Horizontal run crossing an occupied cell should be rejected")
	}
	if b.CanPlaceShip(2, 4, 5, false) {
		t.Error("Vertical run crossing an occupied cell should be rejected")
	}
	if !b.CanPlaceShip(5, 0, 5, true) {
		t.Error("Run clear of occupied cells should be accepted")
	}

	// Any resolved cell blocks placement too, not just ships.
	b.grid[7][7] = Miss
	if b.CanPlaceShip(7, 5, 4, true) {
		t.Error("Run crossing a non-empty cell should be rejected")
	}
}

func TestFireTransitions(t *testing.T) {
	b := NewBoard()
	b.grid[2][3] = Ship
	b.ships = append(b.ships, Coord{Row: 2, Col: 3})

	if got := b.Fire(0, 0); got != Miss {
		t.Errorf("Firing at empty cell should report miss, got %v", got)
	}
	if b.At(0, 0) != Miss {
		t.Errorf("Empty cell should transition to miss, got %v", b.At(0, 0))
	}

	if got := b.Fire(2, 3); got != Hit {
		t.Errorf("Firing at ship cell should report hit, got %v", got)
	}
	if b.At(2, 3) != Hit {
		t.Errorf("Ship cell should transition to hit, got %v", b.At(2, 3))
	}

	// Re-firing resolved cells reports miss and changes nothing.
	if got := b.Fire(2, 3); got != Miss {
		t.Errorf("Re-firing at hit cell should report miss, got %v", got)
	}
	if b.At(2, 3) != Hit {
		t.Errorf("Hit cell must not change on re-fire, got %v", b.At(2, 3))
	}
	if got := b.Fire(0, 0); got != Miss {
		t.Errorf("Re-firing at miss cell should report miss, got %v", got)
	}
	if b.At(0, 0) != Miss {
		t.Errorf("Miss cell must not change on re-fire, got %v", b.At(0, 0))
	}
}

func TestIsGameOver(t *testing.T) {
	b := NewBoard()
	if !b.IsGameOver() {
		t.Error("Board with no ships is trivially over")
	}

	// Single 2-cell ship at (0,0)-(0,1).
	b.grid[0][0] = Ship
	b.grid[0][1] = Ship
	b.ships = []Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}

	if b.IsGameOver() {
		t.Error("Board with intact ship should not be over")
	}

	b.Fire(0, 0)
	if b.IsGameOver() {
		t.Error("Board with one of two segments hit should not be over")
	}

	b.Fire(0, 1)
	if !b.IsGameOver() {
		t.Error("Board with all segments hit should be over")
	}
}

func TestIsGameOverAfterSetup(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard()
	for _, size := range FleetSizes {
		b.PlaceShip(rng, size)
	}
	if b.IsGameOver() {
		t.Error("Freshly placed fleet should not be game over")
	}
}
