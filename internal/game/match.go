package game

import (
	"math/rand"
	"time"
)

// Phase is the current step of the turn cycle.
type Phase int

const (
	// PhaseAim waits for the player to pick a target.
	PhaseAim Phase = iota
	// PhasePlayerShot shows the player's shot result, waiting for an
	// acknowledgment before the victory check.
	PhasePlayerShot
	// PhaseOpponentShot shows the opponent's shot result, waiting for an
	// acknowledgment before the defeat check.
	PhaseOpponentShot
	// PhaseVictory is terminal: every opponent ship segment is hit.
	PhaseVictory
	// PhaseDefeat is terminal: every player ship segment is hit.
	PhaseDefeat
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAim:
		return "aim"
	case PhasePlayerShot:
		return "player_shot"
	case PhaseOpponentShot:
		return "opponent_shot"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Shot records one resolved shot.
type Shot struct {
	Row, Col int
	Result   CellState // Hit or Miss
}

// Match is the turn-cycle state machine for one game: the player's and the
// opponent's boards plus whose report is pending. It is pure and
// deterministic under the injected rng; the platform layer drives it with
// PlayerFire and Advance and renders whatever state it exposes.
type Match struct {
	player   *Board
	opponent *Board
	rng      *rand.Rand
	phase    Phase

	lastPlayerShot   Shot
	lastOpponentShot Shot
	playerShots      int
	opponentShots    int
	startedAt        time.Time
}

// NewMatch creates a match with the fixed fleet randomly placed on both
// boards using the given rng.
func NewMatch(rng *rand.Rand) *Match {
	m := &Match{
		player:    NewBoard(),
		opponent:  NewBoard(),
		rng:       rng,
		phase:     PhaseAim,
		startedAt: time.Now(),
	}
	for _, size := range FleetSizes {
		m.player.PlaceShip(rng, size)
	}
	for _, size := range FleetSizes {
		m.opponent.PlaceShip(rng, size)
	}
	return m
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// PlayerBoard returns the player's board (own ships, opponent shots land here).
func (m *Match) PlayerBoard() *Board {
	return m.player
}

// OpponentBoard returns the opponent's board (player shots land here).
func (m *Match) OpponentBoard() *Board {
	return m.opponent
}

// LastPlayerShot returns the player's most recent shot.
// Only meaningful once at least one shot has been fired.
func (m *Match) LastPlayerShot() Shot {
	return m.lastPlayerShot
}

// LastOpponentShot returns the opponent's most recent shot.
func (m *Match) LastOpponentShot() Shot {
	return m.lastOpponentShot
}

// PlayerShots returns how many shots the player has fired.
func (m *Match) PlayerShots() int {
	return m.playerShots
}

// OpponentShots returns how many shots the opponent has fired.
func (m *Match) OpponentShots() int {
	return m.opponentShots
}

// Duration returns how long the match has been running.
func (m *Match) Duration() time.Duration {
	return time.Since(m.startedAt)
}

// Over reports whether the match has reached a terminal phase.
func (m *Match) Over() bool {
	return m.phase == PhaseVictory || m.phase == PhaseDefeat
}

// PlayerFire resolves the player's shot at the opponent's board and moves
// to the report phase. Coordinates must already be validated; only legal
// in PhaseAim.
func (m *Match) PlayerFire(row, col int) Shot {
	if m.phase != PhaseAim {
		return m.lastPlayerShot
	}
	result := m.opponent.Fire(row, col)
	m.lastPlayerShot = Shot{Row: row, Col: col, Result: result}
	m.playerShots++
	m.phase = PhasePlayerShot
	return m.lastPlayerShot
}

// Advance acknowledges the pending shot report and steps the turn cycle:
// after the player's shot it runs the victory check and, failing that,
// fires the opponent's random shot; after the opponent's shot it runs the
// defeat check and, failing that, returns to aiming. No-op in other phases.
func (m *Match) Advance() {
	switch m.phase {
	case PhasePlayerShot:
		if m.opponent.IsGameOver() {
			m.phase = PhaseVictory
			return
		}
		m.opponentFire()
	case PhaseOpponentShot:
		if m.player.IsGameOver() {
			m.phase = PhaseDefeat
			return
		}
		m.phase = PhaseAim
	}
}

// opponentFire picks a uniformly random cell, independent of every prior
// shot. Repeats are allowed and resolve as misses.
func (m *Match) opponentFire() {
	row := m.rng.Intn(BoardSize)
	col := m.rng.Intn(BoardSize)
	result := m.player.Fire(row, col)
	m.lastOpponentShot = Shot{Row: row, Col: col, Result: result}
	m.opponentShots++
	m.phase = PhaseOpponentShot
}
