package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akulikov/salvo/internal/core"
	"github.com/akulikov/salvo/internal/game"
	"github.com/akulikov/salvo/internal/storage"
)

// Player-facing messages. These are the whole error taxonomy: invalid shot
// text re-prompts, everything else is fatal upstream.
const (
	msgPrompt       = "Enter coordinates to fire (row, col): "
	msgContinue     = "Press Enter to continue..."
	msgPlayerHit    = "You hit a ship!"
	msgPlayerMiss   = "You missed!"
	msgOpponentHit  = "Opponent hit one of your ships!"
	msgOpponentMiss = "Opponent missed!"
	msgVictory      = "Congratulations! You sank all of your opponent's ships!"
	msgDefeat       = "Oh no! All of your ships have been sunk!"
	msgInvalidShot  = "Invalid input. Please enter row and column numbers separated by a comma."
	msgExit         = "Press Enter to exit."
)

// Model is the Bubble Tea model for one match against the computer.
type Model struct {
	match        *game.Match
	store        *storage.Store
	config       core.RuntimeConfig
	playerView   *core.Screen
	opponentView *core.Screen
	input        textinput.Model
	keys         KeyMap
	help         help.Model
	inputErr     bool
	resultSaved  bool
	quitting     bool
}

// NewModel creates a match model. A zero seed is replaced with the clock.
func NewModel(store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "row, col"
	ti.CharLimit = 16
	ti.Width = 12
	ti.Prompt = ""
	ti.Focus()

	h := help.New()
	h.ShowAll = false

	return Model{
		match:        game.NewMatch(rand.New(rand.NewSource(cfg.Seed))),
		store:        store,
		config:       cfg,
		playerView:   core.NewScreen(game.BoardViewWidth, game.BoardViewHeight),
		opponentView: core.NewScreen(game.BoardViewWidth, game.BoardViewHeight),
		input:        ti,
		keys:         DefaultKeyMap(),
		help:         h,
	}
}

// Init starts the cursor blink for the coordinate prompt.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and drives the match state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m.updateInput(msg)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Fire) {
		return m.handleEnter()
	}

	return m.updateInput(msg)
}

// handleEnter advances whichever gate is waiting: a shot while aiming, an
// acknowledgment while a report is pending, exit once the match is over.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.match.Phase() {
	case game.PhaseAim:
		row, col, err := game.ParseShot(m.input.Value())
		if err != nil {
			m.inputErr = true
			m.input.Reset()
			return m, nil
		}
		m.inputErr = false
		m.input.Reset()
		m.input.Blur()
		m.match.PlayerFire(row, col)

	case game.PhasePlayerShot, game.PhaseOpponentShot:
		m.match.Advance()
		if m.match.Over() {
			m.saveResult()
		} else if m.match.Phase() == game.PhaseAim {
			m.input.Focus()
			return m, textinput.Blink
		}

	case game.PhaseVictory, game.PhaseDefeat:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// updateInput forwards messages to the coordinate prompt while aiming.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.match.Phase() != game.PhaseAim {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// saveResult records the finished match, once, best-effort.
func (m *Model) saveResult() {
	if m.resultSaved || m.store == nil {
		return
	}
	outcome := storage.OutcomeLoss
	if m.match.Phase() == game.PhaseVictory {
		outcome = storage.OutcomeWin
	}
	//nolint:errcheck // Best-effort save, the result screen shows regardless
	m.store.SaveResult(storage.MatchResult{
		Outcome:       outcome,
		PlayerShots:   m.match.PlayerShots(),
		OpponentShots: m.match.OpponentShots(),
		DurationSecs:  int(m.match.Duration().Seconds()),
	})
	m.resultSaved = true
}

// View renders the full frame: both boards, the pending report or prompt,
// and the help bar. Bubble Tea repaints the alternate screen each frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headingStyle.Render("Your Board:"))
	b.WriteString("\n")
	m.playerView.Clear()
	game.RenderBoard(m.playerView, m.match.PlayerBoard(), 0, 0, false)
	b.WriteString(RenderScreen(m.playerView))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Opponent's Board:"))
	b.WriteString("\n")
	m.opponentView.Clear()
	game.RenderBoard(m.opponentView, m.match.OpponentBoard(), 0, 0, true)
	b.WriteString(RenderScreen(m.opponentView))
	b.WriteString("\n")

	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statusView renders the phase-specific lines under the boards.
func (m Model) statusView() string {
	var b strings.Builder

	switch m.match.Phase() {
	case game.PhaseAim:
		if m.inputErr {
			b.WriteString(errorStyle.Render(msgInvalidShot))
			b.WriteString("\n")
		}
		b.WriteString(promptStyle.Render(msgPrompt))
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case game.PhasePlayerShot:
		b.WriteString(shotLine(m.match.LastPlayerShot(), msgPlayerHit, msgPlayerMiss))
		b.WriteString("\n")
		b.WriteString(msgContinue)
		b.WriteString("\n")

	case game.PhaseOpponentShot:
		b.WriteString(shotLine(m.match.LastOpponentShot(), msgOpponentHit, msgOpponentMiss))
		b.WriteString("\n")
		b.WriteString(msgContinue)
		b.WriteString("\n")

	case game.PhaseVictory:
		b.WriteString(victoryStyle.Render(msgVictory))
		b.WriteString("\n")
		b.WriteString(msgExit)
		b.WriteString("\n")

	case game.PhaseDefeat:
		b.WriteString(defeatStyle.Render(msgDefeat))
		b.WriteString("\n")
		b.WriteString(msgExit)
		b.WriteString("\n")
	}

	return b.String()
}

// shotLine styles a shot report: hits red, misses cyan.
func shotLine(s game.Shot, hitMsg, missMsg string) string {
	if s.Result == game.Hit {
		return hitStyle.Render(hitMsg)
	}
	return missStyle.Render(missMsg)
}

// Run starts a match in the local terminal and blocks until it ends.
func Run(store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
