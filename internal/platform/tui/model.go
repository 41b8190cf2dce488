// Package tui provides the Bubble Tea terminal UI for the gemcrush board
// game: the interactive board screen, the menu and scoreboard, and the
// SSH-facing session flow.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkozyrev/gemcrush/internal/board"
	"github.com/vkozyrev/gemcrush/internal/config"
	"github.com/vkozyrev/gemcrush/internal/generator"
	"github.com/vkozyrev/gemcrush/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// GameModel is the Bubble Tea model for one board session. Unlike a
// tick-driven arcade loop, the board only changes in response to input,
// so the model is purely event-driven.
type GameModel struct {
	game     *board.Game
	cfg      config.GameConfig
	store    *storage.Store
	boardKey string

	cursor   board.Pos
	selected *board.Pos

	moves     int
	highScore int
	status    string

	gameOver   bool
	scoreSaved bool

	keys GameKeyMap
	help help.Model

	width  int
	height int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a board model for the given configuration.
// A zero seed lets the generator pick a time-based one.
func NewGameModel(cfg config.GameConfig, store *storage.Store, seed int64) (GameModel, error) {
	gen := generator.NewBasic(cfg.Board.IconTypes, seed)
	game, err := board.New(cfg.Board.Width, cfg.Board.Height, gen)
	if err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		game:     game,
		cfg:      cfg,
		store:    store,
		boardKey: storage.BoardKey(cfg.Board.Width, cfg.Board.Height, cfg.Board.IconTypes),
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		status:   "Select a jewel, then an adjacent one to swap.",
	}
	m.loadHighScore()
	m.checkGameOver()

	return m, nil
}

// loadHighScore fetches the stored best for this board profile.
func (m *GameModel) loadHighScore() {
	if m.store == nil {
		return
	}
	if high, err := m.store.HighScore(m.boardKey); err == nil {
		m.highScore = high
	}
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for cursor movement and swaps.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.selected != nil {
			m.selected = nil
			m.status = "Selection cleared."
			return m, nil
		}
		// The session model intercepts this and swaps back to the menu;
		// standalone runs just exit.
		m.backToMenu = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Select):
		m.handleSelect()
	}

	return m, nil
}

// moveCursor shifts the cursor, clamped to the board.
func (m *GameModel) moveCursor(dr, dc int) {
	row := m.cursor.Row + dr
	col := m.cursor.Col + dc
	if row < 0 {
		row = 0
	}
	if row >= m.game.Height() {
		row = m.game.Height() - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= m.game.Width() {
		col = m.game.Width() - 1
	}
	m.cursor = board.P(row, col)
}

// handleSelect marks the cursor cell or attempts a swap with the
// previously marked cell.
func (m *GameModel) handleSelect() {
	if m.gameOver {
		return
	}

	if m.selected == nil {
		sel := m.cursor
		m.selected = &sel
		m.status = "Now pick an adjacent jewel to swap with."
		return
	}

	if *m.selected == m.cursor {
		m.selected = nil
		m.status = "Selection cleared."
		return
	}

	if !m.selected.Adjacent(m.cursor) {
		sel := m.cursor
		m.selected = &sel
		m.status = "Not adjacent; selection moved."
		return
	}

	before := m.game.Score()
	if !m.game.Select(*m.selected, m.cursor) {
		m.selected = nil
		m.status = "That swap makes no run."
		return
	}

	m.selected = nil
	m.moves++
	points := m.game.Score() - before
	steps := len(m.game.LastCascade())
	if steps > 1 {
		m.status = fmt.Sprintf("+%d points over a %d-step cascade!", points, steps)
	} else {
		m.status = fmt.Sprintf("+%d points.", points)
	}

	if m.game.Score() > m.highScore {
		m.highScore = m.game.Score()
	}

	m.checkGameOver()
}

// checkGameOver probes for remaining moves and records the score once
// the board is dead.
func (m *GameModel) checkGameOver() {
	if m.game.HasMoves() {
		return
	}
	m.gameOver = true
	m.saveScore()
}

// saveScore persists the finished session, once.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.store == nil || m.game.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveScore(m.boardKey, m.game.Score(), m.moves)
	m.scoreSaved = true
}

// restart begins a fresh board with a new time-based seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	fresh, err := NewGameModel(m.cfg, m.store, time.Now().UnixNano())
	if err != nil {
		m.status = fmt.Sprintf("Restart failed: %v", err)
		return m, nil
	}
	fresh.width = m.width
	fresh.height = m.height
	fresh.help = m.help
	fresh.status = "New board."
	return fresh, nil
}

// View renders the board screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := fmt.Sprintf("GEMCRUSH  score %d  best %d  moves %d",
		m.game.Score(), m.highScore, m.moves)
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(renderBoard(m.game, m.cursor, m.selected))
	b.WriteString("\n")

	if m.gameOver {
		b.WriteString(gameOverStyle.Render("No moves left. Press r for a new board, esc for menu."))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone board session, bypassing the menu.
func Run(cfg config.GameConfig, store *storage.Store, seed int64) error {
	model, err := NewGameModel(cfg, store, seed)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
