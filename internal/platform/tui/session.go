package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkozyrev/gemcrush/internal/config"
	"github.com/vkozyrev/gemcrush/internal/storage"
)

// sessionState identifies which screen a session is showing.
type sessionState int

const (
	stateMenu sessionState = iota
	stateGame
	stateScores
)

// SessionModel manages the full session flow: menu -> board -> scoreboard
// and back. It is the top-level model for SSH sessions and for the local
// menu mode.
type SessionModel struct {
	cfg   config.GameConfig
	store *storage.Store

	state      sessionState
	menu       MenuModel
	game       *GameModel
	scoreboard *ScoreboardModel

	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(cfg config.GameConfig, store *storage.Store, width, height int) SessionModel {
	return SessionModel{
		cfg:    cfg,
		store:  store,
		state:  stateMenu,
		menu:   NewMenuModel(cfg, store),
		width:  width,
		height: height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the menu is showing.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		switch *selected {
		case MenuChoicePlay:
			game, err := NewGameModel(m.cfg, m.store, time.Now().UnixNano())
			if err != nil {
				// Config was validated upstream, so this should not happen;
				// stay on the menu rather than crash the session.
				m.menu = NewMenuModel(m.cfg, m.store)
				return m, nil
			}
			game.width = m.width
			game.height = m.height
			m.game = &game
			m.state = stateGame
			return m, m.game.Init()

		case MenuChoiceScores:
			current := storage.BoardKey(m.cfg.Board.Width, m.cfg.Board.Height, m.cfg.Board.IconTypes)
			sb := NewScoreboardModel(m.store, current, m.width, m.height)
			m.scoreboard = &sb
			m.state = stateScores
			return m, m.scoreboard.Init()
		}
	}

	return m, cmd
}

// updateGame handles updates while a board is active.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.state = stateMenu
		m.game = nil
		m.menu = NewMenuModel(m.cfg, m.store)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScoreboard handles updates while the scoreboard is showing.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sbModel, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sbModel
	}

	if m.scoreboard.IsGoingBack() {
		m.state = stateMenu
		m.scoreboard = nil
		m.menu = NewMenuModel(m.cfg, m.store)
		return m, m.menu.Init()
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		if m.game != nil {
			return m.game.View()
		}
	case stateScores:
		if m.scoreboard != nil {
			return m.scoreboard.View()
		}
	}
	return m.menu.View()
}

// RunSession starts the full menu-driven session locally.
func RunSession(cfg config.GameConfig, store *storage.Store, width, height int) error {
	model := NewSessionModel(cfg, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
