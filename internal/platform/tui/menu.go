package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkozyrev/gemcrush/internal/config"
	"github.com/vkozyrev/gemcrush/internal/storage"
)

// MenuChoice identifies a menu entry.
type MenuChoice int

const (
	MenuChoicePlay MenuChoice = iota
	MenuChoiceScores
	MenuChoiceQuit
)

// menuItem is one selectable row in the menu.
type menuItem struct {
	choice MenuChoice
	title  string
	detail string
}

// MenuKeyMap defines the key bindings for the menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the session entry menu.
type MenuModel struct {
	items  []menuItem
	cursor int

	cfg   config.GameConfig
	store *storage.Store

	keys MenuKeyMap
	help help.Model

	width    int
	height   int
	quitting bool
	selected *MenuChoice
}

// NewMenuModel creates a menu for the given configuration.
func NewMenuModel(cfg config.GameConfig, store *storage.Store) MenuModel {
	boardDesc := fmt.Sprintf("%dx%d board, %d jewel types",
		cfg.Board.Width, cfg.Board.Height, cfg.Board.IconTypes)

	items := []menuItem{
		{choice: MenuChoicePlay, title: "New Game", detail: boardDesc},
		{choice: MenuChoiceScores, title: "High Scores", detail: "best sessions per board"},
		{choice: MenuChoiceQuit, title: "Quit", detail: ""},
	}

	return MenuModel{
		items: items,
		cfg:   cfg,
		store: store,
		keys:  DefaultMenuKeyMap(),
		help:  help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			choice := m.items[m.cursor].choice
			if choice == MenuChoiceQuit {
				m.quitting = true
				return m, tea.Quit
			}
			m.selected = &choice
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("GEMCRUSH"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("swap adjacent jewels, chase the cascade"))
	b.WriteString("\n\n")

	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}
		b.WriteString(style.Render(cursor + item.title))
		if item.detail != "" {
			b.WriteString(detailStyle.Render("  " + item.detail))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsQuitting returns true if the user chose to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Selected returns the chosen menu entry, or nil if none yet.
func (m MenuModel) Selected() *MenuChoice {
	return m.selected
}
