package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkozyrev/gemcrush/internal/board"
)

// iconGlyphs are the jewel shapes, indexed by icon modulo the palette size.
var iconGlyphs = []rune{'●', '◆', '■', '▲', '★', '♥', '◉', '✚'}

// iconStyles maps icon indexes to lipgloss foreground styles.
// Uses the 256-color palette so the board reads on dark and light terminals.
var iconStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // bright red
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // bright green
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),  // bright blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")),  // bright yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")),  // bright magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")),  // bright cyan
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
	lipgloss.NewStyle().Foreground(lipgloss.Color("15")),  // bright white
}

var (
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCellStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("57")).
				Bold(true)
)

// glyphFor returns the rune and style for an icon.
func glyphFor(ic board.Icon) (rune, lipgloss.Style) {
	i := int(ic) % len(iconGlyphs)
	if i < 0 {
		i = 0
	}
	return iconGlyphs[i], iconStyles[i%len(iconStyles)]
}

// renderBoard draws the grid with the cursor bracketed and the selected
// cell highlighted, framed in a rounded border.
func renderBoard(g *board.Game, cursor board.Pos, selected *board.Pos) string {
	var sb strings.Builder

	for row := 0; row < g.Height(); row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < g.Width(); col++ {
			p := board.P(row, col)
			ic, err := g.Icon(p)
			if err != nil {
				sb.WriteString(" ? ")
				continue
			}

			glyph, style := glyphFor(ic)
			cell := fmt.Sprintf(" %c ", glyph)
			if p == cursor {
				cell = fmt.Sprintf("[%c]", glyph)
			}
			if selected != nil && p == *selected {
				style = style.Inherit(selectedCellStyle)
			}
			sb.WriteString(style.Render(cell))
		}
	}

	return boardFrameStyle.Render(sb.String())
}

// centerText centers a single line within the given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
