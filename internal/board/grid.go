package board

import (
	"fmt"
	"strings"
)

// Grid is a rectangular store of cells with bounds-checked access.
// Cells are stored in row-major order: index = row*width + col.
// Dimensions are fixed for the lifetime of the grid.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid with the given dimensions, all cells empty.
// Returns ErrInvalidConfig if either dimension is non-positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if the position is within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Get returns the cell at the given position.
// Returns ErrOutOfBounds if the position is outside the grid.
func (g *Grid) Get(p Pos) (Cell, error) {
	if !g.InBounds(p) {
		return Empty(), fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.at(p.Row, p.Col), nil
}

// Set stores the cell at the given position.
// Returns ErrOutOfBounds if the position is outside the grid.
func (g *Grid) Set(p Pos, c Cell) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}
	g.setAt(p.Row, p.Col, c)
	return nil
}

// at returns the cell at (row, col) without a bounds check.
// Callers must have validated bounds.
func (g *Grid) at(row, col int) Cell {
	return g.cells[row*g.width+col]
}

// setAt stores the cell at (row, col) without a bounds check.
func (g *Grid) setAt(row, col int, c Cell) {
	g.cells[row*g.width+col] = c
}

// swap exchanges the cells at two in-bounds positions.
func (g *Grid) swap(a, b Pos) {
	ca, cb := g.at(a.Row, a.Col), g.at(b.Row, b.Col)
	g.setAt(a.Row, a.Col, cb)
	g.setAt(b.Row, b.Col, ca)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, c := range g.cells {
		if c.Filled {
			count++
		}
	}
	return count
}

// String returns a textual dump of the grid with rows delimited by newlines.
// Empty cells render as '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := g.at(row, col)
			if c.Filled {
				fmt.Fprintf(&sb, "%3d", c.Icon)
			} else {
				sb.WriteString("  .")
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
