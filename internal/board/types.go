// Package board provides the core match-3 board engine: a rectangular grid of
// typed icons, swap-move validation, run detection, cascading resolution and
// scoring. This package is UI-agnostic and deterministic.
package board

import "fmt"

// Icon identifies a kind of jewel occupying a cell.
// Valid values are integers in [0, Generator.NumTypes()).
type Icon int

// Cell represents a single cell in the grid.
type Cell struct {
	Filled bool // Whether the cell contains an icon
	Icon   Icon // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Filled: false}
}

// Occupied returns a filled cell with the given icon.
func Occupied(ic Icon) Cell {
	return Cell{Filled: true, Icon: ic}
}

// Pos represents a position on the grid.
// Row increases downward, Col increases to the right.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Adjacent returns true if the two positions differ by exactly one step in
// one axis. Diagonal neighbors are not adjacent.
func (p Pos) Adjacent(other Pos) bool {
	dr := abs(p.Row - other.Row)
	dc := abs(p.Col - other.Col)
	return dr+dc == 1
}

// Change reports an icon observed at a position, typically after a removal,
// collapse or fill. PrevRow is the row the icon occupied before the operation;
// for icons that entered from off-board it is a negative offset proportional
// to how far above the grid the icon conceptually fell from. Changes are
// reports only and never feed back into the engine state.
type Change struct {
	Row     int
	Col     int
	Icon    Icon
	PrevRow int
}

// String returns a string representation of the change.
func (c Change) String() string {
	return fmt.Sprintf("(%d,%d)=%d<-row %d", c.Row, c.Col, c.Icon, c.PrevRow)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
