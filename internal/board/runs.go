package board

// findRuns scans every row and every column of the grid for maximal
// contiguous sequences of equal occupied icons with length >= MinRunLength.
// The returned changes cover the union of all such positions, each grid
// position at most once, ordered row-major. The points total counts every
// run segment separately: a cell sitting at the crossing of a horizontal and
// a vertical run contributes to both, since each run earns points, not each
// cell.
//
// When mark is true, every matched cell is set to empty. When false the grid
// is left untouched and the call is a pure existence/enumeration probe.
func findRuns(g *Grid, mark bool) (matched []Change, points int) {
	hit := make([]bool, len(g.cells))

	// Horizontal runs.
	for row := 0; row < g.height; row++ {
		points += scanLine(g, hit, g.width, func(i int) (int, int) {
			return row, i
		})
	}

	// Vertical runs.
	for col := 0; col < g.width; col++ {
		points += scanLine(g, hit, g.height, func(i int) (int, int) {
			return i, col
		})
	}

	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if !hit[row*g.width+col] {
				continue
			}
			matched = append(matched, Change{
				Row:     row,
				Col:     col,
				Icon:    g.at(row, col).Icon,
				PrevRow: row,
			})
		}
	}

	if mark {
		for _, c := range matched {
			g.setAt(c.Row, c.Col, Empty())
		}
	}

	return matched, points
}

// scanLine walks one row or column, identified by the index-to-coordinate
// mapping, marks every position belonging to a qualifying run in hit, and
// returns the points for the runs found on this line.
func scanLine(g *Grid, hit []bool, length int, coord func(i int) (row, col int)) int {
	points := 0
	start := 0
	for start < length {
		row, col := coord(start)
		first := g.at(row, col)
		if !first.Filled {
			start++
			continue
		}

		end := start + 1
		for end < length {
			r, c := coord(end)
			cell := g.at(r, c)
			if !cell.Filled || cell.Icon != first.Icon {
				break
			}
			end++
		}

		if runLen := end - start; runLen >= MinRunLength {
			points += runScore(runLen)
			for i := start; i < end; i++ {
				r, c := coord(i)
				hit[r*g.width+c] = true
			}
		}
		start = end
	}
	return points
}

// hasRuns reports whether the grid contains any run, without modifying it.
func hasRuns(g *Grid) bool {
	matched, _ := findRuns(g, false)
	return len(matched) > 0
}
