package board

// Step records what happened during one cascade iteration: the run cells
// that were removed, the icons that fell under gravity, the icons that
// entered from off-board, and the points the removed runs earned.
type Step struct {
	Removed   []Change
	Collapsed []Change
	Filled    []Change
	Points    int
}

// collapseColumn compacts all occupied cells of one column toward the bottom,
// preserving their relative order and leaving empties at the top. Icons whose
// row changed are reported with PrevRow set to their prior row; icons that
// did not move are not reported.
func collapseColumn(g *Grid, col int) []Change {
	var moved []Change

	write := g.height - 1
	for row := g.height - 1; row >= 0; row-- {
		cell := g.at(row, col)
		if !cell.Filled {
			continue
		}
		if write != row {
			g.setAt(write, col, cell)
			g.setAt(row, col, Empty())
			moved = append(moved, Change{
				Row:     write,
				Col:     col,
				Icon:    cell.Icon,
				PrevRow: row,
			})
		}
		write--
	}

	return moved
}

// fillColumn fills the empty cells at the top of one column with icons from
// the generator, top-down. Each new icon is reported with a negative PrevRow
// proportional to how far above the board it conceptually fell from.
func fillColumn(g *Grid, col int, gen Generator) []Change {
	var added []Change

	above := 0
	for row := 0; row < g.height; row++ {
		if g.at(row, col).Filled {
			break
		}
		above++
	}
	for row := above - 1; row >= 0; row-- {
		icon := gen.Generate()
		g.setAt(row, col, Occupied(icon))
		added = append(added, Change{
			Row:     row,
			Col:     col,
			Icon:    icon,
			PrevRow: row - above,
		})
	}

	return added
}

// resolve repeats {remove runs, collapse every column, fill every column}
// until no run remains. It returns one Step per iteration and the total
// points earned. The loop terminates because every iteration removes at
// least one run, and a refill only introduces a new run when freshly fallen
// icons happen to line up, which the next iteration consumes.
func resolve(g *Grid, gen Generator) ([]Step, int) {
	var steps []Step
	total := 0

	for {
		removed, points := findRuns(g, true)
		if len(removed) == 0 {
			break
		}

		step := Step{Removed: removed, Points: points}
		for col := 0; col < g.width; col++ {
			step.Collapsed = append(step.Collapsed, collapseColumn(g, col)...)
			step.Filled = append(step.Filled, fillColumn(g, col, gen)...)
		}
		total += points
		steps = append(steps, step)
	}

	return steps, total
}
