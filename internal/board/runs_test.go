package board

import "testing"

// mustGrid builds a grid from an icon layout; -1 marks an empty cell.
func mustGrid(t *testing.T, layout [][]int) *Grid {
	t.Helper()
	g, err := NewGrid(len(layout[0]), len(layout))
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	for row, line := range layout {
		for col, v := range line {
			if v < 0 {
				continue
			}
			if err := g.Set(P(row, col), Occupied(Icon(v))); err != nil {
				t.Fatalf("Set(%d,%d) failed: %v", row, col, err)
			}
		}
	}
	return g
}

func TestRunScore(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{2, 0},
		{3, BaseScore},
		{4, 2 * BaseScore},
		{5, 4 * BaseScore},
		{6, 8 * BaseScore},
	}

	for _, tt := range tests {
		if got := runScore(tt.length); got != tt.want {
			t.Errorf("runScore(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestFindRunsDetection(t *testing.T) {
	tests := []struct {
		name      string
		layout    [][]int
		wantCells int
		wantScore int
	}{
		{
			name: "no runs",
			layout: [][]int{
				{0, 1, 0},
				{1, 0, 1},
				{1, 1, 0},
			},
			wantCells: 0,
			wantScore: 0,
		},
		{
			name: "horizontal run of three",
			layout: [][]int{
				{2, 2, 2},
				{0, 1, 0},
				{1, 0, 1},
			},
			wantCells: 3,
			wantScore: BaseScore,
		},
		{
			name: "vertical run of three",
			layout: [][]int{
				{2, 1, 0},
				{2, 0, 1},
				{2, 1, 0},
			},
			wantCells: 3,
			wantScore: BaseScore,
		},
		{
			name: "run of four doubles",
			layout: [][]int{
				{3, 3, 3, 3},
				{0, 1, 0, 1},
				{1, 0, 1, 0},
			},
			wantCells: 4,
			wantScore: 2 * BaseScore,
		},
		{
			name: "two disjoint runs",
			layout: [][]int{
				{2, 2, 2, 0},
				{0, 1, 0, 1},
				{4, 4, 4, 0},
			},
			wantCells: 6,
			wantScore: 2 * BaseScore,
		},
		{
			name: "empty cells break a run",
			layout: [][]int{
				{2, -1, 2, 2},
				{0, 1, 0, 1},
				{1, 0, 1, 0},
			},
			wantCells: 0,
			wantScore: 0,
		},
		{
			name: "crossing runs score per run",
			layout: [][]int{
				{1, 5, 0},
				{5, 5, 5},
				{0, 5, 1},
			},
			wantCells: 5,
			wantScore: 2 * BaseScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.layout)
			matched, points := findRuns(g, false)

			if len(matched) != tt.wantCells {
				t.Errorf("matched cells = %d, want %d", len(matched), tt.wantCells)
			}
			if points != tt.wantScore {
				t.Errorf("points = %d, want %d", points, tt.wantScore)
			}
		})
	}
}

func TestFindRunsEachPositionOnce(t *testing.T) {
	// The center of the cross belongs to both a row run and a column run but
	// must appear only once in the output.
	g := mustGrid(t, [][]int{
		{1, 5, 0},
		{5, 5, 5},
		{0, 5, 1},
	})

	matched, _ := findRuns(g, false)
	seen := make(map[Pos]bool)
	for _, c := range matched {
		p := P(c.Row, c.Col)
		if seen[p] {
			t.Errorf("position %v reported more than once", p)
		}
		seen[p] = true
	}
}

func TestFindRunsProbeLeavesGridIntact(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2, 2},
		{0, 1, 0},
		{1, 0, 1},
	})
	before := g.Clone()

	findRuns(g, false)

	if !g.Equal(before) {
		t.Error("probe with mark=false must not modify the grid")
	}
}

func TestFindRunsMarkClearsCells(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2, 2},
		{0, 1, 0},
		{1, 0, 1},
	})

	matched, points := findRuns(g, true)

	if len(matched) != 3 || points != BaseScore {
		t.Fatalf("matched = %d cells, %d points, want 3 cells, %d points", len(matched), points, BaseScore)
	}
	for col := 0; col < 3; col++ {
		c, _ := g.Get(P(0, col))
		if c.Filled {
			t.Errorf("cell (0,%d) should be empty after mark", col)
		}
	}
	if g.FilledCount() != 6 {
		t.Errorf("FilledCount = %d, want 6", g.FilledCount())
	}
}
