package board

import "testing"

// scriptGen is a test generator with a fixed layout for Initialize and a
// scripted refill queue for Generate. Once the queue runs dry it cycles
// through the icon types so fills stay deterministic.
type scriptGen struct {
	types  int
	layout [][]int
	refill []Icon
	next   int
}

func (s *scriptGen) Generate() Icon {
	if s.next < len(s.refill) {
		ic := s.refill[s.next]
		s.next++
		return ic
	}
	ic := Icon(s.next % s.types)
	s.next++
	return ic
}

func (s *scriptGen) NumTypes() int {
	return s.types
}

func (s *scriptGen) Initialize(g *Grid, randIcons bool) {
	for row, line := range s.layout {
		for col, v := range line {
			//nolint:errcheck // layout positions are in bounds by construction
			g.Set(P(row, col), Occupied(Icon(v)))
		}
	}
}

func TestCollapseColumn(t *testing.T) {
	// Column 0 from top: empty, 3, empty, 7 -> should become empty, empty, 3, 7.
	g := mustGrid(t, [][]int{
		{-1, 0},
		{3, 1},
		{-1, 0},
		{7, 1},
	})

	moved := collapseColumn(g, 0)

	if len(moved) != 1 {
		t.Fatalf("moved = %d cells, want 1 (only icon 3 changes row)", len(moved))
	}
	m := moved[0]
	if m.Row != 2 || m.Col != 0 || m.Icon != 3 || m.PrevRow != 1 {
		t.Errorf("moved cell = %+v, want row 2, col 0, icon 3, prevRow 1", m)
	}

	wantCol := []struct {
		filled bool
		icon   Icon
	}{{false, 0}, {false, 0}, {true, 3}, {true, 7}}
	for row, want := range wantCol {
		c, _ := g.Get(P(row, 0))
		if c.Filled != want.filled || (c.Filled && c.Icon != want.icon) {
			t.Errorf("cell (%d,0) = %+v, want %+v", row, c, want)
		}
	}
}

func TestCollapseColumnPreservesOrder(t *testing.T) {
	g := mustGrid(t, [][]int{
		{4, 0},
		{-1, 1},
		{5, 0},
		{-1, 1},
		{6, 0},
	})

	collapseColumn(g, 0)

	want := []Icon{4, 5, 6}
	for i, ic := range want {
		c, _ := g.Get(P(2+i, 0))
		if !c.Filled || c.Icon != ic {
			t.Errorf("cell (%d,0) = %+v, want icon %d", 2+i, c, ic)
		}
	}
}

func TestFillColumn(t *testing.T) {
	g := mustGrid(t, [][]int{
		{-1, 0},
		{-1, 1},
		{3, 0},
	})
	gen := &scriptGen{types: 3, refill: []Icon{1, 2}}

	added := fillColumn(g, 0, gen)

	if len(added) != 2 {
		t.Fatalf("added = %d cells, want 2", len(added))
	}
	for _, a := range added {
		if a.PrevRow != a.Row-2 {
			t.Errorf("cell (%d,0) prevRow = %d, want %d (fell from two above)", a.Row, a.PrevRow, a.Row-2)
		}
	}
	if g.FilledCount() != 6 {
		t.Errorf("FilledCount = %d, want full column", g.FilledCount())
	}
}

func TestResolveColumnConservation(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2, 2},
		{0, 1, 0},
		{1, 0, 1},
	})
	gen := &scriptGen{types: 3, refill: []Icon{0, 1, 2}}

	steps, points := resolve(g, gen)

	if len(steps) == 0 {
		t.Fatal("resolve should report at least one step")
	}
	if points != BaseScore {
		t.Errorf("points = %d, want %d", points, BaseScore)
	}
	if g.FilledCount() != 9 {
		t.Errorf("FilledCount = %d, want 9 (no leftover empties)", g.FilledCount())
	}
	if hasRuns(g) {
		t.Error("board must be settled after resolve")
	}
}

func TestResolveCascadeChain(t *testing.T) {
	// Column 1 holds a vertical run. Its refill is scripted to line up three
	// more equal icons, so a second iteration fires before the board settles.
	g := mustGrid(t, [][]int{
		{0, 1, 0},
		{2, 4, 1},
		{3, 4, 0},
		{0, 4, 1},
	})
	gen := &scriptGen{types: 5, refill: []Icon{2, 2, 2, 1, 0, 3}}

	steps, points := resolve(g, gen)

	if len(steps) != 2 {
		t.Fatalf("steps = %d, want 2 (removal then chain reaction)", len(steps))
	}
	if points != 2*BaseScore {
		t.Errorf("points = %d, want %d", points, 2*BaseScore)
	}
	if hasRuns(g) {
		t.Error("board must be settled after resolve")
	}
	if g.FilledCount() != 12 {
		t.Errorf("FilledCount = %d, want 12", g.FilledCount())
	}

	if len(steps[0].Removed) != 3 {
		t.Errorf("first step removed %d cells, want 3", len(steps[0].Removed))
	}
	if len(steps[1].Removed) != 3 {
		t.Errorf("second step removed %d cells, want 3", len(steps[1].Removed))
	}
}
