package board

import "fmt"

// MinIconTypes is the smallest icon-type count a generator may offer. With
// fewer than three types a stripe layout with no adjacent equal icons cannot
// be built and no swap can avoid an immediate run.
const MinIconTypes = 3

// Generator supplies new icons and initial board fills. Implementations live
// outside the engine; the engine imposes no policy on how icons are chosen
// beyond the [0, NumTypes) range.
type Generator interface {
	// Generate returns one icon in [0, NumTypes()).
	Generate() Icon

	// Initialize fills every cell of the grid. When randIcons is false the
	// fill is a deterministic alternating two-type stripe pattern; when true
	// each cell comes from Generate.
	Initialize(g *Grid, randIcons bool)

	// NumTypes returns the number of distinct icon types, at least MinIconTypes.
	NumTypes() int
}

// Game owns one grid, the current score and a reference to the icon
// generator. Every public call begins and ends with a settled board: no
// run of MinRunLength or more exists and every cell is occupied.
//
// A Game is safe for use from a single goroutine; independent games share
// no state.
type Game struct {
	grid  *Grid
	gen   Generator
	score int

	lastCascade []Step
}

// New creates a game with the given number of columns and rows, seeds the
// grid through the generator, clears any accidental runs the seed produced
// and resets the score to zero, so the first observable board is always
// settled with score 0.
//
// Returns ErrInvalidConfig for non-positive dimensions or a generator with
// fewer than MinIconTypes icon types.
func New(width, height int, gen Generator) (*Game, error) {
	if n := gen.NumTypes(); n < MinIconTypes {
		return nil, fmt.Errorf("%w: %d icon types, need at least %d", ErrInvalidConfig, n, MinIconTypes)
	}
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	gen.Initialize(grid, true)

	g := &Game{grid: grid, gen: gen}
	g.lastCascade, _ = resolve(grid, gen)
	g.score = 0

	return g, nil
}

// Select attempts the only move the game permits: swapping two adjacent
// cells holding different icons such that the swap creates at least one run.
// On success the swap is committed, the resulting cascade is resolved to
// exhaustion, the score is updated and true is returned. On any rejection
// the grid and score are left exactly as they were and false is returned.
func (g *Game) Select(a, b Pos) bool {
	if !g.grid.InBounds(a) || !g.grid.InBounds(b) {
		return false
	}
	if !a.Adjacent(b) {
		return false
	}

	ca, cb := g.grid.at(a.Row, a.Col), g.grid.at(b.Row, b.Col)
	if ca.Icon == cb.Icon {
		return false
	}

	g.grid.swap(a, b)
	if !hasRuns(g.grid) {
		g.grid.swap(a, b)
		return false
	}

	steps, points := resolve(g.grid, g.gen)
	g.lastCascade = steps
	g.score += points
	return true
}

// CanSwap reports whether Select would accept the swap, without touching
// any state. It applies the same checks: bounds, adjacency, differing
// icons and a resulting run.
func (g *Game) CanSwap(a, b Pos) bool {
	if !g.grid.InBounds(a) || !g.grid.InBounds(b) {
		return false
	}
	if !a.Adjacent(b) {
		return false
	}
	if g.grid.at(a.Row, a.Col).Icon == g.grid.at(b.Row, b.Col).Icon {
		return false
	}

	probe := g.grid.Clone()
	probe.swap(a, b)
	return hasRuns(probe)
}

// HasMoves reports whether at least one legal swap remains. It probes every
// horizontally and vertically adjacent pair on a copy of the grid and never
// mutates game state.
func (g *Game) HasMoves() bool {
	probe := g.grid.Clone()
	for row := 0; row < probe.height; row++ {
		for col := 0; col < probe.width; col++ {
			for _, next := range []Pos{P(row, col+1), P(row+1, col)} {
				if !probe.InBounds(next) {
					continue
				}
				cur := P(row, col)
				if probe.at(cur.Row, cur.Col).Icon == probe.at(next.Row, next.Col).Icon {
					continue
				}
				probe.swap(cur, next)
				found := hasRuns(probe)
				probe.swap(cur, next)
				if found {
					return true
				}
			}
		}
	}
	return false
}

// Icon returns the icon at the given position.
// Returns ErrOutOfBounds outside the grid.
func (g *Game) Icon(p Pos) (Icon, error) {
	c, err := g.grid.Get(p)
	if err != nil {
		return 0, err
	}
	return c.Icon, nil
}

// SetIcon overwrites the icon at the given position.
// Returns ErrOutOfBounds outside the grid.
func (g *Game) SetIcon(p Pos, ic Icon) error {
	return g.grid.Set(p, Occupied(ic))
}

// Width returns the number of columns in the game grid.
func (g *Game) Width() int {
	return g.grid.Width()
}

// Height returns the number of rows in the game grid.
func (g *Game) Height() int {
	return g.grid.Height()
}

// Score returns the current score. It never decreases.
func (g *Game) Score() int {
	return g.score
}

// LastCascade returns the per-iteration report of the most recent cascade:
// the initial stabilization at construction, or the resolution triggered by
// the last successful Select.
func (g *Game) LastCascade() []Step {
	return g.lastCascade
}

// String returns a textual dump of the grid for logging.
func (g *Game) String() string {
	return g.grid.String()
}
