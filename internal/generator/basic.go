// Package generator provides icon sources for the match-3 board engine.
package generator

import (
	"math/rand"
	"time"

	"github.com/vkozyrev/gemcrush/internal/board"
)

// Basic is a seeded pseudo-random icon source. The same seed always yields
// the same icon sequence, which keeps whole games reproducible.
type Basic struct {
	numTypes int
	rng      *rand.Rand
}

// NewBasic creates a generator producing icons in [0, numTypes).
// A zero seed is replaced with the current time.
func NewBasic(numTypes int, seed int64) *Basic {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Basic{
		numTypes: numTypes,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Generate returns one uniformly random icon.
func (b *Basic) Generate() board.Icon {
	return board.Icon(b.rng.Intn(b.numTypes))
}

// NumTypes returns the number of distinct icon types this source produces.
func (b *Basic) NumTypes() int {
	return b.numTypes
}

// Initialize fills every cell of the grid. With randIcons it fills from
// Generate; otherwise it lays a checkerboard of the first two icon types,
// which contains no run and is handy for fixed test boards.
func (b *Basic) Initialize(g *board.Grid, randIcons bool) {
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			icon := board.Icon((row + col) % 2)
			if randIcons {
				icon = b.Generate()
			}
			//nolint:errcheck // loop positions are in bounds by construction
			g.Set(board.P(row, col), board.Occupied(icon))
		}
	}
}

// Interface conformance check.
var _ board.Generator = (*Basic)(nil)
