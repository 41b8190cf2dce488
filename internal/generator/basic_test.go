package generator_test

import (
	"testing"

	"github.com/vkozyrev/gemcrush/internal/board"
	"github.com/vkozyrev/gemcrush/internal/generator"
)

func TestGenerateRange(t *testing.T) {
	gen := generator.NewBasic(5, 42)

	for i := 0; i < 1000; i++ {
		ic := gen.Generate()
		if ic < 0 || ic >= 5 {
			t.Fatalf("Generate() = %d, want value in [0,5)", ic)
		}
	}
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	g1 := generator.NewBasic(6, 123)
	g2 := generator.NewBasic(6, 123)

	for i := 0; i < 100; i++ {
		if a, b := g1.Generate(), g2.Generate(); a != b {
			t.Fatalf("sequence diverged at %d: %d vs %d", i, a, b)
		}
	}
}

func TestStripeInitialize(t *testing.T) {
	gen := generator.NewBasic(4, 1)
	g, err := board.NewGrid(6, 4)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	gen.Initialize(g, false)

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			c, err := g.Get(board.P(row, col))
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if !c.Filled {
				t.Fatalf("cell (%d,%d) empty after Initialize", row, col)
			}
			want := board.Icon((row + col) % 2)
			if c.Icon != want {
				t.Errorf("cell (%d,%d) = %d, want %d", row, col, c.Icon, want)
			}
		}
	}
}

func TestStripeInitializeHasNoRuns(t *testing.T) {
	gen := generator.NewBasic(3, 1)
	g, _ := board.NewGrid(5, 5)
	gen.Initialize(g, false)

	// No two equal icons are ever adjacent in the checkerboard, so a game
	// constructed on top of it must start settled with score zero.
	game, err := board.New(5, 5, &stripeOnly{gen})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if game.Score() != 0 {
		t.Errorf("Score() = %d, want 0", game.Score())
	}
	if len(game.LastCascade()) != 0 {
		t.Errorf("stripe board should need no stabilization, got %d steps", len(game.LastCascade()))
	}
}

// stripeOnly forces the stripe fill regardless of the randIcons flag.
type stripeOnly struct {
	*generator.Basic
}

func (s *stripeOnly) Initialize(g *board.Grid, randIcons bool) {
	s.Basic.Initialize(g, false)
}

func TestRandomInitializeFillsEveryCell(t *testing.T) {
	gen := generator.NewBasic(5, 99)
	g, _ := board.NewGrid(8, 8)

	gen.Initialize(g, true)

	if g.FilledCount() != 64 {
		t.Errorf("FilledCount = %d, want 64", g.FilledCount())
	}
}
