package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vkozyrev/gemcrush/internal/board"
	"github.com/vkozyrev/gemcrush/internal/generator"
)

var (
	flagSimMoves   int
	flagSimVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autoplayer",
	Long: `Run the board engine without a UI: an autoplayer makes the first
legal swap it finds, over and over, until the board dies or the move
limit is reached. Useful for sanity-checking configs and for
reproducing boards from a seed.

Examples:
  gemcrush sim
  gemcrush sim --seed 42 --moves 50
  gemcrush sim --width 6 --height 6 --types 4 -v`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 100, "Maximum number of swaps to play")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every swap and cascade")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	gen := generator.NewBasic(cfg.Board.IconTypes, flagSeed)
	game, err := board.New(cfg.Board.Width, cfg.Board.Height, gen)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	logger.Info("starting autoplay",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"types", cfg.Board.IconTypes,
		"seed", flagSeed,
		"maxMoves", flagSimMoves,
	)

	moves := 0
	for moves < flagSimMoves {
		a, b, found := firstMove(game)
		if !found {
			logger.Info("board is dead, no legal swaps remain")
			break
		}

		before := game.Score()
		if !game.Select(a, b) {
			// firstMove probes with the engine's own rules, so a rejection
			// here means the probe and commit paths disagree.
			logger.Fatal("probed move was rejected", "a", a, "b", b)
		}
		moves++

		logger.Debug("swap",
			"move", moves,
			"a", fmt.Sprintf("(%d,%d)", a.Row, a.Col),
			"b", fmt.Sprintf("(%d,%d)", b.Row, b.Col),
			"points", game.Score()-before,
			"cascade", len(game.LastCascade()),
		)
	}

	fmt.Println(game.String())
	fmt.Printf("Played %d moves, final score %d\n", moves, game.Score())
}

// firstMove scans the board row-major and returns the first swap the engine
// would accept, probing right and down neighbors of each cell.
func firstMove(g *board.Game) (board.Pos, board.Pos, bool) {
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			cur := board.P(row, col)
			for _, next := range []board.Pos{board.P(row, col+1), board.P(row+1, col)} {
				if g.CanSwap(cur, next) {
					return cur, next, true
				}
			}
		}
	}
	return board.Pos{}, board.Pos{}, false
}
