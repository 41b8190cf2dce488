// gemcrush is a terminal match-three puzzle: swap adjacent jewels to line
// up runs of three or more, chase cascades, and climb the scoreboard.
//
// Usage:
//
//	gemcrush play             - Play in the terminal
//	gemcrush serve            - Start SSH server for remote play
//	gemcrush scores           - Show high scores
//	gemcrush sim              - Run a headless autoplayer
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.gemcrush/scores.db)
//	--config <path> - Path to custom board config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkozyrev/gemcrush/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagIconTypes  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemcrush",
	Short: "Gemcrush - match-three jewels in your terminal",
	Long: `Gemcrush is a terminal match-three puzzle. Swap two adjacent jewels
to line up three or more of a kind; matched jewels burst, the stack
falls, and chain reactions multiply your score.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless autoplayer

Examples:
  gemcrush play
  gemcrush play --difficulty hard
  gemcrush play --width 10 --height 10
  gemcrush serve --ssh :2222
  gemcrush scores
  gemcrush sim --seed 42 --moves 50`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemcrush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width override")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height override")
	rootCmd.PersistentFlags().IntVar(&flagIconTypes, "types", 0, "Jewel type count override")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// loadGameConfig builds the effective board configuration from the config
// file, difficulty preset and per-dimension flag overrides, in that order.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	if flagIconTypes > 0 {
		cfg.Board.IconTypes = flagIconTypes
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
