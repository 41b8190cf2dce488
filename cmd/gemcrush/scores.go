package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkozyrev/gemcrush/internal/storage"
)

var flagScoresAll bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the configured board profile.

Scores are grouped by board profile (geometry plus jewel variety), since
a score on a 6x6 board is not comparable to one earned on 10x10.

Examples:
  gemcrush scores
  gemcrush scores --difficulty hard
  gemcrush scores --all`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show scores for every board profile")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	boards := []string{storage.BoardKey(cfg.Board.Width, cfg.Board.Height, cfg.Board.IconTypes)}
	if flagScoresAll {
		listed, listErr := store.Boards()
		if listErr != nil {
			fmt.Fprintf(os.Stderr, "Error listing boards: %v\n", listErr)
			os.Exit(1)
		}
		if len(listed) == 0 {
			fmt.Println("No scores recorded yet.")
			return
		}
		boards = listed
	}

	for i, boardKey := range boards {
		if i > 0 {
			fmt.Println()
		}
		printBoardScores(store, boardKey)
	}
}

// printBoardScores prints the top-10 table for one board profile.
func printBoardScores(store *storage.Store, boardKey string) {
	scores, err := store.TopScores(boardKey, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - board %s\n", boardKey)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gemcrush play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Moves, dateStr)
	}

	if stats, statsErr := store.GetBoardStats(boardKey); statsErr == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d over %d games (avg %.0f)\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
