package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkozyrev/gemcrush/internal/platform/tui"
	"github.com/vkozyrev/gemcrush/internal/storage"
)

var flagNoMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play gemcrush in the terminal",
	Long: `Start an interactive gemcrush session.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Select jewel / swap with selection
  Esc          - Clear selection / back to menu
  R            - Restart (new board)
  Q/Ctrl+C     - Quit

Difficulty presets change the jewel variety:
  easy   - 5 jewel types (matches come easy)
  normal - 6 jewel types
  hard   - 7 jewel types (matches are rare)

Examples:
  gemcrush play
  gemcrush play --difficulty easy
  gemcrush play --width 10 --height 6
  gemcrush play --seed 42 --no-menu
  gemcrush play --config ./my-board.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the menu and start on the board")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var runErr error
	if flagNoMenu {
		runErr = tui.Run(cfg, store, flagSeed)
	} else {
		runErr = tui.RunSession(cfg, store, width, height)
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
