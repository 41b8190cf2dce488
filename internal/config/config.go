// Package config provides YAML-based game configuration loading and
// difficulty presets for the gemcrush board game.
package config

import "fmt"

// GameConfig contains all tunable parameters for a game session.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
}

// BoardConfig defines the board geometry and icon variety.
type BoardConfig struct {
	Width     int `yaml:"width"`      // Number of columns
	Height    int `yaml:"height"`     // Number of rows
	IconTypes int `yaml:"icon_types"` // Distinct jewel kinds, minimum 3
}

// Validate checks the configuration for values the engine would reject.
func (c GameConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board dimensions %dx%d must be positive", c.Board.Width, c.Board.Height)
	}
	if c.Board.IconTypes < 3 {
		return fmt.Errorf("config: icon_types %d must be at least 3", c.Board.IconTypes)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
// More icon types make matches rarer, so higher presets raise the variety.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// IconTypesForPreset returns the icon variety for a difficulty preset.
func IconTypesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 6
	case DifficultyHard:
		return 7
	default:
		return 6
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Board.IconTypes = IconTypesForPreset(preset)
}
