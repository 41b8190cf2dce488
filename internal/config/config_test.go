package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GameConfig
		wantErr bool
	}{
		{"default is valid", DefaultGameConfig(), false},
		{"zero width", GameConfig{Board: BoardConfig{Width: 0, Height: 8, IconTypes: 6}}, true},
		{"negative height", GameConfig{Board: BoardConfig{Width: 8, Height: -1, IconTypes: 6}}, true},
		{"too few icon types", GameConfig{Board: BoardConfig{Width: 8, Height: 8, IconTypes: 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.yaml")
	yaml := "board:\n  width: 10\n  height: 6\n  icon_types: 4\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 6 || cfg.Board.IconTypes != 4 {
		t.Errorf("Load() = %+v, want 10x6 with 4 types", cfg.Board)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit config path")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default config is invalid: %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGameConfig()

	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Board.IconTypes != 7 {
		t.Errorf("IconTypes = %d after hard preset, want 7", cfg.Board.IconTypes)
	}

	ApplyPreset(&cfg, "")
	if cfg.Board.IconTypes != 7 {
		t.Error("empty preset must leave the config untouched")
	}

	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Board.IconTypes != 5 {
		t.Errorf("IconTypes = %d after easy preset, want 5", cfg.Board.IconTypes)
	}
}
