package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Point the home directory somewhere empty so a developer's own
	// ~/.twenty48/config.yaml cannot leak into the test.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	// The embedded YAML must agree with the hardcoded fallback so the
	// two default paths cannot drift apart.
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
board:
  size: 5
rules:
  target: 1024
spawn:
  start_tiles: 3
  four_probability: 0.25
hud:
  show_best: false
  show_max_tile: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Rules.Target != 1024 {
		t.Errorf("Rules.Target = %d, want 1024", cfg.Rules.Target)
	}
	if cfg.Spawn.StartTiles != 3 {
		t.Errorf("Spawn.StartTiles = %d, want 3", cfg.Spawn.StartTiles)
	}
	if cfg.Spawn.FourProbability != 0.25 {
		t.Errorf("Spawn.FourProbability = %g, want 0.25", cfg.Spawn.FourProbability)
	}
	if cfg.HUD.ShowBest {
		t.Error("HUD.ShowBest should be false")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/twenty48.yaml"); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	yaml := `
board:
  size: 2
rules:
  target: 2048
spawn:
  start_tiles: 2
  four_probability: 0.1
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject a board size below 3")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr bool
	}{
		{"default", func(c *GameConfig) {}, false},
		{"size too small", func(c *GameConfig) { c.Board.Size = 2 }, true},
		{"size too large", func(c *GameConfig) { c.Board.Size = 9 }, true},
		{"target not power of two", func(c *GameConfig) { c.Rules.Target = 1000 }, true},
		{"target too small", func(c *GameConfig) { c.Rules.Target = 4 }, true},
		{"no start tiles", func(c *GameConfig) { c.Spawn.StartTiles = 0 }, true},
		{"too many start tiles", func(c *GameConfig) { c.Spawn.StartTiles = 17 }, true},
		{"negative probability", func(c *GameConfig) { c.Spawn.FourProbability = -0.1 }, true},
		{"probability above one", func(c *GameConfig) { c.Spawn.FourProbability = 1.1 }, true},
		{"large board", func(c *GameConfig) { c.Board.Size = 8; c.Spawn.StartTiles = 4 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
