// Package config provides YAML-based configuration loading for the
// twenty48 game.
package config

import "fmt"

// GameConfig contains all tunable parameters for a game of twenty48.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
	Spawn SpawnConfig `yaml:"spawn"`
	HUD   HUDConfig   `yaml:"hud"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	Size int `yaml:"size"` // Side length of the square board (3-8)
}

// RulesConfig defines win-condition parameters.
type RulesConfig struct {
	Target int `yaml:"target"` // Tile value that wins a classic game
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	StartTiles      int     `yaml:"start_tiles"`      // Tiles placed before the first move
	FourProbability float64 `yaml:"four_probability"` // Chance a spawned tile is a 4 instead of a 2
}

// HUDConfig toggles optional HUD elements.
type HUDConfig struct {
	ShowBest    bool `yaml:"show_best"`     // Show the stored best score
	ShowMaxTile bool `yaml:"show_max_tile"` // Show the largest tile on the board
}

// Validate checks the config for out-of-range values.
func (c GameConfig) Validate() error {
	if c.Board.Size < 3 || c.Board.Size > 8 {
		return fmt.Errorf("config: board size %d out of range 3-8", c.Board.Size)
	}
	if c.Rules.Target < 8 || c.Rules.Target&(c.Rules.Target-1) != 0 {
		return fmt.Errorf("config: target %d must be a power of two >= 8", c.Rules.Target)
	}
	if c.Spawn.StartTiles < 1 || c.Spawn.StartTiles > c.Board.Size*c.Board.Size {
		return fmt.Errorf("config: start_tiles %d out of range 1-%d", c.Spawn.StartTiles, c.Board.Size*c.Board.Size)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("config: four_probability %g out of range 0-1", c.Spawn.FourProbability)
	}
	return nil
}
