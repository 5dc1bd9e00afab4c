package config

import (
	_ "embed"
)

//go:embed defaults/twenty48.yaml
var defaultGameYAML []byte

// Default returns the default game configuration: a classic 4x4 board
// aiming for the 2048 tile.
func Default() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Size: 4,
		},
		Rules: RulesConfig{
			Target: 2048,
		},
		Spawn: SpawnConfig{
			StartTiles:      2,
			FourProbability: 0.10,
		},
		HUD: HUDConfig{
			ShowBest:    true,
			ShowMaxTile: true,
		},
	}
}
