package config

import (
	_ "embed"
)

//go:embed defaults/worm.yaml
var defaultWormYAML []byte

// DefaultWormConfig returns the default worm configuration at the easiest
// difficulty. It mirrors defaults/worm.yaml.
func DefaultWormConfig() WormConfig {
	return WormConfig{
		PartsSpacing:   3,
		TurnStep:       0.15,
		PartSize:       6,
		GrowthAmount:   20,
		RequiredLength: 300,
		ShrinkPerLevel: 20,
		BorderMargin:   30,
		PartsPerFrame:  1,
		InitialLength:  30,
		AppleSize:      16,
		LevelBonus:     5,
		Start: StartConfig{
			X: 50,
			Y: 50,
		},
		World: WorldConfig{
			Width:        800,
			Height:       600,
			SideMargin:   20,
			ArenaTop:     20,
			BottomMargin: 80,
			ExitWidth:    100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWormYAML
}
