// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the worm arcade.
package config

import "github.com/vovakirdan/tui-worm/internal/core"

// WormConfig contains all tunables of the worm simulation.
// Distances are in world units; the default playfield is 800x600.
type WormConfig struct {
	PartsSpacing   float64 `yaml:"parts_spacing"`    // Distance between consecutive segments
	TurnStep       float64 `yaml:"turn_step"`        // Heading change per sub-step, radians
	PartSize       float64 `yaml:"part_size"`        // Segment diameter
	GrowthAmount   float64 `yaml:"growth_amount"`    // Targeted length added per apple
	RequiredLength int     `yaml:"required_length"`  // Length that unlocks the exit
	ShrinkPerLevel float64 `yaml:"shrink_per_level"` // Arena shrink on each side per level
	BorderMargin   float64 `yaml:"border_margin"`    // Apple keep-out distance from walls

	PartsPerFrame int         `yaml:"parts_per_frame"` // Sub-steps per frame, 1 + difficulty
	InitialLength float64     `yaml:"initial_length"`
	AppleSize     float64     `yaml:"apple_size"`
	LevelBonus    int         `yaml:"level_bonus"` // Score awarded on level completion
	Start         StartConfig `yaml:"start"`
	World         WorldConfig `yaml:"world"`
}

// StartConfig is the worm's start offset from the arena's top-left corner.
type StartConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WorldConfig describes the playfield the arena is carved from.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SideMargin   float64 `yaml:"side_margin"`   // Initial gap between world edge and arena side walls
	ArenaTop     float64 `yaml:"arena_top"`     // Arena top wall; the exit corridor spans [0, ArenaTop]
	BottomMargin float64 `yaml:"bottom_margin"` // Space below the arena reserved for the HUD
	ExitWidth    float64 `yaml:"exit_width"`    // Exit gap width, centered on the world
}

// InitialArena returns the level-1 arena bounds.
func (c WormConfig) InitialArena() core.FRect {
	return core.FRect{
		Left:   c.World.SideMargin,
		Top:    c.World.ArenaTop,
		Right:  c.World.Width - c.World.SideMargin,
		Bottom: c.World.Height - c.World.BottomMargin,
	}
}

// Exit returns the exit corridor: a fixed rectangle from the outer boundary
// (y = 0) down to the arena top, centered horizontally on the world.
func (c WormConfig) Exit() core.FRect {
	mid := c.World.Width / 2
	return core.FRect{
		Left:   mid - c.World.ExitWidth/2,
		Top:    0,
		Right:  mid + c.World.ExitWidth/2,
		Bottom: c.World.ArenaTop,
	}
}

// NeckLength is the number of most recent segments, head included, that are
// never tested for self collision.
func (c WormConfig) NeckLength() int {
	return int(c.PartSize/c.PartsSpacing) + 1
}
