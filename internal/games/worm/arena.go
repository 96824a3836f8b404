package worm

import (
	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
)

// Arena is the walled playfield of the current level.
type Arena struct {
	Bounds core.FRect // Walls
	Exit   core.FRect // Gap corridor from the outer boundary down to Bounds.Top
	Level  int        // 1-based

	initial core.FRect
}

// NewArena builds the level-1 arena described by cfg.
func NewArena(cfg config.WormConfig) Arena {
	a := Arena{
		Exit:    cfg.Exit(),
		initial: cfg.InitialArena(),
	}
	a.Reset()
	return a
}

// Reset restores the level-1 bounds.
func (a *Arena) Reset() {
	a.Bounds = a.initial
	a.Level = 1
}

// NextLevel increments the level and shrinks both side walls by
// ShrinkPerLevel. The shrink is skipped, and false returned, when the
// narrower arena could no longer hold the exit, the apple border or the
// start point.
func (a *Arena) NextLevel(cfg config.WormConfig) bool {
	a.Level++

	next := a.Bounds
	next.Left += cfg.ShrinkPerLevel
	next.Right -= cfg.ShrinkPerLevel
	if cfg.CheckArena(next) != nil {
		return false
	}
	if !next.Inset(cfg.PartSize / 2).Contains(startIn(next, cfg)) {
		return false
	}
	a.Bounds = next
	return true
}

// Start returns the worm's spawn point in the current arena.
func (a Arena) Start(cfg config.WormConfig) core.Vec {
	return startIn(a.Bounds, cfg)
}

func startIn(bounds core.FRect, cfg config.WormConfig) core.Vec {
	return core.Vec{X: bounds.Left + cfg.Start.X, Y: bounds.Top + cfg.Start.Y}
}
