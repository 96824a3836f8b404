package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid worm config")

// ValidationError names the offending field and why it was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the configuration once, before a simulation is built.
// A nil result guarantees the first arena, its exit, the apple area and the
// start point are consistent, and that at least one level transition can
// shrink the arena without inverting it.
func (c WormConfig) Validate() error {
	positives := []struct {
		field string
		val   float64
	}{
		{"parts_spacing", c.PartsSpacing},
		{"turn_step", c.TurnStep},
		{"part_size", c.PartSize},
		{"growth_amount", c.GrowthAmount},
		{"initial_length", c.InitialLength},
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"world.exit_width", c.World.ExitWidth},
	}
	for _, p := range positives {
		if !finite(p.val) {
			return invalid(p.field, "must be finite, got %g", p.val)
		}
		if p.val <= 0 {
			return invalid(p.field, "must be positive, got %g", p.val)
		}
	}

	if c.RequiredLength <= 0 {
		return invalid("required_length", "must be positive, got %d", c.RequiredLength)
	}
	if c.PartsPerFrame < 1 {
		return invalid("parts_per_frame", "must be at least 1, got %d", c.PartsPerFrame)
	}

	nonNegatives := []struct {
		field string
		val   float64
	}{
		{"shrink_per_level", c.ShrinkPerLevel},
		{"border_margin", c.BorderMargin},
		{"apple_size", c.AppleSize},
		{"level_bonus", float64(c.LevelBonus)},
		{"world.side_margin", c.World.SideMargin},
		{"world.arena_top", c.World.ArenaTop},
		{"world.bottom_margin", c.World.BottomMargin},
	}
	for _, p := range nonNegatives {
		if !finite(p.val) {
			return invalid(p.field, "must be finite, got %g", p.val)
		}
		if p.val < 0 {
			return invalid(p.field, "must not be negative, got %g", p.val)
		}
	}

	if !finite(c.Start.X) || !finite(c.Start.Y) {
		return invalid("start", "(%g, %g) must be finite", c.Start.X, c.Start.Y)
	}

	// The neck must stay shorter than a full-grown worm or self collision
	// never has a segment to test.
	if neck := c.PartSize / c.PartsSpacing; neck > float64(c.RequiredLength) {
		return invalid("parts_spacing", "%g is too small for %g segments, neck of %.0f exceeds required_length %d",
			c.PartsSpacing, c.PartSize, neck, c.RequiredLength)
	}

	arena := c.InitialArena()
	if err := c.CheckArena(arena); err != nil {
		return err
	}

	start := core.Vec{X: arena.Left + c.Start.X, Y: arena.Top + c.Start.Y}
	if !arena.Inset(c.PartSize / 2).Contains(start) {
		return invalid("start", "(%g, %g) lies outside the arena", c.Start.X, c.Start.Y)
	}

	next := arena
	next.Left += c.ShrinkPerLevel
	next.Right -= c.ShrinkPerLevel
	if err := c.CheckArena(next); err != nil {
		return invalid("shrink_per_level", "%g inverts the arena after the first level", c.ShrinkPerLevel)
	}
	if !next.Inset(c.PartSize / 2).Contains(core.Vec{X: next.Left + c.Start.X, Y: next.Top + c.Start.Y}) {
		return invalid("shrink_per_level", "%g pushes the start point out of the second arena", c.ShrinkPerLevel)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckArena reports whether bounds can host a level: positive size, room
// for apples inside the border margin, and the exit corridor (plus half a
// segment on each side) within the side walls.
func (c WormConfig) CheckArena(bounds core.FRect) error {
	if !bounds.Valid() {
		return invalid("world", "arena bounds %+v are empty or inverted", bounds)
	}
	if !bounds.Inset(c.BorderMargin).Valid() {
		return invalid("border_margin", "%g leaves no room for apples in a %gx%g arena",
			c.BorderMargin, bounds.Width(), bounds.Height())
	}
	exit := c.Exit()
	if c.World.ExitWidth <= c.PartSize {
		return invalid("world.exit_width", "%g is too narrow for a %g segment", c.World.ExitWidth, c.PartSize)
	}
	if exit.Left < bounds.Left+c.PartSize/2 || exit.Right > bounds.Right-c.PartSize/2 {
		return invalid("world.exit_width", "exit [%g, %g] falls outside arena [%g, %g]",
			exit.Left, exit.Right, bounds.Left, bounds.Right)
	}
	return nil
}
