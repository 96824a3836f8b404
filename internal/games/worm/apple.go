package worm

import (
	"math/rand"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// maxRelocateAttempts bounds the rejection loop in Relocate. The exit
// corridor lies above the arena so a rejection is not expected in practice.
const maxRelocateAttempts = 64

// Apple is the single piece of food. It is moved, never destroyed.
type Apple struct {
	Pos core.Vec
}

// Relocate moves the apple to a uniformly random point strictly inside
// bounds inset by border, outside the exit corridor.
func (a *Apple) Relocate(rng *rand.Rand, bounds core.FRect, border float64, exit core.FRect) {
	area := bounds.Inset(border)
	for range maxRelocateAttempts {
		p := core.Vec{
			X: openInterval(rng, area.Left, area.Right),
			Y: openInterval(rng, area.Top, area.Bottom),
		}
		if !exit.Contains(p) {
			a.Pos = p
			return
		}
	}
	a.Pos = core.Vec{X: (area.Left + area.Right) / 2, Y: (area.Top + area.Bottom) / 2}
}

// openInterval draws from (lo, hi).
func openInterval(rng *rand.Rand, lo, hi float64) float64 {
	for {
		v := lo + rng.Float64()*(hi-lo)
		if v > lo && v < hi {
			return v
		}
	}
}
