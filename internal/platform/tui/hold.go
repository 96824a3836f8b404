package tui

import (
	"time"

	"github.com/vovakirdan/tui-worm/internal/core"
)

const (
	// DefaultFirstHoldWindow is how long a fresh press counts as held while
	// the terminal waits out its initial auto-repeat delay.
	DefaultFirstHoldWindow = 600 * time.Millisecond

	// DefaultHoldWindow is how long a turn key counts as held after an
	// auto-repeat.
	DefaultHoldWindow = 180 * time.Millisecond
)

// Turn identifies one of the two steering keys.
type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
)

func (t Turn) opposite() Turn {
	if t == TurnLeft {
		return TurnRight
	}
	return TurnLeft
}

func (t Turn) press() core.Action {
	if t == TurnLeft {
		return core.ActionLeftPress
	}
	return core.ActionRightPress
}

func (t Turn) release() core.Action {
	if t == TurnLeft {
		return core.ActionLeftRelease
	}
	return core.ActionRightRelease
}

// HoldTracker turns terminal key presses into press/release transitions.
// Terminals report a held key as a stream of repeated presses and never
// report the release, so a key is considered released once no repeat has
// arrived within the hold window, or as soon as the opposite key is pressed.
// The first repeat comes after a longer initial delay, so a key that has not
// repeated yet is kept for the first window instead.
type HoldTracker struct {
	first  time.Duration
	window time.Duration
	holds  map[Turn]hold
}

type hold struct {
	seen     time.Time
	repeated bool
}

// NewHoldTracker creates a tracker with DefaultFirstHoldWindow for fresh
// presses and window for repeats. A non-positive window uses
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return NewHoldTrackerWindows(DefaultFirstHoldWindow, window)
}

// NewHoldTrackerWindows creates a tracker with explicit windows. The first
// window is never shorter than the repeat window.
func NewHoldTrackerWindows(first, window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if first < window {
		first = window
	}
	return &HoldTracker{
		first:  first,
		window: window,
		holds:  make(map[Turn]hold),
	}
}

// Press records a press or auto-repeat of t at now. Only the first press of
// a hold is written to frame.
func (h *HoldTracker) Press(t Turn, now time.Time, frame *core.InputFrame) {
	if _, held := h.holds[t.opposite()]; held {
		delete(h.holds, t.opposite())
		frame.Set(t.opposite().release())
	}
	_, held := h.holds[t]
	if !held {
		frame.Set(t.press())
	}
	h.holds[t] = hold{seen: now, repeated: held}
}

// Expire writes a release for every key whose hold window has lapsed.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for t, k := range h.holds {
		window := h.first
		if k.repeated {
			window = h.window
		}
		if now.Sub(k.seen) >= window {
			delete(h.holds, t)
			frame.Set(t.release())
		}
	}
}

// ReleaseAll writes a release for every held key.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	for t := range h.holds {
		delete(h.holds, t)
		frame.Set(t.release())
	}
}

// Held reports whether t is currently considered held.
func (h *HoldTracker) Held(t Turn) bool {
	_, ok := h.holds[t]
	return ok
}
