package worm

import "github.com/vovakirdan/tui-worm/internal/core"

// Worm is the player-controlled chain of segments.
type Worm struct {
	Body           Body
	TargetedLength float64 // Segment count the body converges to
	Direction      int     // -1 left, 0 straight, +1 right
	Angle          float64 // Heading in radians

	crashed        bool
	levelCompleted bool
}

// Left applies a left-key transition. A release only clears the direction
// if the worm is still turning left.
func (w *Worm) Left(pressed bool) {
	w.steer(-1, pressed)
}

// Right applies a right-key transition.
func (w *Worm) Right(pressed bool) {
	w.steer(1, pressed)
}

func (w *Worm) steer(dir int, pressed bool) {
	if pressed {
		w.Direction = dir
	} else if w.Direction == dir {
		w.Direction = 0
	}
}

// Running reports whether the worm still moves and grows.
func (w *Worm) Running() bool {
	return w.TargetedLength > 0 && !w.crashed && !w.levelCompleted
}

// reset respawns a single segment at start heading east.
func (w *Worm) reset(start core.Vec, length float64) {
	w.Body.Clear()
	w.Body.Push(start)
	w.TargetedLength = length
	w.Direction = 0
	w.Angle = 0
	w.crashed = false
	w.levelCompleted = false
}

func (w *Worm) crash() {
	w.crashed = true
}

func (w *Worm) completeLevel() {
	w.levelCompleted = true
	w.TargetedLength = 0
}

// target is the length the body drains toward this frame.
func (w *Worm) target() float64 {
	if w.crashed || w.levelCompleted {
		return 0
	}
	return w.TargetedLength
}
