package worm

import "github.com/vovakirdan/tui-worm/internal/core"

// Status is the simulation state derived from the worm.
type Status string

const (
	StatusRunning       Status = "running"        // Steering, eating, growing
	StatusCrashed       Status = "crashed"        // Hit something, body draining
	StatusLevelComplete Status = "level_complete" // Threaded the exit, body draining
	StatusEmpty         Status = "empty"          // Drained after a crash, waiting for restart
)

// Snapshot is an immutable copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick           uint64     `json:"tick"`
	GameID         string     `json:"game"`
	Status         Status     `json:"status"`
	Paused         bool       `json:"paused"`
	Level          int        `json:"level"`
	Score          int        `json:"score"`
	Segments       []core.Vec `json:"segments"` // Oldest first, head last
	Angle          float64    `json:"angle"`
	TargetedLength float64    `json:"targeted_length"`
	RequiredLength int        `json:"required_length"`
	Arena          core.FRect `json:"arena"`
	Exit           core.FRect `json:"exit"`
	ExitVisible    bool       `json:"exit_visible"`
	Apple          core.Vec   `json:"apple"`
	AppleVisible   bool       `json:"apple_visible"`
	AppleSize      float64    `json:"apple_size"`
	PartSize       float64    `json:"part_size"`
}

// Snapshot returns the current frame's state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		GameID:         g.ID(),
		Status:         g.Status(),
		Paused:         g.paused,
		Level:          g.arena.Level,
		Score:          g.score,
		Segments:       g.worm.Body.Positions(),
		Angle:          g.worm.Angle,
		TargetedLength: g.worm.TargetedLength,
		RequiredLength: g.cfg.RequiredLength,
		Arena:          g.arena.Bounds,
		Exit:           g.arena.Exit,
		ExitVisible:    g.exitVisible(),
		Apple:          g.apple.Pos,
		AppleVisible:   g.appleVisible(),
		AppleSize:      g.cfg.AppleSize,
		PartSize:       g.cfg.PartSize,
	}
}

// Head returns the newest segment, if any.
func (s Snapshot) Head() (core.Vec, bool) {
	if len(s.Segments) == 0 {
		return core.Vec{}, false
	}
	return s.Segments[len(s.Segments)-1], true
}
