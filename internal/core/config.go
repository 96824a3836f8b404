package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, 1-based
	GameOver bool // Whether the round has ended and waits for a restart
	Paused   bool // Whether the game is paused
}

// Event is a one-frame signal raised by a simulation step.
type Event string

const (
	EventAte            Event = "ate"             // An apple was eaten
	EventCrashed        Event = "crashed"         // Wall or self collision
	EventLevelCompleted Event = "level_completed" // The exit was threaded
	EventLevelAdvanced  Event = "level_advanced"  // Next level started
	EventRoundOver      Event = "round_over"      // Crashed worm fully drained
	EventRestarted      Event = "restarted"       // Arena and worm reset from scratch
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step raised the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
