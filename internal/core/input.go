package core

// Action represents a semantic game action, abstracted from physical key presses.
// Turning keys are reported as transitions so a front end that knows about key
// releases (websocket clients) and one that does not (terminals) map onto the
// same frame model.
type Action int

const (
	ActionNone         Action = iota
	ActionLeftPress           // Left arrow went down
	ActionLeftRelease         // Left arrow went up
	ActionRightPress          // Right arrow went down
	ActionRightRelease        // Right arrow went up
	ActionConfirm             // Enter - restart after a crash, otherwise pause toggle
	ActionBack                // B, Escape - go back to menu
	ActionQuit                // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftPress:
		return "LeftPress"
	case ActionLeftRelease:
		return "LeftRelease"
	case ActionRightPress:
		return "RightPress"
	case ActionRightRelease:
		return "RightRelease"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input gathered between two simulation ticks.
// It is sampled once at the start of a frame and held constant for that frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Unset clears an action triggered earlier in this frame.
func (f *InputFrame) Unset(a Action) {
	delete(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
