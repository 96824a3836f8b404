package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	holds *HoldTracker
}

// NewKeyMapper creates a key mapper with default bindings and hold windows.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{holds: NewHoldTracker(DefaultHoldWindow)}
}

// turnFor returns the steering key bound to key, if any.
func turnFor(key string) (Turn, bool) {
	switch key {
	case "left", "a", "h":
		return TurnLeft, true
	case "right", "d", "l":
		return TurnRight, true
	}
	return 0, false
}

// MapKey translates a non-steering key to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "enter", " ", "p":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message received at now.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) bool {
	if t, ok := turnFor(msg.String()); ok {
		km.holds.Press(t, now, frame)
		return false
	}
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// Expire releases steering keys that stopped repeating before now.
func (km *KeyMapper) Expire(now time.Time, frame *core.InputFrame) {
	km.holds.Expire(now, frame)
}

// ReleaseAll releases every held steering key.
func (km *KeyMapper) ReleaseAll(frame *core.InputFrame) {
	km.holds.ReleaseAll(frame)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
