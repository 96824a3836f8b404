// Package stream serves worm games over WebSocket. Each connection owns one
// game instance stepped at a fixed rate; the client sends key transitions and
// receives a JSON snapshot every frame, so any renderer can draw the game.
//
// Messages use a compact single-letter "t" field:
//
//	client: {"t":"k","k":"left","p":1}  key transition (p=1 pressed, p=0 released)
//	client: {"t":"c"}                   confirm (pause toggle or restart)
//	server: {"t":"w","i":id,"g":game}   welcome
//	server: {"t":"s","s":{...}}         per-frame snapshot
//	server: {"t":"o","p":score,"l":lvl} round over
//	server: {"t":"e","m":message}       error, connection closes
package stream

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/tui-worm/internal/core"
)

const (
	MsgKey      = "k"
	MsgConfirm  = "c"
	MsgWelcome  = "w"
	MsgSnapshot = "s"
	MsgOver     = "o"
	MsgError    = "e"
)

// ClientMessage is any message a client may send.
type ClientMessage struct {
	Type    string `json:"t"`
	Key     string `json:"k,omitempty"`
	Pressed int    `json:"p,omitempty"`
}

// WelcomeMsg is sent once after the upgrade.
type WelcomeMsg struct {
	Type string `json:"t"`
	ID   string `json:"i"`
	Game string `json:"g"`
}

// SnapshotMsg carries the game state after one frame.
type SnapshotMsg struct {
	Type     string `json:"t"`
	Snapshot any    `json:"s"`
}

// OverMsg reports a finished round.
type OverMsg struct {
	Type  string `json:"t"`
	Score int    `json:"p"`
	Level int    `json:"l"`
}

// ErrorMsg is sent before the server closes a connection it refused.
type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}

// decodeAction parses one client message into the action it stands for.
func decodeAction(raw []byte) (core.Action, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return core.ActionNone, fmt.Errorf("stream: bad message: %w", err)
	}

	switch msg.Type {
	case MsgConfirm:
		return core.ActionConfirm, nil
	case MsgKey:
		pressed := msg.Pressed == 1
		switch msg.Key {
		case "left":
			if pressed {
				return core.ActionLeftPress, nil
			}
			return core.ActionLeftRelease, nil
		case "right":
			if pressed {
				return core.ActionRightPress, nil
			}
			return core.ActionRightRelease, nil
		}
		return core.ActionNone, fmt.Errorf("stream: unknown key %q", msg.Key)
	}
	return core.ActionNone, fmt.Errorf("stream: unknown message type %q", msg.Type)
}
