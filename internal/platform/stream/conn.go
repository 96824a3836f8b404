package stream

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm"
	"github.com/vovakirdan/tui-worm/internal/registry"
)

const writeTimeout = 5 * time.Second

// Conn is one client playing one game.
type Conn struct {
	ID     string
	GameID string

	ws     *websocket.Conn
	game   registry.Game
	logger *log.Logger

	mu      sync.Mutex // protects pending
	pending core.InputFrame
}

func newConn(ws *websocket.Conn, gameID string, game registry.Game, logger *log.Logger) *Conn {
	id := uuid.NewString()
	return &Conn{
		ID:      id,
		GameID:  gameID,
		ws:      ws,
		game:    game,
		logger:  logger.With("conn", id, "game", gameID),
		pending: core.NewInputFrame(),
	}
}

// Send writes msg as one JSON text frame. Only the serving goroutine writes.
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.ws.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// queue records an action for the next frame. Only the latest transition
// of each turn key is kept, so the frame ends in the state the client last
// reported.
func (c *Conn) queue(a core.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if other, ok := counterpart(a); ok {
		c.pending.Unset(other)
	}
	c.pending.Set(a)
}

// counterpart returns the opposite transition of the same turn key.
func counterpart(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeftPress:
		return core.ActionLeftRelease, true
	case core.ActionLeftRelease:
		return core.ActionLeftPress, true
	case core.ActionRightPress:
		return core.ActionRightRelease, true
	case core.ActionRightRelease:
		return core.ActionRightPress, true
	}
	return core.ActionNone, false
}

// takeInput returns the actions queued since the last frame.
func (c *Conn) takeInput() core.InputFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	in := c.pending
	c.pending = core.NewInputFrame()
	return in
}

// readLoop queues client input until the socket fails or closes.
func (c *Conn) readLoop(done chan<- error) {
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				err = nil
			}
			done <- err
			return
		}

		action, err := decodeAction(raw)
		if err != nil {
			c.logger.Debug("ignoring message", "error", err)
			continue
		}
		c.queue(action)
	}
}

// serve runs the frame loop until ctx ends or the client goes away.
// onOver is called for every finished round.
func (c *Conn) serve(ctx context.Context, tickRate int, onOver func(c *Conn, state core.GameState)) error {
	defer c.ws.Close()

	readDone := make(chan error, 1)
	go c.readLoop(readDone)

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			//nolint:errcheck // Best-effort close frame
			c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
			return nil

		case err := <-readDone:
			return err

		case <-ticker.C:
			if err := c.frame(onOver); err != nil {
				if errors.Is(err, websocket.ErrCloseSent) {
					return nil
				}
				return err
			}
		}
	}
}

// frame steps the game with the queued input and publishes the result.
func (c *Conn) frame(onOver func(c *Conn, state core.GameState)) error {
	result := c.game.Step(c.takeInput())

	if err := c.Send(SnapshotMsg{Type: MsgSnapshot, Snapshot: snapshotOf(c.game)}); err != nil {
		return err
	}

	if result.Has(core.EventRoundOver) {
		if onOver != nil {
			onOver(c, result.State)
		}
		return c.Send(OverMsg{Type: MsgOver, Score: result.State.Score, Level: result.State.Level})
	}
	return nil
}

// snapshotOf returns the richest state the game exposes.
func snapshotOf(g registry.Game) any {
	if s, ok := g.(interface{ Snapshot() worm.Snapshot }); ok {
		return s.Snapshot()
	}
	return g.State()
}

// ConnRegistry tracks live connections. Safe for concurrent use.
type ConnRegistry struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnRegistry creates an empty registry.
func NewConnRegistry() *ConnRegistry {
	return &ConnRegistry{conns: make(map[string]*Conn)}
}

// TryAdd registers c unless limit connections are already live. A
// non-positive limit means no limit.
func (r *ConnRegistry) TryAdd(c *Conn, limit int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > 0 && len(r.conns) >= limit {
		return false
	}
	r.conns[c.ID] = c
	return true
}

// Remove unregisters the connection with the given ID.
func (r *ConnRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, id)
}

// Count returns the number of live connections.
func (r *ConnRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
