package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm"
	"github.com/vovakirdan/tui-worm/internal/registry"
	"github.com/vovakirdan/tui-worm/internal/storage"
)

// finishingGame ends its round on the third frame.
type finishingGame struct{ ticks int }

func (g *finishingGame) ID() string               { return "stream_finishing" }
func (g *finishingGame) Title() string            { return "Finishing" }
func (g *finishingGame) Reset(core.RuntimeConfig) {}
func (g *finishingGame) Render(*core.Screen)      {}
func (g *finishingGame) State() core.GameState {
	return core.GameState{Score: 9, Level: 2, GameOver: g.ticks >= 3}
}

func (g *finishingGame) Step(core.InputFrame) core.StepResult {
	g.ticks++
	res := core.StepResult{State: g.State()}
	if g.ticks == 3 {
		res.Events = []core.Event{core.EventRoundOver}
	}
	return res
}

func init() {
	registry.Register("stream_finishing", "Finishing", func() (registry.Game, error) {
		return &finishingGame{}, nil
	})
}

type envelope struct {
	Type     string          `json:"t"`
	ID       string          `json:"i"`
	Game     string          `json:"g"`
	Snapshot json.RawMessage `json:"s"`
	Score    int             `json:"p"`
	Level    int             `json:"l"`
	Message  string          `json:"m"`
}

func startServer(t *testing.T, cfg ServerConfig) (*Server, string) {
	t.Helper()
	srv := NewServer(cfg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Shutdown()
		ts.Close()
	})
	return srv, "ws" + strings.TrimPrefix(ts.URL, "http") + Path
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%s) failed: %v", url, err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func read(t *testing.T, ws *websocket.Conn) envelope {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg envelope
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() failed: %v", err)
	}
	return msg
}

func readUntil(t *testing.T, ws *websocket.Conn, limit int, match func(envelope) bool) envelope {
	t.Helper()
	for range limit {
		if msg := read(t, ws); match(msg) {
			return msg
		}
	}
	t.Fatalf("no matching message within %d messages", limit)
	return envelope{}
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		raw     string
		want    core.Action
		wantErr bool
	}{
		{`{"t":"k","k":"left","p":1}`, core.ActionLeftPress, false},
		{`{"t":"k","k":"left","p":0}`, core.ActionLeftRelease, false},
		{`{"t":"k","k":"right","p":1}`, core.ActionRightPress, false},
		{`{"t":"k","k":"right"}`, core.ActionRightRelease, false},
		{`{"t":"c"}`, core.ActionConfirm, false},
		{`{"t":"k","k":"up","p":1}`, core.ActionNone, true},
		{`{"t":"j"}`, core.ActionNone, true},
		{`not json`, core.ActionNone, true},
	}

	for _, tt := range tests {
		got, err := decodeAction([]byte(tt.raw))
		if (err != nil) != tt.wantErr {
			t.Errorf("decodeAction(%s) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("decodeAction(%s) = %v, expected %v", tt.raw, got, tt.want)
		}
	}
}

func TestStreamWelcomeAndSnapshots(t *testing.T) {
	_, url := startServer(t, ServerConfig{TickRate: 100, Seed: 3})
	ws := dial(t, url+"?game=worm_hard")

	welcome := read(t, ws)
	if welcome.Type != MsgWelcome || welcome.Game != "worm_hard" || welcome.ID == "" {
		t.Fatalf("unexpected welcome: %+v", welcome)
	}

	msg := readUntil(t, ws, 5, func(m envelope) bool { return m.Type == MsgSnapshot })
	var snap worm.Snapshot
	if err := json.Unmarshal(msg.Snapshot, &snap); err != nil {
		t.Fatalf("decoding snapshot failed: %v", err)
	}
	if snap.Status != worm.StatusRunning || snap.GameID != "worm_hard" || len(snap.Segments) == 0 {
		t.Errorf("unexpected first snapshot: status %s, game %s, %d segments", snap.Status, snap.GameID, len(snap.Segments))
	}

	if err := ws.WriteJSON(ClientMessage{Type: MsgConfirm}); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}
	readUntil(t, ws, 50, func(m envelope) bool {
		if m.Type != MsgSnapshot {
			return false
		}
		var s worm.Snapshot
		return json.Unmarshal(m.Snapshot, &s) == nil && s.Paused
	})
}

func TestStreamDefaultGame(t *testing.T) {
	_, url := startServer(t, ServerConfig{TickRate: 100})
	ws := dial(t, url)

	if welcome := read(t, ws); welcome.Game != DefaultGame {
		t.Errorf("welcome game = %s, expected %s", welcome.Game, DefaultGame)
	}
}

func TestStreamRoundOverSavesScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	_, url := startServer(t, ServerConfig{TickRate: 100, Store: store})
	ws := dial(t, url+"?game=stream_finishing")
	welcome := read(t, ws)

	over := readUntil(t, ws, 10, func(m envelope) bool { return m.Type == MsgOver })
	if over.Score != 9 || over.Level != 2 {
		t.Errorf("round over = %+v, expected score 9 level 2", over)
	}

	scores, err := store.SessionScores(welcome.ID)
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].GameID != "stream_finishing" || scores[0].Score != 9 {
		t.Errorf("saved rounds = %v", scores)
	}
}

func TestStreamUnknownGame(t *testing.T) {
	_, url := startServer(t, ServerConfig{TickRate: 100})

	_, resp, err := websocket.DefaultDialer.Dial(url+"?game=pong", nil)
	if err == nil {
		t.Fatal("expected dial to fail for an unknown game")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %v", resp)
	}
}

func TestStreamServerFull(t *testing.T) {
	_, url := startServer(t, ServerConfig{TickRate: 100, MaxConns: 1})
	first := dial(t, url)
	read(t, first)

	second := dial(t, url)
	if msg := read(t, second); msg.Type != MsgError {
		t.Errorf("second connection got %+v, expected an error", msg)
	}
}

func TestStreamRefusesAfterShutdown(t *testing.T) {
	srv, url := startServer(t, ServerConfig{TickRate: 100})
	srv.Shutdown()

	ws := dial(t, url)
	msg := read(t, ws)
	if msg.Type != MsgError || msg.Message != "server shutting down" {
		t.Errorf("connection after shutdown got %+v, expected a shutdown error", msg)
	}
	if srv.Conns().Count() != 0 {
		t.Errorf("expected no live connections, got %d", srv.Conns().Count())
	}
}

func TestConnRegistryTryAddRespectsLimit(t *testing.T) {
	r := NewConnRegistry()

	var wg sync.WaitGroup
	var mu sync.Mutex
	added := 0
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := &Conn{ID: fmt.Sprintf("c%d", i)}
			if r.TryAdd(c, 8) {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if added != 8 || r.Count() != 8 {
		t.Errorf("added %d, Count() = %d, expected exactly 8", added, r.Count())
	}

	r.Remove("c0")
	r.Remove("c1")
	if !r.TryAdd(&Conn{ID: "late"}, 0) {
		t.Error("a zero limit should always admit")
	}
}

func TestConnQueueKeepsLastTransition(t *testing.T) {
	tests := []struct {
		name    string
		queued  []core.Action
		want    []core.Action
		notWant []core.Action
	}{
		{
			"press release press",
			[]core.Action{core.ActionLeftPress, core.ActionLeftRelease, core.ActionLeftPress},
			[]core.Action{core.ActionLeftPress},
			[]core.Action{core.ActionLeftRelease},
		},
		{
			"release press release",
			[]core.Action{core.ActionRightRelease, core.ActionRightPress, core.ActionRightRelease},
			[]core.Action{core.ActionRightRelease},
			[]core.Action{core.ActionRightPress},
		},
		{
			"keys are independent",
			[]core.Action{core.ActionLeftPress, core.ActionRightPress, core.ActionRightRelease, core.ActionConfirm},
			[]core.Action{core.ActionLeftPress, core.ActionRightRelease, core.ActionConfirm},
			[]core.Action{core.ActionRightPress, core.ActionLeftRelease},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &Conn{pending: core.NewInputFrame()}
			for _, a := range tc.queued {
				c.queue(a)
			}
			in := c.takeInput()
			for _, a := range tc.want {
				if !in.Has(a) {
					t.Errorf("frame %v missing %s", in.Actions, a)
				}
			}
			for _, a := range tc.notWant {
				if in.Has(a) {
					t.Errorf("frame %v should not carry %s", in.Actions, a)
				}
			}
			if !c.takeInput().Empty() {
				t.Error("takeInput should drain the queue")
			}
		})
	}
}

func TestStreamShutdownEndsGames(t *testing.T) {
	srv, url := startServer(t, ServerConfig{TickRate: 100})
	ws := dial(t, url)
	read(t, ws)

	if srv.Conns().Count() != 1 {
		t.Fatalf("expected 1 live connection, got %d", srv.Conns().Count())
	}

	srv.Shutdown()
	if srv.Conns().Count() != 0 {
		t.Errorf("expected no live connections after shutdown, got %d", srv.Conns().Count())
	}

	ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
				t.Errorf("expected a going-away close, got %v", err)
			}
			break
		}
	}
}
