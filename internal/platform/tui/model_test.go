package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm"
	"github.com/vovakirdan/tui-worm/internal/storage"
)

// scriptedGame reports a finished round on a chosen tick and records inputs.
type scriptedGame struct {
	ticks     int
	overAt    int
	score     int
	level     int
	inputs    []core.InputFrame
	resetWith core.RuntimeConfig
}

func (g *scriptedGame) ID() string    { return "worm_scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) { g.resetWith = cfg }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.inputs = append(g.inputs, in.Clone())
	res := core.StepResult{State: g.State()}
	if g.ticks == g.overAt {
		res.Events = []core.Event{core.EventRoundOver}
	}
	return res
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.score, Level: g.level, GameOver: g.overAt > 0 && g.ticks >= g.overAt}
}

func tick(m Model, at time.Time) Model {
	next, _ := m.Update(TickMsg(at))
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelSavesScoreOnRoundOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{overAt: 3, score: 12, level: 2}
	m := newSessionModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}, "session-1")
	m.Init()

	t0 := time.Unix(1000, 0)
	for i := range 6 {
		m = tick(m, t0.Add(time.Duration(i)*33*time.Millisecond))
	}

	scores, err := store.SessionScores("session-1")
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved round, got %d", len(scores))
	}
	if scores[0].Score != 12 || scores[0].Level != 2 || scores[0].GameID != "worm_scripted" {
		t.Errorf("saved round = %+v", scores[0])
	}
	if game.resetWith.Seed != 1 {
		t.Errorf("Init should reset the game with the runtime config, got %+v", game.resetWith)
	}
}

func TestModelTurnKeyBecomesTransitions(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	t0 := time.Unix(1000, 0)
	m.now = func() time.Time { return t0 }

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m, t0.Add(10*time.Millisecond))
	m = tick(m, t0.Add(DefaultFirstHoldWindow+time.Millisecond))

	if len(game.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionLeftPress) {
		t.Error("first tick should carry LeftPress")
	}
	if !game.inputs[1].Has(core.ActionLeftRelease) {
		t.Error("tick after the hold window should carry LeftRelease")
	}
	if game.inputs[1].Has(core.ActionLeftPress) {
		t.Error("input frame should be cleared between ticks")
	}
}

func TestModelPauseReleasesHeldTurn(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	t0 := time.Unix(1000, 0)
	m.now = func() time.Time { return t0 }

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m, t0.Add(10*time.Millisecond))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = tick(m, t0.Add(20*time.Millisecond))

	if len(game.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.inputs))
	}
	in := game.inputs[1]
	if !in.Has(core.ActionConfirm) || !in.Has(core.ActionLeftRelease) {
		t.Errorf("pause should carry LeftRelease with Confirm, got %v", in.Actions)
	}

	// Held again only after a fresh press.
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m, t0.Add(30*time.Millisecond))
	if !game.inputs[2].Has(core.ActionLeftPress) {
		t.Errorf("next left should be a new press, got %v", game.inputs[2].Actions)
	}
}

func TestModelBackOnlyBetweenRounds(t *testing.T) {
	game := &scriptedGame{overAt: 2}
	m := newSessionModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, "s")
	t0 := time.Unix(1000, 0)

	m = tick(m, t0)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored mid-round")
	}

	m = tick(m, t0.Add(33*time.Millisecond))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should return to the menu once the round is over")
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelViewWithWorm(t *testing.T) {
	g, err := worm.New(config.DefaultWormConfig(), config.DifficultyMedium)
	if err != nil {
		t.Fatalf("worm.New() failed: %v", err)
	}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7})
	m.Init()
	m = tick(m, time.Unix(1000, 0))

	view := m.View()
	if !strings.Contains(view, "Worm (Medium)") {
		t.Error("footer should show the game title")
	}
	if !strings.Contains(view, "@") {
		t.Error("view should contain the worm head")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, expected 24", lines)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("resized view has %d lines, expected 30", lines)
	}
}
