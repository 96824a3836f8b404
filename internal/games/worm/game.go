// Package worm implements the worm arcade game: a chain of segments that
// steers continuously around a walled arena, grows by eating apples and
// leaves through a gap in the top wall once it is long enough. Every level
// the arena gets narrower.
package worm

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/registry"
)

// Game owns the arena, the worm, the apple, the score and the level.
// It is single-threaded and advanced one frame per Step.
type Game struct {
	cfg    config.WormConfig
	preset config.DifficultyPreset
	rng    *rand.Rand
	tick   uint64

	arena Arena
	worm  Worm
	apple Apple
	score int

	paused bool

	events []core.Event
}

// Package-level config path, set by the CLI before games are created.
var configPath string

// SetConfigPath sets the YAML file registry factories load from.
// An empty path uses the default search order.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	for _, preset := range config.Presets {
		registry.Register(GameID(preset), GameTitle(preset), func() (registry.Game, error) {
			cfg, err := config.LoadWorm(configPath)
			if err != nil {
				return nil, err
			}
			return New(cfg, preset)
		})
	}
}

// GameID returns the registry ID of a difficulty variant.
func GameID(preset config.DifficultyPreset) string {
	return "worm_" + string(preset)
}

// GameTitle returns the display name of a difficulty variant.
func GameTitle(preset config.DifficultyPreset) string {
	return fmt.Sprintf("Worm (%s)", preset.Title())
}

// New validates cfg and builds a game ready to step. A non-empty preset
// overrides cfg.PartsPerFrame. Invalid configurations return a
// *config.ValidationError.
func New(cfg config.WormConfig, preset config.DifficultyPreset) (*Game, error) {
	if preset != "" {
		config.ApplyWormPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		preset: preset,
		arena:  NewArena(cfg),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.preset == "" {
		return "worm"
	}
	return GameID(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset == "" {
		return "Worm"
	}
	return GameTitle(g.preset)
}

// Config returns the validated configuration the game runs with.
func (g *Game) Config() config.WormConfig {
	return g.cfg
}

// Reset restarts from level 1 with a zero score.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.restart()
}

func (g *Game) restart() {
	g.arena.Reset()
	g.score = 0
	g.paused = false
	g.worm.reset(g.arena.Start(g.cfg), g.cfg.InitialLength)
	g.relocateApple()
}

// Step advances the simulation by one frame. Input transitions are applied
// once, before any movement, and stay in effect for every sub-step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	g.applyInput(in)
	if !g.paused {
		g.advance()
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// applyInput handles presses before releases, so a press and release of
// the same key within one frame leaves the worm going straight.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		g.confirm()
	}
	if in.Has(core.ActionLeftPress) {
		g.worm.Left(true)
	}
	if in.Has(core.ActionRightPress) {
		g.worm.Right(true)
	}
	if in.Has(core.ActionLeftRelease) {
		g.worm.Left(false)
	}
	if in.Has(core.ActionRightRelease) {
		g.worm.Right(false)
	}
}

// confirm restarts an empty arena and otherwise toggles pause. A crashed
// worm that is still draining ignores it.
func (g *Game) confirm() {
	switch g.Status() {
	case StatusEmpty:
		g.restart()
		g.emit(core.EventRestarted)
	case StatusCrashed:
	default:
		g.paused = !g.paused
	}
}

func (g *Game) advance() {
	w := &g.worm
	lenBefore := w.Body.Len()

	for i := 0; i < g.cfg.PartsPerFrame && w.Running(); i++ {
		w.Angle += float64(w.Direction) * g.cfg.TurnStep
		head := w.Body.Head().Add(core.Polar(g.cfg.PartsSpacing, w.Angle))

		if w.TargetedLength <= float64(g.cfg.RequiredLength) &&
			head.Dist(g.apple.Pos) < g.cfg.AppleSize/2+g.cfg.PartSize/2 {
			g.score++
			w.TargetedLength += g.cfg.GrowthAmount
			g.relocateApple()
			g.emit(core.EventAte)
		}

		g.checkWalls(head)
		if w.Running() {
			w.Body.Push(head)
		}
	}

	g.reconcileLength()
	g.checkSelfCollision()

	if w.Body.Len() > 0 {
		return
	}
	switch {
	case w.levelCompleted:
		g.nextLevel()
	case lenBefore > 0:
		g.emit(core.EventRoundOver)
	}
}

// checkWalls tests a new head position against the arena inset by half a
// segment. Past the required length the top wall opens at the exit: inside
// its x-range the head may enter the corridor, and crossing the outer
// boundary completes the level.
func (g *Game) checkWalls(head core.Vec) {
	half := g.cfg.PartSize / 2
	inner := g.arena.Bounds.Inset(half)
	if inner.Contains(head) {
		return
	}

	if g.worm.Body.Len() > g.cfg.RequiredLength && head.Y < inner.Top {
		exit := g.arena.Exit
		switch {
		case head.X < exit.Left+half || head.X > exit.Right-half:
			g.crash()
		case head.Y < exit.Top:
			g.worm.completeLevel()
			g.emit(core.EventLevelCompleted)
		}
		return
	}

	g.crash()
}

func (g *Game) crash() {
	g.worm.crash()
	g.emit(core.EventCrashed)
}

// reconcileLength drops at most PartsPerFrame of the oldest segments while
// the body is longer than its target.
func (g *Game) reconcileLength() {
	w := &g.worm
	excess := float64(w.Body.Len()) - w.target()
	if excess <= 0 {
		return
	}
	w.Body.TrimOldest(min(g.cfg.PartsPerFrame, int(math.Ceil(excess))))
}

// checkSelfCollision tests the head against every segment outside the neck.
func (g *Game) checkSelfCollision() {
	w := &g.worm
	if !w.Running() {
		return
	}
	n := w.Body.Len() - g.cfg.NeckLength()
	if n <= 0 {
		return
	}
	head := w.Body.Head()
	for i := range n {
		if w.Body.At(i).Dist(head) < g.cfg.PartSize {
			g.crash()
			return
		}
	}
}

func (g *Game) nextLevel() {
	g.arena.NextLevel(g.cfg)
	g.score += g.cfg.LevelBonus
	g.worm.reset(g.arena.Start(g.cfg), g.cfg.InitialLength)
	g.relocateApple()
	g.emit(core.EventLevelAdvanced)
}

func (g *Game) relocateApple() {
	g.apple.Relocate(g.rng, g.arena.Bounds, g.cfg.BorderMargin, g.arena.Exit)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// Status derives the simulation state from the worm.
func (g *Game) Status() Status {
	w := &g.worm
	switch {
	case w.levelCompleted:
		return StatusLevelComplete
	case w.Body.Len() == 0:
		return StatusEmpty
	case w.crashed:
		return StatusCrashed
	default:
		return StatusRunning
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.arena.Level,
		GameOver: g.Status() == StatusEmpty,
		Paused:   g.paused,
	}
}

// exitVisible reports whether the exit gap is open.
func (g *Game) exitVisible() bool {
	return g.worm.TargetedLength > float64(g.cfg.RequiredLength) || g.worm.levelCompleted
}

// appleVisible reports whether the apple is on the field.
func (g *Game) appleVisible() bool {
	return g.worm.Running() && !g.exitVisible()
}
