// Package invaders implements the invaders arcade shooter.
//
// A swarm of aliens sweeps across the field and descends one row at every
// edge while the player shoots upward. The match is won when the swarm is
// gone and lost when it reaches the defense line. A phase state machine
// sequences Startup, WaitForDevice, Splash, Playing and End.
package invaders

import (
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Variant IDs.
const (
	IDStateMachine = "invaders"
	IDCurve        = "invaders_curve"
)

var (
	cfgMu     sync.RWMutex
	gameCfg   = config.DefaultInvadersConfig()
	gameCfgOK = false
)

// SetConfig installs the validated configuration used by games created
// through the registry. The CLI calls it once at setup.
func SetConfig(cfg config.InvadersConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	gameCfg = cfg
	gameCfgOK = true
}

func currentConfig() config.InvadersConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	if !gameCfgOK {
		return config.DefaultInvadersConfig()
	}
	return gameCfg
}

// CheckConfig validates cfg and builds every movement it can select, so that
// a bad configuration fails once at setup instead of mid-game.
func CheckConfig(cfg config.InvadersConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	_, err := buildCurve(cfg, cfg.Aliens.Speed)
	return err
}

// MatchSummary describes a finished match.
type MatchSummary struct {
	Variant         string
	Movement        string
	Won             bool
	Score           int
	Round           int
	AliensDestroyed int
	ShotsFired      int
	Duration        float64 // seconds of unpaused play
}

// Game is the invaders simulation. It implements registry.Game.
type Game struct {
	id         string
	fixedCfg   *config.InvadersConfig
	cfg        config.InvadersConfig
	movement   string
	runtime    core.RuntimeConfig
	sink       core.EntitySink
	world      *World
	rng        *SimpleRNG
	effects    *EffectPicker
	difficulty *config.DifficultyManager
	assets     *Assets

	phase   Phase
	next    Phase
	hasNext bool

	// now is simulation time: the sum of tick deltas, frozen while paused.
	now float64

	splash *splashScope
	play   *playScope
	end    *endScope

	result   *Outcome
	score    int
	round    int
	match    MatchSummary
	hasMatch bool
}

// New creates the state-machine variant using the installed configuration.
func New() *Game {
	return &Game{id: IDStateMachine}
}

// NewCurveVariant creates the keyframe-curve variant.
func NewCurveVariant() *Game {
	return &Game{id: IDCurve}
}

// NewWithConfig creates a game bound to cfg instead of the installed configuration.
// The movement variant follows cfg.Aliens.Movement.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{id: IDStateMachine, fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.id == IDCurve {
		return "Invaders (Curve)"
	}
	return "Invaders"
}

// SetSink sets where spawn, move and despawn intents go. Nil discards them.
func (g *Game) SetSink(sink core.EntitySink) {
	g.sink = sink
	if g.world != nil {
		g.world.SetSink(sink)
	}
}

// Reset rebuilds the game from scratch and enters Startup.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		g.cfg = currentConfig()
	}

	g.movement = g.cfg.Aliens.Movement
	if g.id == IDCurve {
		g.movement = config.MovementCurve
	}

	g.world = NewWorld(g.sink)
	g.rng = NewSimpleRNG(runtime.Seed)
	g.effects = NewEffectPicker(g.rng, g.cfg.Effects.Variants)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.assets = nil

	g.now = 0
	g.hasNext = false
	g.splash, g.play, g.end = nil, nil, nil
	g.result = nil
	g.score, g.round = 0, 0
	g.match, g.hasMatch = MatchSummary{}, false

	g.phase = PhaseStartup
	g.enter(PhaseStartup)
}

// Step advances the simulation by one tick of clk.Delta() seconds.
func (g *Game) Step(clk core.Clock, in core.InputFrame) core.StepResult {
	dt := clk.Delta()
	if dt < 0 {
		dt = 0
	}
	prev := g.phase

	if g.phase == PhasePlaying && (in.Has(core.ActionPause) || in.Has(core.ActionBack)) {
		g.play.paused = !g.play.paused
	}
	if g.Paused() {
		return core.StepResult{State: g.State(), PrevPhase: prev.String()}
	}
	g.now += dt

	switch g.phase {
	case PhaseStartup:
		g.tickStartup()
	case PhaseWaitForDevice:
		g.tickWait(in)
	case PhaseSplash:
		g.tickSplash(dt, in)
	case PhasePlaying:
		g.tickPlaying(dt, in)
	case PhaseEnd:
		g.tickEnd(dt, in)
	}

	changed := g.applyTransition()
	return core.StepResult{State: g.State(), PhaseChanged: changed, PrevPhase: prev.String()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseEnd,
		Won:      g.phase == PhaseEnd && g.result != nil && g.result.Won,
		Paused:   g.Paused(),
		Phase:    g.phase.String(),
	}
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// EndStage returns the End sub-phase; ok is false outside End.
func (g *Game) EndStage() (EndStage, bool) {
	if g.end == nil {
		return EndMinimumDisplay, false
	}
	return g.end.stage, true
}

// Paused reports whether play is paused.
func (g *Game) Paused() bool {
	return g.play != nil && g.play.paused
}

// Movement returns the swarm movement state; ok is false outside Playing.
func (g *Game) Movement() (Movement, bool) {
	if g.play == nil {
		return Movement{}, false
	}
	return g.play.mover.State(), true
}

// Outcome returns the raised outcome of the current or just finished match.
func (g *Game) Outcome() (Outcome, bool) {
	if g.result == nil {
		return Outcome{}, false
	}
	return *g.result, true
}

// LastMatch returns the summary of the most recently finished match.
func (g *Game) LastMatch() (MatchSummary, bool) {
	return g.match, g.hasMatch
}

// Round returns the zero-based round; it counts consecutive wins.
func (g *Game) Round() int {
	return g.round
}

// MovementVariant returns "state_machine" or "curve".
func (g *Game) MovementVariant() string {
	return g.movement
}

// Aliens returns the live aliens in id order.
func (g *Game) Aliens() []*Entity {
	return g.world.Of(core.KindAlien)
}

// Projectiles returns the live projectiles in id order.
func (g *Game) Projectiles() []*Entity {
	return g.world.Of(core.KindProjectile)
}

// newMover builds the swarm mover for a new match.
func (g *Game) newMover() Mover {
	speed := g.difficulty.Speed(g.cfg.Aliens.Speed, g.round)
	if g.movement == config.MovementCurve {
		// construction errors are caught by CheckConfig at setup
		if c, err := buildCurve(g.cfg, speed); err == nil {
			return NewCurveMover(c, g.now)
		}
	}
	return NewSwarm(speed, SwarmBounds{
		HalfWidth:   g.cfg.Field.HalfWidth,
		RowStep:     g.cfg.RowStep(),
		DefenseLine: g.cfg.DefenseLine(),
	})
}

// buildCurve derives the zig-zag path the state machine would follow for the
// configured grid, using closed-form sweep and descent lengths.
func buildCurve(cfg config.InvadersConfig, speed float64) (*Curve, error) {
	a := cfg.Aliens
	hw := cfg.Field.HalfWidth
	span := float64(a.Columns-1) * cfg.CellStep()
	rightmost := -hw + a.Width/2 + span
	bottom := cfg.Field.HalfHeight - cfg.Field.Padding - a.Height/2 - float64(a.Rows-1)*cfg.RowStep()

	return ZigZagCurve(hw-rightmost, 2*hw-span, cfg.RowStep(), bottom-cfg.DefenseLine(), speed)
}

func init() {
	registry.Register(registry.Info{
		ID:          IDStateMachine,
		Title:       "Invaders",
		Movement:    config.MovementStateMachine,
		Description: "Swarm sweeps sideways and drops a row at each edge",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.Info{
		ID:          IDCurve,
		Title:       "Invaders (Curve)",
		Movement:    config.MovementCurve,
		Description: "Swarm follows a keyframed zig-zag path",
	}, func() registry.Game {
		return NewCurveVariant()
	})
}
