package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Phase is the top-level game phase. Exactly one is active at a time.
type Phase int

const (
	PhaseStartup Phase = iota
	PhaseWaitForDevice
	PhaseSplash
	PhasePlaying
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStartup:
		return "startup"
	case PhaseWaitForDevice:
		return "wait_for_device"
	case PhaseSplash:
		return "splash"
	case PhasePlaying:
		return "playing"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// EndStage is the sub-phase of End.
type EndStage int

const (
	EndMinimumDisplay EndStage = iota // ellipsis animation, input ignored
	EndAbortable                      // fire starts a new match
)

func (s EndStage) String() string {
	if s == EndAbortable {
		return "abortable"
	}
	return "minimum_display"
}

// Scope state lives only while its phase is active. Entering a phase builds a
// fresh scope, so timers from an earlier visit are never resumed.

type splashScope struct {
	remaining float64
}

type playScope struct {
	mover       Mover
	projectiles *ProjectileTracker
	outcome     *OutcomeDetector
	player      *Player
	startedAt   float64
	destroyed   int
	paused      bool
}

type endScope struct {
	stage    EndStage
	steps    int
	elapsed  float64
	ellipsis *Entity
}

// request schedules a transition for the end of the current tick.
func (g *Game) request(to Phase) {
	g.next = to
	g.hasNext = true
}

// applyTransition runs the old phase's exit logic to completion and then the
// new phase's entry logic. It reports whether a transition happened.
func (g *Game) applyTransition() bool {
	if !g.hasNext {
		return false
	}
	from, to := g.phase, g.next
	g.hasNext = false

	g.exit(from)
	g.phase = to
	g.enter(to)
	return true
}

func (g *Game) exit(p Phase) {
	g.world.Sweep(p)
	switch p {
	case PhaseSplash:
		g.splash = nil
	case PhasePlaying:
		g.match = g.summarize()
		g.play = nil
	case PhaseEnd:
		g.end = nil
	}
}

func (g *Game) enter(p Phase) {
	switch p {
	case PhaseStartup:
		g.assets = LoadAssets(g.cfg)
	case PhaseWaitForDevice:
		g.spawnText(PhaseWaitForDevice, 0, g.assets.Messages.WaitForDevice)
	case PhaseSplash:
		g.enterSplash()
	case PhasePlaying:
		g.enterPlaying()
	case PhaseEnd:
		g.enterEnd()
	}
}

// tickStartup leaves Startup once the asset set exists.
func (g *Game) tickStartup() {
	if g.assets != nil {
		g.request(PhaseWaitForDevice)
	}
}

func (g *Game) tickWait(in core.InputFrame) {
	if in.DevicePresent {
		g.request(PhaseSplash)
	}
}

func (g *Game) enterSplash() {
	g.splash = &splashScope{remaining: g.cfg.Timing.SplashWait}
	msg := g.assets.Messages
	g.spawnText(PhaseSplash, 48, msg.Title)
	g.spawnText(PhaseSplash, 16, fmt.Sprintf("%s  ← →", msg.Move))
	g.spawnText(PhaseSplash, 0, fmt.Sprintf("%s  space", msg.Shoot))
	g.spawnText(PhaseSplash, -48, msg.PressFire)
}

func (g *Game) tickSplash(dt float64, in core.InputFrame) {
	s := g.splash
	if in.FirePressed() {
		g.request(PhasePlaying)
		return
	}

	switch g.cfg.Timing.SplashTimer {
	case config.SplashPresence:
		if !in.DevicePresent {
			s.remaining = g.cfg.Timing.SplashWait
			return
		}
		s.remaining -= dt
	default:
		s.remaining -= dt
	}
	if s.remaining <= 0 {
		g.request(PhasePlaying)
	}
}

func (g *Game) enterPlaying() {
	g.result = nil
	g.score = 0

	g.spawnGrid()
	playerEnt := g.world.Spawn(Entity{
		Kind:      core.KindPlayer,
		Phase:     PhasePlaying,
		Pos:       core.V(0, -g.cfg.Field.HalfHeight+g.cfg.Field.Padding),
		SpawnedAt: g.now,
	})

	g.play = &playScope{
		mover:       g.newMover(),
		projectiles: NewProjectileTracker(g.world, g.cfg.Projectile.Speed, g.cfg.Field.HalfHeight),
		outcome:     NewOutcomeDetector(g.cfg.LossLine()),
		player: &Player{
			Entity:    playerEnt,
			halfWidth: g.cfg.Field.HalfWidth,
			maxSpeed:  g.cfg.Player.MaxSpeed,
			deadZone:  g.cfg.Player.DeadZone,
		},
		startedAt: g.now,
	}
}

// spawnGrid creates the alien formation, top row first, left to right.
func (g *Game) spawnGrid() {
	a := g.cfg.Aliens
	left := -g.cfg.Field.HalfWidth + a.Width/2
	top := g.cfg.Field.HalfHeight - g.cfg.Field.Padding - a.Height/2
	for row := 0; row < a.Rows; row++ {
		for col := 0; col < a.Columns; col++ {
			pos := core.V(left+float64(col)*g.cfg.CellStep(), top-float64(row)*g.cfg.RowStep())
			g.world.Spawn(Entity{
				Kind:      core.KindAlien,
				Phase:     PhasePlaying,
				Pos:       pos,
				Origin:    pos,
				SpawnedAt: g.now,
				Variant:   row,
			})
		}
	}
}

// tickPlaying runs the play pipeline: steer, fire, swarm, projectiles,
// collisions, outcome, then destruction and effect expiry.
func (g *Game) tickPlaying(dt float64, in core.InputFrame) {
	ps := g.play

	if ps.player.Steer(in, dt) {
		g.world.Moved(ps.player.Entity)
	}
	for _, a := range core.FireActions {
		if in.Has(a) {
			ps.projectiles.Request(ps.player.X(), g.cfg.FireOriginY())
		}
	}

	aliens := g.world.Of(core.KindAlien)
	ps.mover.Advance(g.now, dt, aliens)
	if dt > 0 {
		for _, a := range aliens {
			g.world.Moved(a)
		}
	}
	ps.projectiles.Advance(g.now, dt)

	// collision and outcome read the same post-movement snapshot
	hits := Resolve(ps.projectiles.Live(), aliens, g.cfg.Projectile.CollisionDistance)
	if outcome, raised := ps.outcome.Check(aliens); raised {
		o := outcome
		g.result = &o
		g.request(PhaseEnd)
	}

	for _, h := range hits {
		g.world.Despawn(h.Projectile.ID)
		g.world.Despawn(h.Alien.ID)
		ps.destroyed++
		g.score += g.cfg.Aliens.Points
		if variant, ok := g.effects.Pick(); ok {
			g.world.Spawn(Entity{
				Kind:      core.KindExplosion,
				Phase:     PhasePlaying,
				Pos:       h.Alien.Pos,
				Variant:   variant,
				SpawnedAt: g.now,
				Expires:   g.now + g.cfg.Effects.Duration,
			})
			g.world.Emit(core.KindSound, PhasePlaying, SoundExplosion)
		}
	}

	for _, e := range g.world.Of(core.KindExplosion) {
		if g.now >= e.Expires {
			g.world.Despawn(e.ID)
		}
	}
}

func (g *Game) enterEnd() {
	g.end = &endScope{stage: EndMinimumDisplay}
	msg := g.assets.Messages

	won := g.result != nil && g.result.Won
	if won {
		g.spawnText(PhaseEnd, 16, msg.Win)
		g.world.Emit(core.KindSound, PhaseEnd, SoundWin)
	} else {
		g.spawnText(PhaseEnd, 16, msg.Lose)
		g.world.Emit(core.KindSound, PhaseEnd, SoundGameOver)
	}
	g.end.ellipsis = g.spawnText(PhaseEnd, 0, "")

	g.match.Won = won
	g.hasMatch = true

	if won {
		g.round++
	} else {
		g.round = 0
	}

	if g.cfg.Timing.EndSteps <= 0 {
		g.makeAbortable()
	}
}

func (g *Game) tickEnd(dt float64, in core.InputFrame) {
	es := g.end
	if es.stage == EndAbortable {
		if in.FirePressed() || in.Has(core.ActionRestart) {
			g.request(PhasePlaying)
		}
		return
	}

	es.elapsed += dt
	for es.stage == EndMinimumDisplay && es.elapsed >= g.cfg.Timing.EndStep {
		es.elapsed -= g.cfg.Timing.EndStep
		es.steps++
		es.ellipsis.Label = strings.Repeat(".", es.steps)
		g.world.Moved(es.ellipsis)
		if es.steps >= g.cfg.Timing.EndSteps {
			g.makeAbortable()
		}
	}
}

// summarize collects the statistics of the match being left.
func (g *Game) summarize() MatchSummary {
	m := MatchSummary{
		Variant:  g.ID(),
		Movement: g.movement,
		Score:    g.score,
		Round:    g.round,
	}
	if ps := g.play; ps != nil {
		m.AliensDestroyed = ps.destroyed
		m.ShotsFired = ps.projectiles.Shots()
		m.Duration = g.now - ps.startedAt
	}
	return m
}

func (g *Game) makeAbortable() {
	g.end.stage = EndAbortable
	g.spawnText(PhaseEnd, -32, g.assets.Messages.Retry)
}

func (g *Game) spawnText(p Phase, y float64, label string) *Entity {
	return g.world.Spawn(Entity{
		Kind:      core.KindText,
		Phase:     p,
		Pos:       core.V(0, y),
		Label:     label,
		SpawnedAt: g.now,
	})
}
