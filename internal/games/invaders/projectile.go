package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ProjectileTracker spawns and advances player projectiles.
//
// At most one fire command is honoured per tick: repeated requests in the
// same tick overwrite each other and the last one wins.
type ProjectileTracker struct {
	world *World
	speed float64
	top   float64

	pending    bool
	pendingPos core.Vec2

	shots int
}

// NewProjectileTracker creates a tracker moving projectiles up at speed and
// despawning them once they reach top.
func NewProjectileTracker(w *World, speed, top float64) *ProjectileTracker {
	return &ProjectileTracker{world: w, speed: speed, top: top}
}

// Request records a fire command at (x, y) for this tick.
func (t *ProjectileTracker) Request(x, y float64) {
	t.pending = true
	t.pendingPos = core.V(x, y)
}

// Advance moves live projectiles, despawns those past the top edge, then
// spawns the pending projectile at its origin. The new projectile starts
// moving on the following tick. It returns the spawned projectile, if any.
func (t *ProjectileTracker) Advance(now, dt float64) *Entity {
	if dt < 0 {
		dt = 0
	}
	dy := t.speed * dt
	for _, p := range t.world.Of(core.KindProjectile) {
		p.Pos.Y += dy
		if p.Pos.Y >= t.top {
			t.world.Despawn(p.ID)
			continue
		}
		if dy > 0 {
			t.world.Moved(p)
		}
	}

	if !t.pending {
		return nil
	}
	t.pending = false
	t.shots++
	p := t.world.Spawn(Entity{
		Kind:      core.KindProjectile,
		Phase:     PhasePlaying,
		Pos:       t.pendingPos,
		Origin:    t.pendingPos,
		SpawnedAt: now,
	})
	t.world.Emit(core.KindSound, PhasePlaying, SoundShot)
	return p
}

// Live returns the live projectiles in id order.
func (t *ProjectileTracker) Live() []*Entity {
	return t.world.Of(core.KindProjectile)
}

// Shots returns how many projectiles were fired.
func (t *ProjectileTracker) Shots() int {
	return t.shots
}
