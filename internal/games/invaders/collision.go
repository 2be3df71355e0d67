package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Hit is a projectile and the alien it struck.
type Hit struct {
	Projectile *Entity
	Alien      *Entity
}

// Resolve pairs projectiles with aliens within dist on both axes.
//
// Each projectile is consumed by its first match, and an alien already struck
// in this pass is not matched again, so every entity appears in at most one
// hit. Resolve does not mutate anything; callers destroy the pairs once every
// stage of the tick has read the same snapshot.
func Resolve(projectiles, aliens []*Entity, dist float64) []Hit {
	var hits []Hit
	claimed := make(map[core.EntityID]bool, len(aliens))
	for _, p := range projectiles {
		for _, a := range aliens {
			if claimed[a.ID] {
				continue
			}
			if core.Near(a.Pos, p.Pos, dist) {
				claimed[a.ID] = true
				hits = append(hits, Hit{Projectile: p, Alien: a})
				break
			}
		}
	}
	return hits
}

// EffectPicker chooses a destruction effect variant for each hit.
// Only the lower half of the variant range shows an effect.
type EffectPicker struct {
	rng      *SimpleRNG
	variants int
}

// NewEffectPicker creates a picker drawing from rng over [0, variants).
func NewEffectPicker(rng *SimpleRNG, variants int) *EffectPicker {
	if variants < 1 {
		variants = 1
	}
	return &EffectPicker{rng: rng, variants: variants}
}

// Pick draws a variant index and reports whether it triggers an effect.
func (p *EffectPicker) Pick() (int, bool) {
	idx := p.rng.Intn(p.variants)
	return idx, idx < p.variants/2
}
