package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Snapshot captures the simulation state for determinism checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Phase    int
	EndStage int
	Now      float64
	Score    int
	Round    int
	Paused   bool

	// Movement state, zero outside Playing
	Mode      int
	Dir       int
	Remaining float64
	Next      int

	Shots    int
	PlayerX  float64
	Entities int // every live entity, UI text and explosions included

	// Entity positions (each entity is 3 values: ID, X, Y)
	AlienData      []float64
	ProjectileData []float64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    int(g.phase),
		Now:      g.now,
		Score:    g.score,
		Round:    g.round,
		Paused:   g.Paused(),
		RNGState: g.rng.State(),
	}
	if st, ok := g.EndStage(); ok {
		snap.EndStage = int(st)
	}
	if m, ok := g.Movement(); ok {
		snap.Mode = int(m.Mode)
		snap.Dir = int(m.Dir)
		snap.Remaining = m.Remaining
		snap.Next = int(m.Next)
	}
	if g.play != nil {
		snap.Shots = g.play.projectiles.Shots()
		snap.PlayerX = g.play.player.X()
	}
	snap.Entities = g.world.Len()
	snap.AlienData = flatten(g.world.Of(core.KindAlien))
	snap.ProjectileData = flatten(g.world.Of(core.KindProjectile))
	return snap
}

func flatten(ents []*Entity) []float64 {
	data := make([]float64, 0, len(ents)*3)
	for _, e := range ents {
		data = append(data, float64(e.ID), e.Pos.X, e.Pos.Y)
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EndStage) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Now)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Mode)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Dir+1) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Remaining)
	h = h*31 + uint64(snap.Next+1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + uint64(snap.Entities) //#nosec G115 -- hash computation
	for _, v := range snap.AlienData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(len(snap.ProjectileData)) //#nosec G115 -- hash computation
	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + snap.RNGState
	return h
}
