package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestWorldSweepOnlyExitedPhase(t *testing.T) {
	rec := &core.Recorder{}
	w := NewWorld(rec)

	a := w.Spawn(Entity{Kind: core.KindAlien, Phase: PhasePlaying})
	txt := w.Spawn(Entity{Kind: core.KindText, Phase: PhaseSplash, Label: "hi"})
	b := w.Spawn(Entity{Kind: core.KindProjectile, Phase: PhasePlaying})
	rec.Reset()

	if n := w.Sweep(PhasePlaying); n != 2 {
		t.Fatalf("Sweep() = %d, expected 2", n)
	}
	if w.Len() != 1 || w.Get(txt.ID) == nil {
		t.Errorf("splash text should survive, world has %d entities", w.Len())
	}

	despawns := rec.Filter(core.OpDespawn, core.KindAlien)
	despawns = append(despawns, rec.Filter(core.OpDespawn, core.KindProjectile)...)
	if len(rec.Intents) != 2 {
		t.Fatalf("intents = %d, expected 2 despawns", len(rec.Intents))
	}
	if rec.Intents[0].ID != a.ID || rec.Intents[1].ID != b.ID {
		t.Errorf("despawn order = %d, %d; expected %d, %d", rec.Intents[0].ID, rec.Intents[1].ID, a.ID, b.ID)
	}
	if len(despawns) != 2 {
		t.Errorf("despawn intents = %d, expected 2", len(despawns))
	}
}

func TestWorldSpawnDespawn(t *testing.T) {
	rec := &core.Recorder{}
	w := NewWorld(rec)

	e1 := w.Spawn(Entity{Kind: core.KindAlien})
	e2 := w.Spawn(Entity{Kind: core.KindAlien})
	if e2.ID <= e1.ID {
		t.Errorf("ids not increasing: %d then %d", e1.ID, e2.ID)
	}
	if w.Count(core.KindAlien) != 2 {
		t.Errorf("Count(alien) = %d, expected 2", w.Count(core.KindAlien))
	}

	if !w.Despawn(e1.ID) {
		t.Error("Despawn(existing) = false")
	}
	if w.Despawn(e1.ID) {
		t.Error("Despawn(twice) = true")
	}
	if got := w.Of(core.KindAlien); len(got) != 1 || got[0] != e2 {
		t.Errorf("Of(alien) = %v, expected only the second alien", got)
	}

	if len(rec.Filter(core.OpSpawn, core.KindAlien)) != 2 || len(rec.Filter(core.OpDespawn, core.KindAlien)) != 1 {
		t.Errorf("intents = %v", rec.Intents)
	}
}
