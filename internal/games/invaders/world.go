package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Entity is anything the simulation spawns: aliens, projectiles, the player,
// explosions and UI text. Every entity is owned by exactly one phase.
type Entity struct {
	ID    core.EntityID
	Kind  core.EntityKind
	Phase Phase
	Pos   core.Vec2

	// Origin is the grid position at spawn; curve movement samples relative to it.
	Origin    core.Vec2
	SpawnedAt float64

	Variant int
	Label   string

	// Expires is the simulation time at which the entity despawns; zero means never.
	Expires float64
}

// World is the arena holding every live entity in spawn (and therefore id) order.
// All spawns and despawns go through it so the sink sees a consistent stream.
type World struct {
	nextID   core.EntityID
	entities []*Entity
	sink     core.EntitySink
}

// NewWorld creates an empty world reporting to sink. A nil sink discards intents.
func NewWorld(sink core.EntitySink) *World {
	if sink == nil {
		sink = core.Discard
	}
	return &World{sink: sink}
}

// SetSink replaces the intent sink.
func (w *World) SetSink(sink core.EntitySink) {
	if sink == nil {
		sink = core.Discard
	}
	w.sink = sink
}

// Spawn adds a copy of e with a fresh id and emits a spawn intent.
func (w *World) Spawn(e Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	ent := &e
	w.entities = append(w.entities, ent)
	w.emit(core.OpSpawn, ent)
	return ent
}

// Emit sends a one-shot intent that has no lasting entity, such as a sound.
func (w *World) Emit(kind core.EntityKind, phase Phase, label string) {
	w.nextID++
	w.sink.Emit(core.Intent{
		Op:    core.OpSpawn,
		ID:    w.nextID,
		Kind:  kind,
		Phase: phase.String(),
		Label: label,
	})
}

// Moved reports that e changed position or label.
func (w *World) Moved(e *Entity) {
	w.emit(core.OpMove, e)
}

// Despawn removes the entity with the given id. It reports whether it existed.
func (w *World) Despawn(id core.EntityID) bool {
	for i, e := range w.entities {
		if e.ID == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			w.emit(core.OpDespawn, e)
			return true
		}
	}
	return false
}

// Sweep despawns every entity owned by phase, in id order, and returns how many went.
func (w *World) Sweep(phase Phase) int {
	kept := w.entities[:0]
	var gone []*Entity
	for _, e := range w.entities {
		if e.Phase == phase {
			gone = append(gone, e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept

	for _, e := range gone {
		w.emit(core.OpDespawn, e)
	}
	return len(gone)
}

// Of returns the live entities of a kind in id order.
// The slice is freshly allocated; the entities are shared.
func (w *World) Of(kind core.EntityKind) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities of a kind.
func (w *World) Count(kind core.EntityKind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Get returns the entity with the given id, or nil.
func (w *World) Get(id core.EntityID) *Entity {
	for _, e := range w.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

func (w *World) emit(op core.IntentOp, e *Entity) {
	w.sink.Emit(core.Intent{
		Op:      op,
		ID:      e.ID,
		Kind:    e.Kind,
		Phase:   e.Phase.String(),
		Pos:     e.Pos,
		Variant: e.Variant,
		Label:   e.Label,
	})
}
