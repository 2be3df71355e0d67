package core

import "fmt"

// EntityID identifies a spawned entity for its whole lifetime.
type EntityID uint64

// IntentOp is the kind of change reported to the presentation layer.
type IntentOp int

const (
	OpSpawn IntentOp = iota
	OpMove
	OpDespawn
)

func (o IntentOp) String() string {
	switch o {
	case OpSpawn:
		return "spawn"
	case OpMove:
		return "move"
	case OpDespawn:
		return "despawn"
	default:
		return "unknown"
	}
}

// EntityKind classifies an entity for renderers and sinks.
type EntityKind int

const (
	KindAlien EntityKind = iota
	KindProjectile
	KindPlayer
	KindExplosion
	KindText
	KindSound
)

func (k EntityKind) String() string {
	switch k {
	case KindAlien:
		return "alien"
	case KindProjectile:
		return "projectile"
	case KindPlayer:
		return "player"
	case KindExplosion:
		return "explosion"
	case KindText:
		return "text"
	case KindSound:
		return "sound"
	default:
		return "unknown"
	}
}

// Intent describes one spawn, move or despawn of a visual or audible entity.
type Intent struct {
	Op      IntentOp
	ID      EntityID
	Kind    EntityKind
	Phase   string
	Pos     Vec2
	Variant int
	Label   string
}

func (i Intent) String() string {
	return fmt.Sprintf("%s %s#%d phase=%s pos=(%.2f,%.2f) label=%q", i.Op, i.Kind, i.ID, i.Phase, i.Pos.X, i.Pos.Y, i.Label)
}

// EntitySink receives intents produced by the simulation.
// Implementations must not call back into the simulation.
type EntitySink interface {
	Emit(Intent)
}

// SinkFunc adapts a function to EntitySink.
type SinkFunc func(Intent)

// Emit calls f(in).
func (f SinkFunc) Emit(in Intent) {
	f(in)
}

// MultiSink fans intents out to several sinks in order. Nil entries are skipped.
type MultiSink []EntitySink

// Emit forwards in to every sink.
func (m MultiSink) Emit(in Intent) {
	for _, s := range m {
		if s != nil {
			s.Emit(in)
		}
	}
}

// Recorder keeps every intent it receives.
type Recorder struct {
	Intents []Intent
}

// Emit appends in.
func (r *Recorder) Emit(in Intent) {
	r.Intents = append(r.Intents, in)
}

// Reset drops all recorded intents.
func (r *Recorder) Reset() {
	r.Intents = r.Intents[:0]
}

// Filter returns the recorded intents matching op and kind.
func (r *Recorder) Filter(op IntentOp, kind EntityKind) []Intent {
	var out []Intent
	for _, in := range r.Intents {
		if in.Op == op && in.Kind == kind {
			out = append(out, in)
		}
	}
	return out
}

// Discard is a sink that drops every intent.
var Discard EntitySink = SinkFunc(func(Intent) {})
