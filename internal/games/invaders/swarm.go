package invaders

// Direction is the horizontal sweep direction of the swarm.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return -d
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Mode is the swarm movement mode.
type Mode int

const (
	ModeHorizontal Mode = iota
	ModeDescending
	ModeStopped
)

func (m Mode) String() string {
	switch m {
	case ModeHorizontal:
		return "horizontal"
	case ModeDescending:
		return "descending"
	case ModeStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Movement is the single movement state shared by the whole formation.
//
//	Horizontal(Dir)
//	Descending(Remaining, Next)
//	Stopped
type Movement struct {
	Mode      Mode
	Dir       Direction // Horizontal only
	Remaining float64   // Descending only
	Next      Direction // Descending only
}

// Horizontal returns a sweep in dir.
func Horizontal(dir Direction) Movement {
	return Movement{Mode: ModeHorizontal, Dir: dir}
}

// Descending returns a descent of remaining units followed by a sweep in next.
func Descending(remaining float64, next Direction) Movement {
	return Movement{Mode: ModeDescending, Remaining: remaining, Next: next}
}

// Stopped returns the terminal movement state.
func Stopped() Movement {
	return Movement{Mode: ModeStopped}
}

// Mover drives the swarm formation.
type Mover interface {
	// Advance moves every alien for a tick ending at simulation time now.
	Advance(now, dt float64, aliens []*Entity)
	// State returns the current movement state.
	State() Movement
}

// SwarmBounds are the field limits the swarm reacts to.
type SwarmBounds struct {
	HalfWidth   float64 // sweep reverses at +-HalfWidth
	RowStep     float64 // distance of one descent
	DefenseLine float64 // descending stops at or below this y
}

// Swarm moves the formation with an explicit sweep/descend state machine.
// One alien touching a boundary reverses or drops the whole formation.
type Swarm struct {
	speed  float64
	bounds SwarmBounds
	state  Movement
}

// NewSwarm creates a swarm sweeping right at speed units per second.
func NewSwarm(speed float64, bounds SwarmBounds) *Swarm {
	return &Swarm{
		speed:  speed,
		bounds: bounds,
		state:  Horizontal(Right),
	}
}

// State returns the current movement state.
func (s *Swarm) State() Movement {
	return s.state
}

// Advance displaces the formation by speed*dt according to the current state.
func (s *Swarm) Advance(_, dt float64, aliens []*Entity) {
	if len(aliens) == 0 {
		return
	}
	if dt < 0 {
		dt = 0
	}
	delta := s.speed * dt

	switch s.state.Mode {
	case ModeHorizontal:
		dir := s.state.Dir
		dx := float64(dir) * delta
		crossed := false
		for _, a := range aliens {
			a.Pos.X += dx
			if dir == Left && a.Pos.X <= -s.bounds.HalfWidth {
				crossed = true
			}
			if dir == Right && a.Pos.X >= s.bounds.HalfWidth {
				crossed = true
			}
		}
		if crossed {
			s.state = Descending(s.bounds.RowStep, dir.Opposite())
		}

	case ModeDescending:
		stop := false
		for _, a := range aliens {
			a.Pos.Y -= delta
			if a.Pos.Y <= s.bounds.DefenseLine {
				stop = true
			}
		}
		switch {
		case stop:
			s.state = Stopped()
		case s.state.Remaining-delta <= 0:
			s.state = Horizontal(s.state.Next)
		default:
			s.state.Remaining -= delta
		}

	case ModeStopped:
	}
}
