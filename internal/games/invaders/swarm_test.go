package invaders

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var testBounds = SwarmBounds{HalfWidth: 128, RowStep: 16, DefenseLine: -88}

func aliensAt(positions ...core.Vec2) []*Entity {
	out := make([]*Entity, len(positions))
	for i, p := range positions {
		out[i] = &Entity{ID: core.EntityID(i + 1), Kind: core.KindAlien, Pos: p, Origin: p}
	}
	return out
}

func TestSwarmHorizontalDisplacement(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"zero dt", 0},
		{"one frame", 1.0 / 60},
		{"quarter second", 0.25},
		{"negative dt treated as zero", -0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSwarm(64, testBounds)
			aliens := aliensAt(core.V(0, 50), core.V(16, 50))
			s.Advance(0, tc.dt, aliens)

			expected := 64 * tc.dt
			if tc.dt < 0 {
				expected = 0
			}
			for _, a := range aliens {
				if got := a.Pos.X - a.Origin.X; math.Abs(got-expected) > 1e-9 {
					t.Errorf("displacement = %v, expected %v", got, expected)
				}
				if a.Pos.Y != a.Origin.Y {
					t.Errorf("horizontal move changed y to %v", a.Pos.Y)
				}
			}
		})
	}
}

func TestSwarmFlipsAtBoundary(t *testing.T) {
	s := NewSwarm(64, testBounds)
	aliens := aliensAt(core.V(-124, 92), core.V(-12, 92))

	flips := 0
	for i := 0; i < 140; i++ {
		before := s.State()
		s.Advance(0, 1.0/64, aliens)
		after := s.State()
		if before.Mode == ModeHorizontal && after.Mode == ModeDescending {
			flips++
			if after.Remaining != 16 {
				t.Errorf("Remaining at flip = %v, expected 16", after.Remaining)
			}
			if after.Next != Left {
				t.Errorf("Next at flip = %v, expected left", after.Next)
			}
		}
	}

	if flips != 1 {
		t.Fatalf("flips = %d, expected 1", flips)
	}
	if aliens[1].Pos.X != 128 {
		t.Errorf("rightmost alien at flip x = %v, expected 128", aliens[1].Pos.X)
	}
}

func TestSwarmLeftBoundary(t *testing.T) {
	s := NewSwarm(64, testBounds)
	s.state = Horizontal(Left)
	aliens := aliensAt(core.V(-126, 0))

	s.Advance(0, 1.0/32, aliens) // moves 2 units to -128
	if st := s.State(); st != Descending(16, Right) {
		t.Errorf("State() = %+v, expected Descending(16, right)", st)
	}
}

func TestSwarmDescentCompletes(t *testing.T) {
	s := NewSwarm(64, testBounds)
	s.state = Descending(16, Left)
	aliens := aliensAt(core.V(128, 60))

	// 0.1s per tick = 6.4 units; three ticks cover 19.2 >= 16
	for i := 0; i < 2; i++ {
		s.Advance(0, 0.1, aliens)
		if s.State().Mode != ModeDescending {
			t.Fatalf("tick %d: mode = %v, expected descending", i, s.State().Mode)
		}
	}
	s.Advance(0, 0.1, aliens)

	if st := s.State(); st != Horizontal(Left) {
		t.Errorf("State() = %+v, expected Horizontal(left)", st)
	}
	if aliens[0].Pos.X != 128 {
		t.Errorf("descent moved x to %v", aliens[0].Pos.X)
	}
}

func TestSwarmStopsAtDefenseLine(t *testing.T) {
	s := NewSwarm(64, testBounds)
	s.state = Descending(16, Right)
	aliens := aliensAt(core.V(0, -80), core.V(16, 40))

	s.Advance(0, 0.25, aliens) // -80 - 16 = -96
	if s.State().Mode != ModeStopped {
		t.Fatalf("mode = %v, expected stopped", s.State().Mode)
	}

	before := aliens[0].Pos
	for i := 0; i < 10; i++ {
		s.Advance(0, 0.5, aliens)
	}
	if aliens[0].Pos != before {
		t.Errorf("stopped swarm moved from %v to %v", before, aliens[0].Pos)
	}
}

func TestSwarmEmptyKeepsState(t *testing.T) {
	s := NewSwarm(64, testBounds)
	s.Advance(0, 100, nil)
	if st := s.State(); st != Horizontal(Right) {
		t.Errorf("State() = %+v, expected Horizontal(right)", st)
	}
}

func TestDirection(t *testing.T) {
	if Left.Opposite() != Right || Right.Opposite() != Left {
		t.Error("Opposite() should swap left and right")
	}
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("String() = %q/%q", Left.String(), Right.String())
	}
}
