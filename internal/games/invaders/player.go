package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player steers the ship along the bottom of the field.
type Player struct {
	Entity *Entity

	halfWidth float64
	maxSpeed  float64
	deadZone  float64
}

// Steering returns the horizontal steering for a frame in [-2, 2].
// The rescaled stick and the held keys each contribute up to one unit and add up.
func Steering(in core.InputFrame, deadZone float64) float64 {
	dir := core.DeadZone(in.Axis, deadZone)
	if in.IsHeld(core.ActionLeft) {
		dir--
	}
	if in.IsHeld(core.ActionRight) {
		dir++
	}
	return dir
}

// Steer moves the ship for one tick, clamped to the field.
// It reports whether the ship moved.
func (p *Player) Steer(in core.InputFrame, dt float64) bool {
	if dt <= 0 {
		return false
	}
	dir := Steering(in, p.deadZone)
	if dir == 0 {
		return false
	}
	x := core.ClampF(p.Entity.Pos.X+dir*p.maxSpeed*dt, -p.halfWidth, p.halfWidth)
	if x == p.Entity.Pos.X {
		return false
	}
	p.Entity.Pos.X = x
	return true
}

// X returns the ship's horizontal position.
func (p *Player) X() float64 {
	return p.Entity.Pos.X
}
