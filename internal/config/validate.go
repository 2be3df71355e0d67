package config

import (
	"errors"
	"fmt"
)

// Validate reports every invalid setting in the config.
// An invalid config is fatal at setup; the simulation itself never checks again.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	positive("field.half_width", c.Field.HalfWidth)
	positive("field.half_height", c.Field.HalfHeight)
	nonNegative("field.padding", c.Field.Padding)

	if c.Aliens.Rows <= 0 || c.Aliens.Columns <= 0 {
		errs = append(errs, fmt.Errorf("aliens grid must not be empty, got %dx%d", c.Aliens.Rows, c.Aliens.Columns))
	}
	positive("aliens.width", c.Aliens.Width)
	positive("aliens.height", c.Aliens.Height)
	nonNegative("aliens.gap", c.Aliens.Gap)
	positive("aliens.speed", c.Aliens.Speed)
	nonNegative("aliens.points", float64(c.Aliens.Points))
	switch c.Aliens.Movement {
	case MovementStateMachine, MovementCurve:
	default:
		errs = append(errs, fmt.Errorf("aliens.movement must be %q or %q, got %q", MovementStateMachine, MovementCurve, c.Aliens.Movement))
	}
	if c.Aliens.Columns > 0 {
		span := float64(c.Aliens.Columns-1)*c.CellStep() + c.Aliens.Width
		if span >= 2*c.Field.HalfWidth {
			errs = append(errs, fmt.Errorf("aliens grid is %v wide, field is only %v", span, 2*c.Field.HalfWidth))
		}
	}

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.max_speed", c.Player.MaxSpeed)
	if c.Player.DeadZone < 0 || c.Player.DeadZone >= 1 {
		errs = append(errs, fmt.Errorf("player.dead_zone must be in [0, 1), got %v", c.Player.DeadZone))
	}
	nonNegative("player.loss_height_factor", c.Player.LossHeightFactor)
	// A stopped swarm rests on the defense line; the loss line must be reachable from there.
	if c.LossLine() < c.DefenseLine() {
		errs = append(errs, fmt.Errorf("loss line %v is below the defense line %v, the swarm could never reach it", c.LossLine(), c.DefenseLine()))
	}

	positive("projectile.speed", c.Projectile.Speed)
	positive("projectile.collision_distance", c.Projectile.CollisionDistance)

	if c.Effects.Variants < 1 {
		errs = append(errs, fmt.Errorf("effects.variants must be at least 1, got %d", c.Effects.Variants))
	}
	nonNegative("effects.duration", c.Effects.Duration)

	nonNegative("timing.splash_wait", c.Timing.SplashWait)
	switch c.Timing.SplashTimer {
	case SplashCountdown, SplashPresence:
	default:
		errs = append(errs, fmt.Errorf("timing.splash_timer must be %q or %q, got %q", SplashCountdown, SplashPresence, c.Timing.SplashTimer))
	}
	positive("timing.end_step", c.Timing.EndStep)
	if c.Timing.EndSteps < 0 {
		errs = append(errs, fmt.Errorf("timing.end_steps must not be negative, got %d", c.Timing.EndSteps))
	}
	nonNegative("input.hold_window", c.Input.HoldWindow)

	switch c.Difficulty.Progression.Type {
	case "round", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be \"round\" or \"none\", got %q", c.Difficulty.Progression.Type))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}
