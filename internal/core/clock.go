package core

import "time"

// MaxFrameDelta caps a single tick's delta so a stalled terminal does not
// teleport the swarm across the field.
const MaxFrameDelta = 0.25

// Clock supplies simulation time, sampled once per tick.
// Both values are in seconds; Elapsed is monotonic and Delta is never negative.
type Clock interface {
	Elapsed() float64
	Delta() float64
}

// FrameClock derives elapsed and delta time from wall-clock tick timestamps.
type FrameClock struct {
	start   time.Time
	last    time.Time
	elapsed float64
	delta   float64
}

// NewFrameClock creates a clock whose elapsed time starts at start.
func NewFrameClock(start time.Time) *FrameClock {
	return &FrameClock{start: start, last: start}
}

// Advance samples the clock for a new tick at the given wall time.
// Timestamps that go backwards yield a zero delta.
func (c *FrameClock) Advance(now time.Time) {
	d := now.Sub(c.last).Seconds()
	if d < 0 {
		d = 0
	}
	if d > MaxFrameDelta {
		d = MaxFrameDelta
	}
	if now.After(c.last) {
		c.last = now
	}
	c.delta = d
	c.elapsed += d
}

// Elapsed returns seconds of simulation time since the clock started.
func (c *FrameClock) Elapsed() float64 {
	return c.elapsed
}

// Delta returns the seconds covered by the current tick.
func (c *FrameClock) Delta() float64 {
	return c.delta
}

// FixedClock advances by a constant step per tick.
// Used for deterministic replays and tests.
type FixedClock struct {
	Step    float64
	elapsed float64
	ticked  bool
}

// NewFixedClock creates a clock that advances step seconds on every Tick.
func NewFixedClock(step float64) *FixedClock {
	if step < 0 {
		step = 0
	}
	return &FixedClock{Step: step}
}

// Tick advances the clock by one step.
func (c *FixedClock) Tick() {
	c.elapsed += c.Step
	c.ticked = true
}

// Elapsed returns the total simulated seconds.
func (c *FixedClock) Elapsed() float64 {
	return c.elapsed
}

// Delta returns the step, or zero before the first Tick.
func (c *FixedClock) Delta() float64 {
	if !c.ticked {
		return 0
	}
	return c.Step
}
