package invaders

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Keyframe is one sample of a movement curve.
type Keyframe struct {
	Time   float64
	Offset core.Vec2
}

// Curve is an immutable piecewise-linear path over time.
// Sampling before the first keyframe or after the last is clamped.
type Curve struct {
	keys []Keyframe
}

// ErrEmptyCurve is returned when a curve has no keyframes.
var ErrEmptyCurve = errors.New("curve: no keyframes")

// NewCurve builds a curve from keyframes with strictly increasing times.
func NewCurve(keys []Keyframe) (*Curve, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyCurve
	}
	for i := range keys {
		if math.IsNaN(keys[i].Time) || math.IsInf(keys[i].Time, 0) {
			return nil, fmt.Errorf("curve: keyframe %d has invalid time %v", i, keys[i].Time)
		}
		if i > 0 && keys[i].Time <= keys[i-1].Time {
			return nil, fmt.Errorf("curve: keyframe %d at t=%v does not follow t=%v", i, keys[i].Time, keys[i-1].Time)
		}
	}
	cp := make([]Keyframe, len(keys))
	copy(cp, keys)
	return &Curve{keys: cp}, nil
}

// Duration returns the time of the last keyframe.
func (c *Curve) Duration() float64 {
	return c.keys[len(c.keys)-1].Time
}

// segment returns the index i of the keyframe starting the segment holding t,
// so that keys[i].Time <= t < keys[i+1].Time. It returns len-1 past the end.
func (c *Curve) segment(t float64) int {
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time > t })
	if i == 0 {
		return 0
	}
	return i - 1
}

// Sample returns the interpolated offset at time t.
func (c *Curve) Sample(t float64) core.Vec2 {
	first, last := c.keys[0], c.keys[len(c.keys)-1]
	if t <= first.Time {
		return first.Offset
	}
	if t >= last.Time {
		return last.Offset
	}
	i := c.segment(t)
	a, b := c.keys[i], c.keys[i+1]
	return core.Lerp(a.Offset, b.Offset, (t-a.Time)/(b.Time-a.Time))
}

// ZigZagCurve precomputes the sweep/descend path of the formation.
//
// The first sweep covers firstSweep units to the right, every later sweep covers
// sweep units alternating direction, and each descent drops rowStep units until
// descentBudget is used up. Period lengths are distance/speed.
func ZigZagCurve(firstSweep, sweep, rowStep, descentBudget, speed float64) (*Curve, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("curve: speed must be positive, got %v", speed)
	}
	if firstSweep <= 0 || sweep <= 0 || rowStep <= 0 {
		return nil, fmt.Errorf("curve: sweep and row step must be positive")
	}

	keys := []Keyframe{{Time: 0}}
	t, pos := 0.0, core.Vec2{}
	dir := Right
	dist := firstSweep
	remaining := descentBudget

	for {
		pos.X += float64(dir) * dist
		t += dist / speed
		keys = append(keys, Keyframe{Time: t, Offset: pos})

		if remaining <= 0 {
			break
		}
		drop := math.Min(rowStep, remaining)
		remaining -= drop
		pos.Y -= drop
		t += drop / speed
		keys = append(keys, Keyframe{Time: t, Offset: pos})
		if drop < rowStep || remaining <= 0 {
			break
		}

		dir = dir.Opposite()
		dist = sweep
	}
	return NewCurve(keys)
}

// CurveMover moves every alien along a shared curve relative to its own spawn
// time and grid origin. It holds no mutable direction state.
type CurveMover struct {
	curve *Curve
	start float64
	last  float64
}

// NewCurveMover creates a mover whose State is reported relative to start.
func NewCurveMover(c *Curve, start float64) *CurveMover {
	return &CurveMover{curve: c, start: start, last: start}
}

// Advance places each alien at origin + curve(now - spawn).
func (m *CurveMover) Advance(now, _ float64, aliens []*Entity) {
	if now > m.last {
		m.last = now
	}
	for _, a := range aliens {
		a.Pos = a.Origin.Add(m.curve.Sample(now - a.SpawnedAt))
	}
}

// State reports the curve segment last sampled as a Movement.
func (m *CurveMover) State() Movement {
	t := m.last - m.start
	keys := m.curve.keys
	if t >= m.curve.Duration() {
		return Stopped()
	}
	i := m.curve.segment(t)
	a, b := keys[i], keys[i+1]

	if b.Offset.X != a.Offset.X {
		if b.Offset.X > a.Offset.X {
			return Horizontal(Right)
		}
		return Horizontal(Left)
	}

	cur := m.curve.Sample(t)
	next := Right
	switch {
	case i+2 < len(keys):
		if keys[i+2].Offset.X < b.Offset.X {
			next = Left
		}
	case i > 0 && a.Offset.X > keys[i-1].Offset.X:
		next = Left
	}
	return Descending(cur.Y-b.Offset.Y, next)
}
