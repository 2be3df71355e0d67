package core

import (
	"testing"
	"time"
)

func TestFrameClockAdvance(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewFrameClock(start)

	c.Advance(start.Add(100 * time.Millisecond))
	if c.Delta() != 0.1 {
		t.Errorf("Delta() = %v, expected 0.1", c.Delta())
	}

	// going backwards yields a zero delta and keeps elapsed
	c.Advance(start)
	if c.Delta() != 0 {
		t.Errorf("Delta() after backwards step = %v, expected 0", c.Delta())
	}
	if c.Elapsed() != 0.1 {
		t.Errorf("Elapsed() = %v, expected 0.1", c.Elapsed())
	}

	// long stalls are capped
	c.Advance(start.Add(5 * time.Second))
	if c.Delta() != MaxFrameDelta {
		t.Errorf("Delta() after stall = %v, expected %v", c.Delta(), MaxFrameDelta)
	}
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(0.5)
	if c.Delta() != 0 {
		t.Errorf("Delta() before Tick = %v, expected 0", c.Delta())
	}

	for i := 0; i < 4; i++ {
		c.Tick()
	}
	if c.Elapsed() != 2 {
		t.Errorf("Elapsed() = %v, expected 2", c.Elapsed())
	}
	if c.Delta() != 0.5 {
		t.Errorf("Delta() = %v, expected 0.5", c.Delta())
	}

	if neg := NewFixedClock(-1); neg.Step != 0 {
		t.Errorf("negative step = %v, expected 0", neg.Step)
	}
}
