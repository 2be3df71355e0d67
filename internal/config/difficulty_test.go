package config

import "testing"

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultInvadersConfig().Difficulty)

	for _, round := range []int{0, 1, 10} {
		if got := d.Speed(64, round); got != 64 {
			t.Errorf("Speed(64, %d) = %v, expected 64", round, got)
		}
	}
}

func TestDifficultyRoundProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "round", MaxAt: 4},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		round    int
		expected float64
	}{
		{0, 64},
		{2, 96},
		{4, 128},
		{9, 128}, // clamped at max
	}
	for _, tc := range tests {
		if got := d.Speed(64, tc.round); got != tc.expected {
			t.Errorf("Speed(64, %d) = %v, expected %v", tc.round, got, tc.expected)
		}
	}

	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "round", MaxAt: 2},
	})
	d.SetInitialLevel(1.5)
	if got := d.Level(0); got != 1 {
		t.Errorf("Level(0) = %v, expected clamped 1", got)
	}
}
