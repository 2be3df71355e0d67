package core

import (
	"math"
	"testing"
)

func TestNear(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		d        float64
		expected bool
	}{
		{"same point", V(0, 0), V(0, 0), 6, true},
		{"exactly at distance on x", V(0, 0), V(6, 0), 6, true},
		{"exactly at distance on both axes", V(10, 10), V(4, 16), 6, true},
		{"just beyond on x", V(0, 0), V(6.0001, 0), 6, false},
		{"just beyond on y", V(0, 0), V(0, -6.0001), 6, false},
		// box test: the diagonal corner is still near
		{"box corner", V(0, 0), V(5.9, 5.9), 6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Near(tc.a, tc.b, tc.d)
			if result != tc.expected {
				t.Errorf("Near(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.d, result, tc.expected)
			}
			if reverse := Near(tc.b, tc.a, tc.d); reverse != tc.expected {
				t.Errorf("Near() (reversed) = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(-3, 5)

	if got := a.Add(b); got != V(-2, 7) {
		t.Errorf("Add() = %v, expected (-2, 7)", got)
	}
	if got := a.Sub(b); got != V(4, -3) {
		t.Errorf("Sub() = %v, expected (4, -3)", got)
	}
	if got := b.Scale(2); got != V(-6, 10) {
		t.Errorf("Scale() = %v, expected (-6, 10)", got)
	}
	if got := Lerp(V(0, 0), V(10, -20), 0.25); got != V(2.5, -5) {
		t.Errorf("Lerp() = %v, expected (2.5, -5)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-200, -128, 128, -128},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestDeadZone(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"centre", 0, 0},
		{"inside positive", 0.19, 0},
		{"inside negative", -0.19, 0},
		{"threshold", 0.2, 0},
		{"half way", 0.6, 0.5},
		{"full right", 1, 1},
		{"full left", -1, -1},
		{"beyond range", 1.5, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := DeadZone(tc.v, 0.2)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("DeadZone(%v, 0.2) = %v, expected %v", tc.v, result, tc.expected)
			}
		})
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
}
