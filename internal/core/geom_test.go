package core

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"3-4-5 triangle", V(0, 0), V(3, 4), 5},
		{"negative coords", V(-1, -1), V(2, 3), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			// Symmetric
			if got := Distance(tc.b, tc.a); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestFrames(t *testing.T) {
	if got := Frames(ReferenceFrame); math.Abs(got-1) > 1e-9 {
		t.Errorf("Frames(ReferenceFrame) = %f, expected 1", got)
	}
	cfg := DefaultConfig()
	cfg.TickRate = 30
	if got := Frames(cfg.FrameDuration()); math.Abs(got-2) > 1e-6 {
		t.Errorf("a 30fps frame should be 2 reference frames, got %f", got)
	}
}
