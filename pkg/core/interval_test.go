package core

import "testing"

func TestIntervalContainsAndSurrounds(t *testing.T) {
	i := NewInterval(1, 2)

	if !i.Contains(1) || !i.Contains(2) || !i.Contains(1.5) {
		t.Error("Contains should include the endpoints")
	}
	if i.Contains(0.999) || i.Contains(2.001) {
		t.Error("Contains should reject values outside the range")
	}

	if i.Surrounds(1) || i.Surrounds(2) {
		t.Error("Surrounds should exclude the endpoints")
	}
	if !i.Surrounds(1.5) {
		t.Error("Surrounds should accept interior values")
	}
}

func TestIntervalClamp(t *testing.T) {
	i := NewInterval(0, 1)

	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := i.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%f): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestIntensityInterval(t *testing.T) {
	// Values above 1 never reach 256 when scaled by 256
	if b := int(256 * Intensity.Clamp(4.0)); b != 255 {
		t.Errorf("Clamped overbright channel should scale to 255, got %d", b)
	}
	if b := int(256 * Intensity.Clamp(0.0)); b != 0 {
		t.Errorf("Zero channel should scale to 0, got %d", b)
	}
}
