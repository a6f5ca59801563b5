package geometry

import (
	"math"
	"testing"
)

func TestVector2Add(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, 5)
	result := v1.Add(v2)

	expected := NewVector2(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Sub(t *testing.T) {
	v1 := NewVector2(5, 7)
	v2 := NewVector2(1, 2)
	result := v1.Sub(v2)

	expected := NewVector2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Length(t *testing.T) {
	v := NewVector2(3, 4)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
	if v.LengthSquared() != 25 {
		t.Errorf("LengthSquared failed: expected 25, got %v", v.LengthSquared())
	}
}

func TestVector2Distance(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(3, 4)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector2Dot(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, 5)
	result := v1.Dot(v2)

	expected := 14.0 // 1*4 + 2*5 = 14
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Lerp(t *testing.T) {
	start := NewVector2(15, 130)
	end := NewVector2(75, 15)

	tests := []struct {
		t        float64
		expected Vector2
	}{
		{0, start},
		{1, end},
		{0.5, NewVector2(45, 72.5)},
	}

	for _, tt := range tests {
		got := start.Lerp(end, tt.t)
		if math.Abs(got.X-tt.expected.X) > 1e-10 || math.Abs(got.Y-tt.expected.Y) > 1e-10 {
			t.Errorf("Lerp(%v) failed: expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestVector2IsFinite(t *testing.T) {
	if !NewVector2(1, 2).IsFinite() {
		t.Error("expected finite vector")
	}
	if NewVector2(math.NaN(), 2).IsFinite() {
		t.Error("NaN component reported as finite")
	}
	if NewVector2(1, math.Inf(-1)).IsFinite() {
		t.Error("Inf component reported as finite")
	}
}
