package core

import (
	"math"
	"testing"
)

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "concentric",
			a:        Circle{Center: Vec2{100, 138}, R: 28},
			b:        Circle{Center: Vec2{100, 138}, R: 7.8},
			expected: true,
		},
		{
			name:     "far apart",
			a:        Circle{Center: Vec2{100, 138}, R: 28},
			b:        Circle{Center: Vec2{200, 138}, R: 7.8},
			expected: false,
		},
		{
			name:     "exact tangency is a miss",
			a:        Circle{Center: Vec2{0, 0}, R: 3},
			b:        Circle{Center: Vec2{5, 0}, R: 2},
			expected: false,
		},
		{
			name:     "just inside tangency",
			a:        Circle{Center: Vec2{0, 0}, R: 3},
			b:        Circle{Center: Vec2{4.999, 0}, R: 2},
			expected: true,
		},
		{
			name:     "diagonal 3-4-5",
			a:        Circle{Center: Vec2{0, 0}, R: 2},
			b:        Circle{Center: Vec2{3, 4}, R: 3.5},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Geometry is symmetric
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecDist(t *testing.T) {
	d := Vec2{1, 1}.Dist(Vec2{4, 5})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %f, expected 5", d)
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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{427, 0.0, 354.0, 354.0},
		// Inverted range collapses to min
		{12, 0.0, -6.0, 0.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
