package core

import (
	"math"
	"testing"
)

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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestVecDist(t *testing.T) {
	a := Vec{X: 1, Y: 1}
	b := Vec{X: 4, Y: 5}

	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
	if d := b.Dist(a); d != 5 {
		t.Errorf("Dist() (reversed) = %f, expected 5", d)
	}
}

func TestPolar(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vec
	}{
		{"east", 0, Vec{X: 3, Y: 0}},
		{"south", math.Pi / 2, Vec{X: 0, Y: 3}},
		{"west", math.Pi, Vec{X: -3, Y: 0}},
		{"north", -math.Pi / 2, Vec{X: 0, Y: -3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Polar(3, tc.angle)
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Polar(3, %f) = %+v, expected %+v", tc.angle, got, tc.want)
			}
		})
	}
}

func TestFRectInsetContains(t *testing.T) {
	r := FRect{Left: 20, Top: 20, Right: 780, Bottom: 520}
	in := r.Inset(3)

	if in.Left != 23 || in.Top != 23 || in.Right != 777 || in.Bottom != 517 {
		t.Fatalf("Inset(3) = %+v", in)
	}
	if !in.Contains(Vec{X: 23, Y: 517}) {
		t.Error("Contains should include edges")
	}
	if in.Contains(Vec{X: 22.9, Y: 100}) {
		t.Error("Contains should exclude points left of the edge")
	}
	if in.Width() != 754 || in.Height() != 494 {
		t.Errorf("size = %fx%f, expected 754x494", in.Width(), in.Height())
	}
	if !in.Valid() {
		t.Error("inset rect should be valid")
	}
	if r.Inset(400).Valid() {
		t.Error("over-inset rect should be invalid")
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
