package core

import "testing"

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
		{-400, -300, -50, -300},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSignAndLerp(t *testing.T) {
	if SignF(-3) != -1 || SignF(0) != 0 || SignF(2) != 1 {
		t.Error("SignF returned wrong signs")
	}
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Errorf("Lerp(0, 10, 0.25) = %f, expected 2.5", Lerp(0, 10, 0.25))
	}
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: 4}).Scale(0.5)
	if v.X != 2 || v.Y != 3 {
		t.Errorf("Vec2 math = %+v, expected {2 3}", v)
	}
}

func TestAbsMax(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max returned wrong value")
	}
}

func TestSeededRandRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(-50, 50)
		if v < -50 || v > 50 {
			t.Fatalf("IntBetween(-50, 50) = %d, out of range", v)
		}
	}

	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 20; i++ {
		if a.IntBetween(-100, 100) != b.IntBetween(-100, 100) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}

func TestSequenceRand(t *testing.T) {
	r := &SequenceRand{Values: []int{3, 500, -7}}

	if v := r.IntBetween(-50, 50); v != 3 {
		t.Errorf("first value = %d, expected 3", v)
	}
	if v := r.IntBetween(-50, 50); v != 50 {
		t.Errorf("second value should clamp to 50, got %d", v)
	}
	if v := r.IntBetween(-50, 50); v != -7 {
		t.Errorf("third value = %d, expected -7", v)
	}
	if v := r.IntBetween(-50, 50); v != 3 {
		t.Errorf("sequence should wrap, got %d", v)
	}
}
