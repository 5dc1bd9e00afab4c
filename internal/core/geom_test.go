package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 3, H: 3}

	if !r.Contains(0, 0) || !r.Contains(2, 2) {
		t.Error("Contains should include interior points")
	}
	if r.Contains(3, 0) || r.Contains(0, 3) || r.Contains(-1, 0) {
		t.Error("Contains should exclude points on the outside")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(1, 2) != 1 || Min(2, 1) != 1 {
		t.Error("Min is wrong")
	}
	if Max(1, 2) != 2 || Max(2, 1) != 2 {
		t.Error("Max is wrong")
	}
}
