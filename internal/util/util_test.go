package util

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		min, max, val, want int
	}{
		{1, 6, 3, 3},
		{1, 6, 0, 1},
		{1, 6, 9, 6},
		{1, 6, 1, 1},
		{1, 6, 6, 6},
		// Degenerate range: the upper bound wins.
		{1, -1, 5, -1},
	}

	for _, tt := range tests {
		if got := Clamp(tt.min, tt.max, tt.val); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.min, tt.max, tt.val, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(2, 5); got != 2 {
		t.Errorf("Min(2, 5) = %d", got)
	}
	if got := Min(5, 2); got != 2 {
		t.Errorf("Min(5, 2) = %d", got)
	}
	if got := Max(2, 5); got != 5 {
		t.Errorf("Max(2, 5) = %d", got)
	}
	if got := Max(5, 2); got != 5 {
		t.Errorf("Max(5, 2) = %d", got)
	}
}
