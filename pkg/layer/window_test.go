package layer

import "testing"

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 2, 0},
		{1, 2, 0},
		{2, 2, 1},
		{-1, 2, -1},
		{-2, 2, -1},
		{-3, 2, -2},
		{-8, 2, -4},
		{7, -2, -4},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 2, 0},
		{1, 2, 1},
		{16, 2, 8},
		{17, 2, 9},
	}
	for _, tt := range tests {
		if got := ceilDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestWindowString(t *testing.T) {
	w := Window{Pos: Pos{X: -8, Z: 3}, Size: Size{Width: 16, Depth: 4}}
	if got := w.String(); got != "(-8,3)+16x4" {
		t.Errorf("String() = %q", got)
	}
}
