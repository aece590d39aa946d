package pixveil

import "testing"

// fillValue sets every channel of every pixel to v.
func fillValue(b *PixelBuffer, v uint8) {
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

func TestComplexityFlatImage(t *testing.T) {
	buf := NewPixelBuffer(8, 8, 3)
	fillValue(buf, 127)
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			if c := buf.Complexity(x, y); c != 0 {
				t.Fatalf("flat image complexity at (%d,%d) = %d, want 0", x, y, c)
			}
		}
	}
}

func TestComplexityInterior(t *testing.T) {
	// 3x3, all channels 20 except the centre at 10: four neighbours each
	// differ by 10 in all three channels.
	buf := NewPixelBuffer(3, 3, 3)
	fillValue(buf, 20)
	for c := 0; c < 3; c++ {
		buf.Set(1, 1, c, 10)
	}
	if got := buf.Complexity(1, 1); got != 4*3*10 {
		t.Errorf("Complexity(1,1) = %d, want %d", got, 4*3*10)
	}
}

func TestComplexitySingleChannelReplication(t *testing.T) {
	// A 1-channel buffer behaves as 3 identical channels.
	buf := NewPixelBuffer(3, 3, 1)
	fillValue(buf, 20)
	buf.Set(1, 1, 0, 10)
	if got := buf.Complexity(1, 1); got != 4*3*10 {
		t.Errorf("Complexity(1,1) = %d, want %d", got, 4*3*10)
	}
}

func TestComplexityBorderClamping(t *testing.T) {
	// Border pixels report their nearest interior neighbour's value, so a
	// corner and the adjacent interior pixel must agree.
	buf := NewPixelBuffer(5, 5, 3)
	for i := range buf.Pix {
		buf.Pix[i] = uint8((i * 37) % 251)
	}
	tests := []struct {
		x, y   int
		ix, iy int
	}{
		{0, 0, 1, 1},
		{4, 0, 3, 1},
		{0, 4, 1, 3},
		{4, 4, 3, 3},
		{2, 0, 2, 1},
		{0, 2, 1, 2},
	}
	for _, tt := range tests {
		if got, want := buf.Complexity(tt.x, tt.y), buf.Complexity(tt.ix, tt.iy); got != want {
			t.Errorf("Complexity(%d,%d) = %d, want interior value %d from (%d,%d)", tt.x, tt.y, got, want, tt.ix, tt.iy)
		}
	}
}

func TestComplexityDegenerateDimensions(t *testing.T) {
	// Must not index out of bounds on images too small to have an interior.
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}} {
		buf := NewPixelBuffer(dims[0], dims[1], 3)
		fillValue(buf, 9)
		for y := 0; y < buf.H; y++ {
			for x := 0; x < buf.W; x++ {
				if c := buf.Complexity(x, y); c != 0 {
					t.Errorf("%dx%d flat image complexity at (%d,%d) = %d, want 0", dims[0], dims[1], x, y, c)
				}
			}
		}
	}
}
