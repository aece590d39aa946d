package pixveil

import "github.com/pixveil/pixveil/internal/util"

// Complexity estimates the local texture around (x, y): the sum of absolute
// differences between the pixel and its four 4-connected neighbours across
// the first 3 channels. Higher means busier. Flat regions score 0 and make
// poor hiding spots, since a ±1 change there is statistically visible.
//
// Both axes are clamped into [1, dim-2], so border pixels report the
// complexity of their nearest fully-interior neighbour rather than their
// own. Single-channel buffers behave as 3 replicated channels.
func (b *PixelBuffer) Complexity(x, y int) int {
	// The outer clamp keeps the centre on the grid when a dimension is too
	// small (< 3 px) to have an interior at all.
	cx := util.Clamp(0, b.W-1, util.Clamp(1, b.W-2, x))
	cy := util.Clamp(0, b.H-1, util.Clamp(1, b.H-2, y))

	complexity := 0
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		// Degenerate dimensions (< 3 px) leave no interior; keep the
		// neighbour on the grid in that case.
		nx := util.Clamp(0, b.W-1, cx+d[0])
		ny := util.Clamp(0, b.H-1, cy+d[1])
		for c := 0; c < 3; c++ {
			ch := util.Min(c, b.Channels-1)
			diff := int(b.At(nx, ny, ch)) - int(b.At(cx, cy, ch))
			if diff < 0 {
				diff = -diff
			}
			complexity += diff
		}
	}
	return complexity
}
