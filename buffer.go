package pixveil

// Shared types

// PixelBuffer is a width × height grid of fixed-width pixels stored as a
// flat channel slice, row-major, channels interleaved. Channels is 3 (RGB)
// or 4 (RGBA) for buffers produced by LoadImage; buffers constructed by
// hand may carry 1 channel for grayscale data.
//
// A buffer is exclusively owned by the operation it is passed to for the
// duration of the call. Concurrent operations must use independent buffers.
type PixelBuffer struct {
	W, H     int
	Channels int
	Pix      []uint8
}

// NewPixelBuffer returns a zeroed buffer of the given dimensions.
func NewPixelBuffer(w, h, channels int) *PixelBuffer {
	return &PixelBuffer{
		W:        w,
		H:        h,
		Channels: channels,
		Pix:      make([]uint8, w*h*channels),
	}
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{W: b.W, H: b.H, Channels: b.Channels, Pix: pix}
}

// At returns the value of channel c of the pixel at (x, y).
func (b *PixelBuffer) At(x, y, c int) uint8 {
	return b.Pix[(y*b.W+x)*b.Channels+c]
}

// Set writes channel c of the pixel at (x, y), leaving every other channel
// of the pixel untouched.
func (b *PixelBuffer) Set(x, y, c int, v uint8) {
	b.Pix[(y*b.W+x)*b.Channels+c] = v
}

// UsableChannels is the number of channels eligible for embedding: the
// alpha channel, if present, is never targeted.
func (b *PixelBuffer) UsableChannels() int {
	if b.Channels >= 3 {
		return 3
	}
	return b.Channels
}

// Capacity is the number of addressable (pixel, channel) positions.
func (b *PixelBuffer) Capacity() int64 {
	return int64(b.W) * int64(b.H) * int64(b.UsableChannels())
}

// locate decomposes a linear position in [0, Capacity) into pixel
// coordinates and a channel index.
func (b *PixelBuffer) locate(pos int64) (x, y, channel int) {
	usable := int64(b.UsableChannels())
	pixel := pos / usable
	channel = int(pos % usable)
	x = int(pixel % int64(b.W))
	y = int(pixel / int64(b.W))
	return
}
