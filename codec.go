package pixveil

import "github.com/zedseven/binmani"

// Bit/byte codec

// BytesToBits expands data into its bits, most-significant bit of each byte
// first. The result is always exactly 8×len(data) bits long.
func BytesToBits(data []byte) []uint8 {
	bits := make([]uint8, 0, len(data)*8)
	for _, b := range data {
		for i := uint8(8); i > 0; i-- {
			bits = append(bits, uint8(binmani.ReadFrom(uint16(b), i-1, 1)))
		}
	}
	return bits
}

// BitsToBytes packs bits MSB-first into bytes, right-padding with zero bits
// up to the next byte boundary. For any d, BitsToBytes(BytesToBits(d))
// equals d, since BytesToBits always emits whole bytes.
func BitsToBytes(bits []uint8) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit == 0 {
			continue
		}
		idx := uint8(7 - i%8)
		out[i/8] = byte(binmani.WriteTo(uint16(out[i/8]), idx, 1, 1))
	}
	return out
}
