// Package pixveil hides a bit stream inside the least-significant bits of
// an image's pixel channels, recoverable only with the same password and
// embedding parameters.
//
// A password-seeded generator schedules candidate (pixel, channel)
// positions, a local-texture filter rejects positions in visually flat
// regions, and a ±1 LSB-matching rule adjusts channel values to encode
// each bit. The bit count travels out-of-band (see FormatKey); nothing is
// stored in the image itself.
//
// This is not a confidentiality mechanism: the seed derivation is not
// collision-resistant, and the embedding survives neither recompression
// nor scaling nor filtering.
package pixveil

import "fmt"

const (
	VersionMax uint8 = 1
	VersionMid uint8 = 0
	VersionMin uint8 = 0
)

// Version returns the library version as a display string.
func Version() string {
	return fmt.Sprintf("%02d.%02d.%02d", VersionMax, VersionMid, VersionMin)
}

// DefaultThreshold is the complexity threshold used when a caller does not
// pick one. Positions whose local complexity falls below the threshold are
// never embedded into.
const DefaultThreshold = 20

// Params are the keyed-scheduling parameters an embed and its matching
// extract must agree on exactly.
type Params struct {
	// Password seeds the position generator.
	Password string
	// Threshold is the minimum local complexity for an eligible position.
	Threshold int
	// AttemptFactor bounds scheduling work at capacity × factor draws.
	// Zero or negative selects the default of 4.
	AttemptFactor int
}
