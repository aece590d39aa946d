// Package prng implements the deterministic position-scheduling generator.
//
// It is deliberately a fixed 32-bit linear-congruential generator rather
// than math/rand: both parties must reproduce the exact same draw sequence
// from the same password, across versions and platforms, so the generator
// parameters are part of the wire contract.
package prng

// LCG parameters (glibc rand constants), modulus 2^32 via uint32 overflow.
const (
	multiplier uint32 = 1103515245
	increment  uint32 = 12345
)

// fallbackSeed replaces a zero accumulator, since a zero-seeded LCG with
// these parameters degenerates for the first draws.
const fallbackSeed uint32 = 0xDEADBEEF

// directionSalt separates the direction stream from the position stream.
const directionSalt uint32 = 0x9E3779B9

// DeriveSeed maps a password to a 32-bit seed. Each code point is XORed in,
// left-shifted by its index mod 24. Deterministic and non-cryptographic:
// distinct passwords may collide, and no salt is applied.
func DeriveSeed(password string) uint32 {
	var seed uint32
	i := 0
	for _, r := range password {
		seed ^= uint32(r) << uint(i%24)
		i++
	}
	if seed == 0 {
		return fallbackSeed
	}
	return seed
}

// LCG is a 32-bit linear-congruential generator:
//
//	X_{n+1} = (1103515245 * X_n + 12345) mod 2^32
type LCG struct {
	state uint32
}

// New returns a generator starting from the given seed.
func New(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the state and returns the new value.
func (g *LCG) Next() uint32 {
	g.state = multiplier*g.state + increment
	return g.state
}

// NewPair returns the two generators one keyed operation needs: pos drives
// position selection and dir drives ±1 direction choice. They are seeded
// independently so direction draws never perturb the position stream, which
// keeps the position sequence identical between embedding and extraction.
func NewPair(password string) (pos, dir *LCG) {
	seed := DeriveSeed(password)
	dirSeed := seed ^ directionSalt
	if dirSeed == 0 {
		dirSeed = fallbackSeed
	}
	return New(seed), New(dirSeed)
}
