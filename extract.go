package pixveil

import (
	"fmt"

	"github.com/zedseven/binmani"
	"go.uber.org/zap"

	"github.com/pixveil/pixveil/internal/prng"
)

// ExtractConfig stores the configuration options for the Extract operation.
type ExtractConfig struct {
	// ImagePath is the path on disk to the image holding the message.
	ImagePath string
	// NumBits is the number of bits to recover, as communicated
	// out-of-band in the embed key.
	NumBits int
	// Params must match the ones used during embedding exactly.
	Params Params
	// Logger receives operation progress. Nil means no output.
	Logger *zap.Logger
}

// Extract recovers NumBits bits from the image at ImagePath and packs them
// into bytes. The password, threshold and attempt factor must match the
// embedding call, or the recovered bits are garbage.
func Extract(config *ExtractConfig) ([]byte, error) {
	// Input validation
	if len(config.ImagePath) <= 0 {
		return nil, &InvalidConfigError{"ImagePath is empty."}
	}
	if config.NumBits < 0 {
		return nil, &InvalidConfigError{fmt.Sprintf("NumBits must be non-negative: provided %d.", config.NumBits)}
	}
	if config.Params.Threshold < 0 {
		return nil, &InvalidConfigError{fmt.Sprintf("Threshold must be non-negative: provided %d.", config.Params.Threshold)}
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	log.Info("loading the container image", zap.String("path", config.ImagePath))
	pixels, format, err := LoadImage(config.ImagePath)
	if err != nil {
		return nil, err
	}
	log.Info("image loaded",
		zap.Int("width", pixels.W),
		zap.Int("height", pixels.H),
		zap.Int("channels", pixels.Channels),
		zap.Stringer("format", format))

	bits, err := ExtractBits(pixels, config.NumBits, config.Params, log)
	if err != nil {
		return nil, err
	}
	return BitsToBytes(bits), nil
}

// ExtractBits replays the embedding schedule over img and reads the LSB at
// each accepted position. img is never mutated. The capacity check happens
// before the generator is constructed, so an oversized request fails
// without a single draw.
func ExtractBits(img *PixelBuffer, numBits int, p Params, log *zap.Logger) ([]uint8, error) {
	if log == nil {
		log = zap.NewNop()
	}

	capacity := img.Capacity()
	if int64(numBits) > capacity {
		return nil, &CapacityExceededError{Requested: int64(numBits), Capacity: capacity}
	}

	// Only the position stream exists here; the extraction path draws
	// nothing for directions, and the position sequence still matches the
	// embedder's because the two streams are independently seeded.
	posGen := prng.New(prng.DeriveSeed(p.Password))
	sched := newScheduler(posGen, img, p.Threshold, p.AttemptFactor)

	bits := make([]uint8, 0, numBits)
	for len(bits) < numBits {
		pos, err := sched.next("extract", numBits)
		if err != nil {
			log.Warn("extraction failed", zap.Int("extracted", len(bits)), zap.Int("required", numBits), zap.Error(err))
			return nil, err
		}
		bit := uint8(binmani.ReadFrom(uint16(img.At(pos.x, pos.y, pos.channel)), 0, 1))
		bits = append(bits, bit)

		log.Debug("bit read",
			zap.Int64("position", pos.pos),
			zap.Int("x", pos.x), zap.Int("y", pos.y),
			zap.Int("channel", pos.channel),
			zap.Uint8("bit", bit))
	}

	log.Info("extraction complete",
		zap.Int("bits", len(bits)),
		zap.Int64("attempts", sched.attempts),
		zap.Int64("capacity", capacity))
	return bits, nil
}
