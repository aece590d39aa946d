package pixveil

import (
	"fmt"

	"github.com/zedseven/binmani"
	"go.uber.org/zap"

	"github.com/pixveil/pixveil/internal/prng"
)

// EmbedConfig stores the configuration options for the Embed operation.
type EmbedConfig struct {
	// ImagePath is the path on disk to a supported container image.
	ImagePath string
	// OutPath is the path on disk to write the output image.
	OutPath string
	// Message is the payload to hide.
	Message []byte
	// Params are the keyed-scheduling parameters.
	Params Params
	// Logger receives operation progress. Nil means no output.
	Logger *zap.Logger
}

// Embed hides a message in the image at ImagePath and writes the result to
// OutPath in the same container format. It returns the key the extracting
// party needs, of the form password_bitcount.
//
// The saved image is written losslessly; any later recompression of the
// file invalidates the embedded bits.
func Embed(config *EmbedConfig) (key string, err error) {
	// Input validation
	if len(config.ImagePath) <= 0 {
		return "", &InvalidConfigError{"ImagePath is empty."}
	}
	if len(config.OutPath) <= 0 {
		return "", &InvalidConfigError{"OutPath is empty."}
	}
	if config.Params.Threshold < 0 {
		return "", &InvalidConfigError{fmt.Sprintf("Threshold must be non-negative: provided %d.", config.Params.Threshold)}
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	log.Info("loading the container image", zap.String("path", config.ImagePath))
	pixels, format, err := LoadImage(config.ImagePath)
	if err != nil {
		return "", err
	}
	log.Info("image loaded",
		zap.Int("width", pixels.W),
		zap.Int("height", pixels.H),
		zap.Int("channels", pixels.Channels),
		zap.Stringer("format", format))

	bits := BytesToBits(config.Message)
	out, err := EmbedBits(pixels, bits, config.Params, log)
	if err != nil {
		return "", err
	}

	log.Info("writing the output image", zap.String("path", config.OutPath))
	if err = SaveImage(config.OutPath, out, format); err != nil {
		return "", err
	}

	return FormatKey(config.Params.Password, len(bits)), nil
}

// EmbedBits embeds bits into a copy of src and returns the copy; src itself
// is never mutated, so a failed embed leaves nothing to roll back. The
// scheduler gates every complexity check on the untouched src, which keeps
// its accept/reject sequence independent of earlier mutations within the
// same pass.
func EmbedBits(src *PixelBuffer, bits []uint8, p Params, log *zap.Logger) (*PixelBuffer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	capacity := src.Capacity()
	if int64(len(bits)) > capacity {
		return nil, &CapacityExceededError{Requested: int64(len(bits)), Capacity: capacity}
	}

	// Position and direction streams are seeded independently; a ±1
	// direction draw must never shift the position sequence the extractor
	// will replay.
	posGen, dirGen := prng.NewPair(p.Password)
	sched := newScheduler(posGen, src, p.Threshold, p.AttemptFactor)

	out := src.Clone()
	for i, bit := range bits {
		pos, err := sched.next("embed", len(bits))
		if err != nil {
			log.Warn("embedding failed", zap.Int("embedded", i), zap.Int("required", len(bits)), zap.Error(err))
			return nil, err
		}
		embedBit(out, pos, bit, dirGen)

		log.Debug("bit embedded",
			zap.Int64("position", pos.pos),
			zap.Int("x", pos.x), zap.Int("y", pos.y),
			zap.Int("channel", pos.channel),
			zap.Uint8("bit", bit))
	}

	log.Info("embedding complete",
		zap.Int("bits", len(bits)),
		zap.Int64("attempts", sched.attempts),
		zap.Int64("capacity", capacity))
	return out, nil
}

// embedBit writes one bit at an accepted position using LSB matching: a
// channel whose LSB already equals the bit is left alone; otherwise the
// value moves by ±1, clamped away from the 0/255 rails, with the direction
// taken from the dedicated direction generator.
func embedBit(buf *PixelBuffer, pos position, bit uint8, dir *prng.LCG) {
	v := buf.At(pos.x, pos.y, pos.channel)
	if uint8(binmani.ReadFrom(uint16(v), 0, 1)) == bit {
		return
	}
	switch v {
	case 0:
		v = 1
	case 255:
		v = 254
	default:
		if dir.Next()&1 == 1 {
			v++
		} else {
			v--
		}
	}
	buf.Set(pos.x, pos.y, pos.channel, v)
}
