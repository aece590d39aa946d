package pixveil

import "fmt"

// Error types

// UnsupportedFormatError is returned when a container is not BMP or PNG.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	if len(e.Format) > 0 {
		return fmt.Sprintf("only BMP and PNG containers are supported - got %v", e.Format)
	}
	return "only BMP and PNG containers are supported"
}

// UnsupportedColorModeError is returned when an image decodes to a pixel
// mode that cannot be normalized to 3 or 4 eight-bit channels.
type UnsupportedColorModeError struct {
	Mode string
}

func (e *UnsupportedColorModeError) Error() string {
	return fmt.Sprintf("unsupported colour mode: %v", e.Mode)
}

// CapacityExceededError is returned when the requested bit count does not
// fit in the image. It is raised eagerly, before any pixel is touched and
// before any generator draw occurs.
type CapacityExceededError struct {
	Requested int64
	Capacity  int64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("message of %d bits does not fit in an image with a capacity of %d bits", e.Requested, e.Capacity)
}

// BudgetExhaustedError is returned when the scheduler could not satisfy the
// required position count within its attempt budget. There is no partial
// success: an embed that fails this way must not be persisted, which the
// operations guarantee by never mutating their input buffer.
type BudgetExhaustedError struct {
	Op       string // "embed" or "extract"
	Accepted int
	Required int
	Attempts int64
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("%v exhausted its attempt budget: accepted %d of %d positions in %d draws", e.Op, e.Accepted, e.Required, e.Attempts)
}

// BadKeyError is returned when an out-of-band key cannot be split back into
// a password and a bit count.
type BadKeyError struct {
	Key string
}

func (e *BadKeyError) Error() string {
	return fmt.Sprintf("the key %q is not of the form password_bitcount", e.Key)
}

// InvalidConfigError is returned when an operation config fails validation.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	if len(e.Reason) > 0 {
		return e.Reason
	}
	return "the provided configuration is invalid"
}
