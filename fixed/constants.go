package fixed

import "math"

// Format limits.
const (
	// MaxFracBits is the largest fractional-bit count accepted by the primitives.
	MaxFracBits = 62

	// PiFracBits is the format of the stored π constant. π·2^61 is the widest
	// truncated π that still fits in an int64.
	PiFracBits = 61

	// Pi61 is π truncated to PiFracBits fractional bits.
	Pi61 int64 = 0x6487ED5110B4611A
)

// Saturation bounds.
const (
	// Max is the largest representable raw value.
	Max int64 = math.MaxInt64

	// Min is the smallest representable raw value. Evaluators return it as the
	// domain-error sentinel.
	Min int64 = math.MinInt64
)

const (
	wordBits  = 64
	signBit   = uint64(1) << 63
	halfShift = 1

	// sqrtIterations is the fixed Newton iteration count for SqrtFast. A
	// bit-length seed is within a factor of two of the root, and six
	// quadratic steps take that below 2^-62.
	sqrtIterations = 6
)
