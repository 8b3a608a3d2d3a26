// Package fixed provides 64-bit signed fixed-point primitives.
//
// A fixed-point value is an int64 holding value × 2^F, where F is the
// fractional-bit count passed explicitly to every primitive. All functions
// are pure, allocation-free, and have no value-dependent loop counts, so they
// are safe on real-time paths and inline well.
//
// Overflow never wraps: results that do not fit saturate to [Max] or [Min].
package fixed

import (
	"math"
	"math/bits"
)

// One returns 1.0 in format f.
func One(f int) int64 {
	return int64(1) << uint(f)
}

// Abs returns |x|, saturating Abs(Min) to Max.
func Abs(x int64) int64 {
	if x < 0 {
		if x == Min {
			return Max
		}
		return -x
	}
	return x
}

// Mul returns round(a·b / 2^f) without intermediate overflow. Ties round
// away from zero. Results outside the int64 range saturate.
func Mul(a, b int64, f int) int64 {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	if f > 0 {
		var carry uint64
		lo, carry = bits.Add64(lo, uint64(1)<<uint(f-1), 0)
		hi += carry
		lo = lo>>uint(f) | hi<<uint(wordBits-f)
		hi >>= uint(f)
	}
	return fromWide(hi, lo, neg)
}

// Div returns round(a·2^f / b). Division by zero is not a fault: it yields
// Max for a ≥ 0 and Min for a < 0. Quotients outside the int64 range
// saturate.
func Div(a, b int64, f int) int64 {
	if b == 0 {
		if a < 0 {
			return Min
		}
		return Max
	}
	neg := (a < 0) != (b < 0)
	ua, ub := magnitude(a), magnitude(b)

	hi := ua >> uint(wordBits-f)
	lo := ua << uint(f)

	var carry uint64
	lo, carry = bits.Add64(lo, ub>>halfShift, 0)
	hi += carry
	if hi >= ub {
		return saturated(neg)
	}
	q, _ := bits.Div64(hi, lo, ub)
	return fromWide(0, q, neg)
}

// AddSat returns a + b, saturating instead of wrapping.
func AddSat(a, b int64) int64 {
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return saturated(a < 0)
	}
	return s
}

// MulShift returns (a·k) >> s computed on 128 bits, truncating toward zero.
// It is the closed-form index arithmetic used by uniform tables, where k is
// a precomputed reciprocal scale.
func MulShift(a int64, k uint64, s uint) int64 {
	hi, lo := bits.Mul64(magnitude(a), k)
	if s >= wordBits {
		lo = hi >> (s - wordBits)
		hi = 0
	} else if s > 0 {
		lo = lo>>s | hi<<(wordBits-s)
		hi >>= s
	}
	return fromWide(hi, lo, a < 0)
}

// FromFloat converts v to format f, truncating toward zero and saturating.
// It is a convenience for tests and tooling, not for evaluation paths.
func FromFloat(v float64, f int) int64 {
	scaled := math.Ldexp(v, f)
	switch {
	case math.IsNaN(scaled):
		return 0
	case scaled >= math.MaxInt64:
		return Max
	case scaled <= math.MinInt64:
		return Min
	}
	return int64(scaled)
}

// ToFloat converts a raw value in format f to float64.
func ToFloat(x int64, f int) float64 {
	return math.Ldexp(float64(x), -f)
}

func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-x) // -Min wraps to Min, whose bit pattern is 2^63
	}
	return uint64(x)
}

func saturated(neg bool) int64 {
	if neg {
		return Min
	}
	return Max
}

// fromWide applies the sign to a 128-bit magnitude and saturates.
func fromWide(hi, lo uint64, neg bool) int64 {
	if neg {
		if hi != 0 || lo > signBit {
			return Min
		}
		return -int64(lo)
	}
	if hi != 0 || lo >= signBit {
		return Max
	}
	return int64(lo)
}
