package lut

import (
	"math/big"
	"math/bits"
)

// scaleBits bounds the index scale below 2^63 so the 128-bit product in
// the bracket lookup never overflows.
const scaleBits = 63

// UniformIndex returns the Scale and Shift of a uniform region over
// [lo, hi) with count brackets in format f.
//
// Scale is the reciprocal bracket width count·2^(f+Shift)/(hi-lo), truncated,
// with Shift chosen to keep as many significant bits as fit. It is computed
// once at construction so lookups need no division.
func UniformIndex(lo, hi int64, count, f int) (scale uint64, shift uint) {
	span := new(big.Int).Sub(big.NewInt(hi), big.NewInt(lo))
	num := new(big.Int).Lsh(big.NewInt(int64(count)), uint(f))

	whole := new(big.Int).Quo(num, span)
	if b := whole.BitLen(); b < scaleBits {
		shift = uint(scaleBits - b)
	}
	num.Lsh(num, shift)
	scale = num.Quo(num, span).Uint64()
	return scale, shift
}

// UniformNode returns the k-th node lo + ⌊k·(hi-lo)/count⌋ of a uniform
// region. Tables are sampled at exactly these nodes.
func UniformNode(lo, hi int64, count, k int) int64 {
	h, l := bits.Mul64(uint64(hi-lo), uint64(k))
	q, _ := bits.Div64(h, l, uint64(count))
	return lo + int64(q)
}
