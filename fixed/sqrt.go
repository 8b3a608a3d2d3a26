package fixed

import "math/bits"

// SqrtFast returns the non-negative square root of x in format f.
//
// The root is taken over the 128-bit value x·2^f with a fixed number of
// Newton steps from a power-of-two seed at or above the root, so the cost
// does not depend on x. The result is the floor of the exact root. Non
// positive inputs return 0.
func SqrtFast(x int64, f int) int64 {
	if x <= 0 {
		return 0
	}
	hi, lo := Widen(uint64(x), 0, f)

	n := bits.Len64(lo)
	if hi != 0 {
		n = wordBits + bits.Len64(hi)
	}
	r := uint64(1) << uint((n+1)/2)

	for range sqrtIterations {
		q, _ := bits.Div64(hi, lo, r)
		sum, carry := bits.Add64(r, q, 0)
		r = sum>>halfShift | carry<<(wordBits-1)
	}

	// Integer Newton may settle one above the floor.
	if ph, pl := bits.Mul64(r, r); ph > hi || (ph == hi && pl > lo) {
		r--
	}
	return int64(r)
}
