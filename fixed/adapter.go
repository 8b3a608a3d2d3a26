package fixed

// Convert rescales x from format from to format to.
//
// Widening is a left shift that saturates when the value does not fit.
// Narrowing is an arithmetic right shift: the dropped bits are discarded
// silently, truncating toward negative infinity. Narrowing the same value
// twice to the same format is a no-op the second time, and widening then
// narrowing back is lossless when nothing saturated.
func Convert(x int64, from, to int) int64 {
	switch {
	case to == from || x == 0:
		return x
	case to < from:
		s := from - to
		if s >= wordBits {
			if x < 0 {
				return -1
			}
			return 0
		}
		return x >> uint(s)
	}

	s := to - from
	if s >= wordBits-1 {
		return saturated(x < 0)
	}
	if x > Max>>uint(s) {
		return Max
	}
	if x < Min>>uint(s) {
		return Min
	}
	return x << uint(s)
}

// Widen converts the magnitude u from format from to format to as a 128-bit
// value (hi, lo), so widening never saturates. Narrowing truncates.
func Widen(u uint64, from, to int) (hi, lo uint64) {
	if to <= from {
		s := from - to
		if s >= wordBits {
			return 0, 0
		}
		return 0, u >> uint(s)
	}
	s := uint(to - from)
	if s >= wordBits {
		return u << (s - wordBits), 0
	}
	return u >> (wordBits - s), u << s
}
