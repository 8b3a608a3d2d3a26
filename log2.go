package fixedmath

import (
	"math/bits"

	"github.com/tphakala/go-fixedmath/fixed"
)

// Log2 returns log2(x).
//
// With x = m·2^e and m in [1, 2), the exponent comes from the bit length of
// the raw value and the mantissa is shifted straight into the table format,
// so no intermediate conversion can overflow. The result is log2(m) + e.
//
// Special cases:
//
//	Log2(x) = fixed.Min for x ≤ 0
//	Log2(2^k) = k, exactly, when the table stores log2(1) = 0
func (e *Engine) Log2(x int64, f int) int64 {
	l := e.log2
	if l.t == nil || !validFormat(f) || x <= 0 {
		return fixed.Min
	}

	top := bits.Len64(uint64(x)) - 1 // x = m·2^top in raw units
	var m int64
	if shift := l.f - top; shift >= 0 {
		m = x << uint(shift)
	} else {
		m = x >> uint(-shift)
	}

	exp := fixed.Convert(int64(top-f), 0, f)
	return fixed.AddSat(fixed.Convert(l.t.Eval(m), l.f, f), exp)
}
