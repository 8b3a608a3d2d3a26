package fixedmath

import (
	"math/bits"

	"github.com/tphakala/go-fixedmath/fixed"
)

// Sin returns sin(x) for x in radians.
//
// The magnitude of x is widened to 128 bits in the table format and reduced
// modulo the table's 2π exactly, then folded into [0, π/2] by
// sin(r) = -sin(r-π) and sin(r) = sin(π-r). Because the stored 2π is
// truncated, very large arguments drift by (x/2π)·2^-F.
//
// Special cases:
//
//	Sin(-x) = -Sin(x), exactly
func (e *Engine) Sin(x int64, f int) int64 {
	s := e.sin
	if s.t == nil || !validFormat(f) {
		return fixed.Min
	}
	m, neg := magnitude(x)
	hi, lo := fixed.Widen(m, f, s.f)
	v, flip := e.sinTurn(hi, lo)
	return negateIf(fixed.Convert(v, s.f, f), neg != flip)
}

// Cos returns cos(x) = sin(|x| + π/2).
//
// Special cases:
//
//	Cos(-x) = Cos(x), exactly
func (e *Engine) Cos(x int64, f int) int64 {
	s := e.sin
	if s.t == nil || !validFormat(f) {
		return fixed.Min
	}
	m, _ := magnitude(x)
	hi, lo := fixed.Widen(m, f, s.f)
	var carry uint64
	lo, carry = bits.Add64(lo, uint64(s.halfPi), 0)
	hi += carry
	v, flip := e.sinTurn(hi, lo)
	return negateIf(fixed.Convert(v, s.f, f), flip)
}

// sinTurn evaluates |sin| of the non-negative 128-bit angle (hi, lo) and
// reports whether the result must be negated.
func (e *Engine) sinTurn(hi, lo uint64) (int64, bool) {
	s := e.sin
	r := int64(bits.Rem64(hi, lo, uint64(s.pi)<<1))
	flip := false
	if r >= s.pi {
		r -= s.pi
		flip = true
	}
	if r > s.halfPi {
		r = s.pi - r
	}
	return s.t.Eval(r), flip
}

// Tan returns tan(x) for x in radians.
//
// The angle is reduced modulo π and folded into [0, π/2] with
// tan(r) = -tan(π-r). Above π/4 the table is read at the complement and
// inverted, tan(r) = 1/tan(π/2-r), so the table only spans [0, π/4].
//
// Special cases:
//
//	Tan(-x) = -Tan(x), exactly
//	Tan(x) = ±fixed.Max at the pole, where the complement is zero
func (e *Engine) Tan(x int64, f int) int64 {
	t := e.tan
	if t.t == nil || !validFormat(f) {
		return fixed.Min
	}
	m, neg := magnitude(x)
	hi, lo := fixed.Widen(m, f, t.f)
	r := int64(bits.Rem64(hi, lo, uint64(t.pi)))
	if r > t.halfPi {
		r = t.pi - r
		neg = !neg
	}

	if r <= t.quarterPi {
		return negateIf(fixed.Convert(t.t.Eval(r), t.f, f), neg)
	}
	c := t.t.Eval(t.halfPi - r)
	if c == 0 {
		return negateIf(fixed.Max, neg)
	}
	return negateIf(fixed.Convert(fixed.Div(t.one, c, t.f), t.f, f), neg)
}
