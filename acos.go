package fixedmath

import "github.com/tphakala/go-fixedmath/fixed"

// Acos returns acos(x) in [0, π].
//
// Special cases:
//
//	Acos(x) = 0   for x ≥ 1
//	Acos(x) = π   for x ≤ -1
//	Acos(0) = the stored π/2 sample, exactly
//	Acos(-x) = Pi(f) - Acos(x), exactly
func (e *Engine) Acos(x int64, f int) int64 {
	a := e.acos
	if a.t == nil || !validFormat(f) {
		return fixed.Min
	}
	m, neg := magnitude(x)
	if m >= uint64(fixed.One(f)) {
		if neg {
			return e.Pi(f)
		}
		return 0
	}

	r := fixed.Convert(e.acosMagnitude(fixed.Convert(int64(m), f, a.f)), a.f, f)
	if neg {
		return e.Pi(f) - r
	}
	return r
}

// Asin returns asin(x) = π/2 - acos(|x|), with the sign of x.
func (e *Engine) Asin(x int64, f int) int64 {
	a := e.acos
	if a.t == nil || !validFormat(f) {
		return fixed.Min
	}
	m, neg := magnitude(x)
	half := e.Pi(f) >> halfShift
	if m >= uint64(fixed.One(f)) {
		return negateIf(half, neg)
	}
	r := fixed.Convert(e.acosMagnitude(fixed.Convert(int64(m), f, a.f)), a.f, f)
	return negateIf(half-r, neg)
}

// acosMagnitude evaluates acos(m) for m in [0, 1) in the table format.
func (e *Engine) acosMagnitude(m int64) int64 {
	a := e.acos
	if m < e.acosLimit {
		return a.t.Eval(m)
	}

	// Near 1 the derivative is unbounded. acos(1-ε) = √(2ε)·P(ε) instead.
	eps := a.one - m
	s := fixed.SqrtFast(eps<<1, a.f)
	p := fixed.Mul(eps, e.acosC3, a.f) + e.acosC2
	p = fixed.Mul(eps, p, a.f) + e.acosC1
	p = fixed.Mul(eps, p, a.f) + a.one
	return fixed.Mul(s, p, a.f)
}
