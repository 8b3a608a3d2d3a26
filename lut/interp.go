package lut

import (
	"math/bits"

	"github.com/tphakala/go-fixedmath/fixed"
)

// Guard bits carried through the multi-step interpolants. Intermediates are
// kept at f+g fractional bits and rounded once, so the result is the exact
// polynomial rounded to f bits up to 2^-g ulp. g shrinks when the
// coefficients leave less headroom.
const (
	maxGuardBits = 16

	// guardHeadroom is the bit length budget of a guarded intermediate,
	// leaving the sign bit and one carry bit.
	guardHeadroom = 62
)

// linear returns y0 + t·(y1-y0).
func linear(y0, y1, t int64, f int) int64 {
	return y0 + fixed.Mul(t, y1-y0, f)
}

// quadratic evaluates the parabola through (0,y0), (1,y1), (2,y2) at t.
//
// Centred on y1 with s = t-1 the parabola is a·s² + b·s + c where
// a = (y0+y2)/2 - y1, b = (y2-y0)/2, c = y1. The same polynomial is
// evaluated here in Newton form anchored at y0,
//
//	y0 + t·(Δ1 + (t-1)·Δ2/2)
//
// so t = 0 returns y0 exactly and the halving folds into one extra
// fractional bit of the inner multiply.
func quadratic(y0, y1, y2, t int64, f int) int64 {
	d1 := y1 - y0
	d2 := y2 - 2*y1 + y0
	g := guardBits(max(mag(d1), mag(d2)), 1)
	inner := d1<<g + fixed.Mul(t-fixed.One(f), d2<<g, f+1)
	return y0 + roundShift(fixed.Mul(t, inner, f), g)
}

// newton evaluates y + u·(slope + v·curve), the divided-difference form of a
// parabola, with u and v the offsets from the bracket's two nodes.
func newton(y, slope, curve, u, v int64, f int) int64 {
	// Both offsets are bounded by the bracket width u - v.
	width := bits.Len64(uint64(fixed.Abs(u-v)) >> uint(f))
	g := guardBits(max(mag(slope), mag(curve)), 1+2*width)
	inner := slope<<g + fixed.Mul(v, curve<<g, f)
	return y + roundShift(fixed.Mul(u, inner, f), g)
}

// hermite evaluates the cubic Hermite segment between p0 and p1 with
// endpoint slopes m0 and m1 already scaled to the bracket width.
// Uses the formula: y = ((a*t + b)*t + c)*t + d
//
// The Horner steps run at f+g bits and only the final sum is rounded, which
// keeps the result non-decreasing wherever the segment rises by more than a
// few 2^-g ulp per step of t.
func hermite(p0, p1, m0, m1, t int64, f int) int64 {
	dp := p0 - p1
	coefA := 2*dp + m0 + m1
	coefB := -3*dp - 2*m0 - m1
	coefC := m0
	coefD := p0

	g := guardBits(max(mag(coefA), mag(coefB), mag(coefC)), 2)
	y := fixed.Mul(coefA<<g, t, f) + coefB<<g
	y = fixed.Mul(y, t, f) + coefC<<g
	return roundShift(fixed.Mul(y, t, f), g) + coefD
}

func mag(v int64) uint64 { return uint64(fixed.Abs(v)) }

// guardBits returns how many guard bits a value of magnitude m can take when
// extra more bits of growth must still fit.
func guardBits(m uint64, extra int) uint {
	g := guardHeadroom - bits.Len64(m) - extra
	return uint(max(0, min(maxGuardBits, g)))
}

// roundShift returns v / 2^g rounded half up. It is non-decreasing in v.
func roundShift(v int64, g uint) int64 {
	if g == 0 {
		return v
	}
	return (v + int64(1)<<(g-1)) >> g
}
