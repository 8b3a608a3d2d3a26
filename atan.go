package fixedmath

import "github.com/tphakala/go-fixedmath/fixed"

// Atan returns atan(x) in [-π/2, π/2].
//
// Arguments above one use atan(x) = π/2 - atan(1/x). The reciprocal is
// taken straight from the caller's raw value into the table format, so
// large arguments never overflow the table format.
//
// Special cases:
//
//	Atan(-x) = -Atan(x), exactly
//	Atan(±Max) → ±π/2 within table error
func (e *Engine) Atan(x int64, f int) int64 {
	return e.atanWith(e.atan, x, f)
}

// AtanFast is Atan from the coarser linear table.
func (e *Engine) AtanFast(x int64, f int) int64 {
	return e.atanWith(e.atanFast, x, f)
}

// Atan2 returns the angle of the point (x, y) in [-π, π]. Both
// coordinates share format f.
//
// Special cases:
//
//	Atan2(0, 0) = 0
//	Atan2(y, 0) = ±π/2
//	Atan2(0, x) = π for x < 0
//	Atan2(-y, x) = -Atan2(y, x), exactly, for y ≠ 0
func (e *Engine) Atan2(y, x int64, f int) int64 {
	return e.atan2With(e.atan, y, x, f)
}

// Atan2Fast is Atan2 from the coarser linear table.
func (e *Engine) Atan2Fast(y, x int64, f int) int64 {
	return e.atan2With(e.atanFast, y, x, f)
}

func (e *Engine) atanWith(a scaled, x int64, f int) int64 {
	if a.t == nil || !validFormat(f) {
		return fixed.Min
	}
	m, neg := magnitude(x)
	return negateIf(fixed.Convert(octant(a, int64(min(m, uint64(fixed.Max))), fixed.One(f)), a.f, f), neg)
}

func (e *Engine) atan2With(a scaled, y, x int64, f int) int64 {
	if a.t == nil || !validFormat(f) {
		return fixed.Min
	}
	if y == 0 && x == 0 {
		return 0
	}
	my, negY := magnitude(y)
	mx, negX := magnitude(x)

	r := octant(a, int64(min(my, uint64(fixed.Max))), int64(min(mx, uint64(fixed.Max))))
	if negX {
		r = a.pi - r
	}
	return negateIf(fixed.Convert(r, a.f, f), negY)
}

// octant returns atan(num/den) in the table format for non-negative
// num and den, not both zero. The ratio is formed with one division and
// folded into [0, 1] by swapping: atan(u) = π/2 - atan(1/u).
func octant(a scaled, num, den int64) int64 {
	if num <= den {
		return a.t.Eval(fixed.Div(num, den, a.f))
	}
	return a.halfPi - a.t.Eval(fixed.Div(den, num, a.f))
}
