package lut

import (
	"slices"

	"github.com/tphakala/go-fixedmath/fixed"
)

// Region is one contiguous piece of a table's domain with its own samples
// and interpolation rule. All values share the owning table's format.
type Region struct {
	// Lo and Hi bound the region's interval [Lo, Hi).
	Lo, Hi int64

	Kind    Kind
	Spacing Spacing

	// Count is the number of brackets. Sample k sits at the k-th node, so
	// Values holds Count+1 samples, plus an optional guard sample one
	// bracket past Hi used only by the last quadratic bracket.
	Count  int
	Values []int64

	// Derivs holds the derivative at each node for Hermite regions.
	Derivs []int64

	// Nodes holds the Count+1 sample coordinates of a Chebyshev region.
	Nodes []int64

	// Slopes and Curves hold the first and second divided differences of a
	// Chebyshev quadratic region, one per bracket.
	Slopes []int64
	Curves []int64

	// Scale and Shift map an offset from Lo to a bracket position of a
	// uniform region: pos = ((x-Lo)·Scale) >> Shift, whose integer part is
	// the bracket index and whose fraction is t.
	Scale uint64
	Shift uint
}

// Contains reports whether x lies in [Lo, Hi).
func (r *Region) Contains(x int64) bool {
	return x >= r.Lo && x < r.Hi
}

// Eval interpolates the region at x in format f. x is clamped to [Lo, Hi].
func (r *Region) Eval(x int64, f int) int64 {
	switch {
	case x <= r.Lo:
		return r.Values[0]
	case x >= r.Hi:
		return r.Values[r.Count]
	}
	if r.Spacing == Chebyshev {
		return r.evalChebyshev(x, f)
	}
	return r.evalUniform(x, f)
}

func (r *Region) evalUniform(x int64, f int) int64 {
	pos := fixed.MulShift(x-r.Lo, r.Scale, r.Shift)
	i := int(pos >> uint(f))
	if i >= r.Count {
		return r.Values[r.Count]
	}
	t := pos & (fixed.One(f) - 1)

	switch r.Kind {
	case Linear:
		return linear(r.Values[i], r.Values[i+1], t, f)
	case Quadratic:
		y0, y1 := r.Values[i], r.Values[i+1]
		y2 := 2*y1 - y0
		if i+2 < len(r.Values) {
			y2 = r.Values[i+2]
		}
		return quadratic(y0, y1, y2, t, f)
	default:
		h := UniformNode(r.Lo, r.Hi, r.Count, i+1) - UniformNode(r.Lo, r.Hi, r.Count, i)
		m0 := fixed.Mul(r.Derivs[i], h, f)
		m1 := fixed.Mul(r.Derivs[i+1], h, f)
		return hermite(r.Values[i], r.Values[i+1], m0, m1, t, f)
	}
}

func (r *Region) evalChebyshev(x int64, f int) int64 {
	i, found := slices.BinarySearch(r.Nodes, x)
	if found {
		return r.Values[i]
	}
	i--

	x0, x1 := r.Nodes[i], r.Nodes[i+1]
	switch r.Kind {
	case Linear:
		t := fixed.Div(x-x0, x1-x0, f)
		return linear(r.Values[i], r.Values[i+1], t, f)
	case Quadratic:
		return newton(r.Values[i], r.Slopes[i], r.Curves[i], x-x0, x-x1, f)
	default:
		h := x1 - x0
		t := fixed.Div(x-x0, h, f)
		m0 := fixed.Mul(r.Derivs[i], h, f)
		m1 := fixed.Mul(r.Derivs[i+1], h, f)
		return hermite(r.Values[i], r.Values[i+1], m0, m1, t, f)
	}
}
