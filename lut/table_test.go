package lut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fixedmath/fixed"
)

const (
	testFracBits = 40

	// polyTolerance bounds the error when a rule reproduces a polynomial
	// of its own degree: only sample truncation and product rounding remain.
	polyTolerance = 1e-11

	evalPoints = 997
)

type realFunc func(float64) float64

// uniformRegion samples fn (and dfn for Hermite) on count equal brackets.
func uniformRegion(lo, hi float64, count int, kind Kind, guard bool, fn, dfn realFunc) Region {
	const f = testFracBits
	r := Region{
		Lo:      fixed.FromFloat(lo, f),
		Hi:      fixed.FromFloat(hi, f),
		Kind:    kind,
		Spacing: Uniform,
		Count:   count,
	}
	r.Scale, r.Shift = UniformIndex(r.Lo, r.Hi, count, f)

	n := count + 1
	if guard {
		n++
	}
	for k := range n {
		x := UniformNode(r.Lo, r.Hi, count, k)
		xf := fixed.ToFloat(x, f)
		r.Values = append(r.Values, fixed.FromFloat(fn(xf), f))
		if kind == Hermite {
			r.Derivs = append(r.Derivs, fixed.FromFloat(dfn(xf), f))
		}
	}
	return r
}

// chebyshevRegion samples fn on Chebyshev-Lobatto nodes of [lo, hi].
func chebyshevRegion(lo, hi float64, count int, kind Kind, fn, dfn realFunc) Region {
	const f = testFracBits
	r := Region{
		Lo:      fixed.FromFloat(lo, f),
		Hi:      fixed.FromFloat(hi, f),
		Kind:    kind,
		Spacing: Chebyshev,
		Count:   count,
	}
	c, h := (lo+hi)/2, (hi-lo)/2
	for k := 0; k <= count; k++ {
		x := fixed.FromFloat(c-h*math.Cos(math.Pi*float64(k)/float64(count)), f)
		switch k {
		case 0:
			x = r.Lo
		case count:
			x = r.Hi
		}
		xf := fixed.ToFloat(x, f)
		r.Nodes = append(r.Nodes, x)
		r.Values = append(r.Values, fixed.FromFloat(fn(xf), f))
		if kind == Hermite {
			r.Derivs = append(r.Derivs, fixed.FromFloat(dfn(xf), f))
		}
	}
	if kind == Quadratic {
		for i := range count {
			r.Slopes = append(r.Slopes, fixed.Div(r.Values[i+1]-r.Values[i], r.Nodes[i+1]-r.Nodes[i], f))
			curve := int64(0)
			if i+2 <= count {
				next := fixed.Div(r.Values[i+2]-r.Values[i+1], r.Nodes[i+2]-r.Nodes[i+1], f)
				curve = fixed.Div(next-r.Slopes[i], r.Nodes[i+2]-r.Nodes[i], f)
			}
			r.Curves = append(r.Curves, curve)
		}
	}
	return r
}

func square(x float64) float64 { return x * x }
func double(x float64) float64 { return 2 * x }
func cubic(x float64) float64 { return x*x*x - x }
func dcubic(x float64) float64 { return 3*x*x - 1 }
func affine(x float64) float64 { return 0.75*x - 0.125 }
func daffine(float64) float64 { return 0.75 }
func along(lo, hi float64, k int) float64 {
	return lo + (hi-lo)*float64(k)/evalPoints
}

func TestRegion_ReproducesPolynomials(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		fn     realFunc
		lo, hi float64
	}{
		{"uniform linear", uniformRegion(0, 1, 8, Linear, false, affine, nil), affine, 0, 1},
		{"uniform quadratic with guard", uniformRegion(0, 1, 16, Quadratic, true, square, nil), square, 0, 1},
		{"uniform hermite", uniformRegion(-1, 1, 8, Hermite, false, cubic, dcubic), cubic, -1, 1},
		{"chebyshev linear", chebyshevRegion(0.5, 2, 12, Linear, affine, daffine), affine, 0.5, 2},
		{"chebyshev quadratic", chebyshevRegion(1, 2, 24, Quadratic, square, double), square, 1, 2 - 1.0/64},
		{"chebyshev hermite", chebyshevRegion(0.25, 1.5, 10, Hermite, cubic, dcubic), cubic, 0.25, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{Name: tt.name, FracBits: testFracBits, Regions: []Region{tt.region}}
			require.NoError(t, table.Validate())

			for k := 0; k < evalPoints; k++ {
				x := along(tt.lo, tt.hi, k)
				got := fixed.ToFloat(table.Eval(fixed.FromFloat(x, testFracBits)), testFracBits)
				require.InDelta(t, tt.fn(x), got, polyTolerance, "x=%g", x)
			}
		})
	}
}

// TestRegion_QuadraticMirrorsMissingSample checks that without a guard the
// last bracket degrades to linear interpolation instead of reading past
// the samples.
func TestRegion_QuadraticMirrorsMissingSample(t *testing.T) {
	r := uniformRegion(0, 1, 4, Quadratic, false, square, nil)
	require.Len(t, r.Values, 5)

	x := fixed.FromFloat(0.875, testFracBits)
	got := fixed.ToFloat(r.Eval(x, testFracBits), testFracBits)
	// Chord between 0.75² and 1.
	assert.InDelta(t, 0.78125, got, polyTolerance)
}

func TestRegion_ExactAtNodes(t *testing.T) {
	uniform := uniformRegion(0, 1, 8, Hermite, false, cubic, dcubic)
	cheb := chebyshevRegion(1, 2, 16, Quadratic, square, double)

	assert.Equal(t, uniform.Values[0], uniform.Eval(uniform.Lo, testFracBits))
	assert.Equal(t, uniform.Values[uniform.Count], uniform.Eval(uniform.Hi, testFracBits))
	assert.Equal(t, uniform.Values[4], uniform.Eval(fixed.One(testFracBits)/2, testFracBits))

	for k, x := range cheb.Nodes {
		assert.Equal(t, cheb.Values[k], cheb.Eval(x, testFracBits), "node %d", k)
	}
}

func TestUniformNode(t *testing.T) {
	const count = 7
	lo, hi := int64(-3), int64(1000003)
	span := hi - lo

	assert.Equal(t, lo, UniformNode(lo, hi, count, 0))
	assert.Equal(t, hi, UniformNode(lo, hi, count, count))

	var total int64
	for k := range count {
		a, b := UniformNode(lo, hi, count, k), UniformNode(lo, hi, count, k+1)
		assert.Equal(t, lo+int64(k+1)*span/count, b, "node %d", k+1)
		w := b - a
		assert.True(t, w == span/count || w == span/count+1, "bracket %d width %d", k, w)
		total += w
	}
	assert.Equal(t, span, total)

	// Spans near 2^62 need the 128-bit product.
	wide := int64(1) << 62
	assert.Equal(t, wide/3*2+(wide%3*2)/3, UniformNode(0, wide, 3, 2))
}

// TestRegion_HermiteUlpWalk walks an atan-shaped Hermite region one ulp at a
// time near its top, where the curve rises half an ulp per input ulp.
func TestRegion_HermiteUlpWalk(t *testing.T) {
	datan := func(x float64) float64 { return 1 / (1 + x*x) }
	r := uniformRegion(0, 1, 256, Hermite, false, math.Atan, datan)
	table := &Table{Name: "atan", FracBits: testFracBits, Regions: []Region{r}}
	require.NoError(t, table.Validate())

	for _, start := range []int64{r.Hi - 110000, r.Hi/2 - 50000, 1 << 20} {
		prev := r.Eval(start, testFracBits)
		for x := start + 1; x <= start+100000 && x <= r.Hi; x++ {
			y := r.Eval(x, testFracBits)
			require.GreaterOrEqual(t, y, prev, "x=%d", x)
			prev = y
		}
	}
}

func TestTable_EvalAcrossRegions(t *testing.T) {
	table := &Table{
		Name:     "square",
		FracBits: testFracBits,
		Regions: []Region{
			uniformRegion(0, 0.5, 8, Quadratic, true, square, nil),
			uniformRegion(0.5, 1, 8, Hermite, false, square, double),
			chebyshevRegion(1, 2, 8, Quadratic, square, double),
		},
	}
	require.NoError(t, table.Validate())

	lo, hi := table.Domain()
	assert.Equal(t, int64(0), lo)
	assert.Equal(t, 2*fixed.One(testFracBits), hi)

	// Boundaries land on the first sample of the next region.
	assert.Equal(t, table.Regions[1].Values[0], table.Eval(table.Regions[1].Lo))
	assert.Equal(t, table.Regions[2].Values[0], table.Eval(table.Regions[2].Lo))

	// Clamping.
	assert.Equal(t, table.Regions[0].Values[0], table.Eval(-fixed.One(testFracBits)))
	assert.Equal(t, table.Regions[2].Values[8], table.Eval(5*fixed.One(testFracBits)))

	prev := table.Eval(lo)
	for k := 1; k < evalPoints; k++ {
		y := table.Eval(fixed.FromFloat(along(0, 2, k), testFracBits))
		require.GreaterOrEqual(t, y, prev, "k=%d", k)
		prev = y
	}
}

func TestTable_Validate(t *testing.T) {
	good := func() *Table {
		return &Table{
			Name:     "square",
			FracBits: testFracBits,
			Regions: []Region{
				uniformRegion(0, 1, 4, Linear, false, square, nil),
				chebyshevRegion(1, 2, 4, Quadratic, square, double),
			},
		}
	}
	require.NoError(t, good().Validate())

	tests := []struct {
		name   string
		mutate func(*Table)
		want   error
	}{
		{"empty", func(tb *Table) { tb.Regions = nil }, ErrShape},
		{"gap", func(tb *Table) { tb.Regions[0].Hi-- }, ErrGap},
		{"boundary mismatch", func(tb *Table) { tb.Regions[1].Values[0]++ }, ErrBoundaryMismatch},
		{"nodes out of order", func(tb *Table) { tb.Regions[1].Nodes[2] = tb.Regions[1].Nodes[1] }, ErrNonMonotonic},
		{"empty interval", func(tb *Table) { tb.Regions[0].Hi = tb.Regions[0].Lo }, ErrNonMonotonic},
		{"short values", func(tb *Table) { tb.Regions[0].Values = tb.Regions[0].Values[:3] }, ErrShape},
		{"missing derivatives", func(tb *Table) { tb.Regions[0].Kind = Hermite }, ErrShape},
		{"missing curves", func(tb *Table) { tb.Regions[1].Curves = nil }, ErrShape},
		{"nodes do not span", func(tb *Table) { tb.Regions[1].Nodes[4]-- }, ErrGap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := good()
			tt.mutate(tb)
			assert.ErrorIs(t, tb.Validate(), tt.want)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Hermite", Hermite.String())
	assert.Equal(t, "Chebyshev", Chebyshev.String())
	assert.Equal(t, "Kind(?)", Kind(9).String())
}
