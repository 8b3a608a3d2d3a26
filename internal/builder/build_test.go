package builder

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	fixedmath "github.com/tphakala/go-fixedmath"
	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/internal/oracle"
	"github.com/tphakala/go-fixedmath/lut"
)

const (
	testDigits   = 40
	testFracBits = 40

	// atanMidTolerance bounds Hermite error with 64 brackets on [0, 1].
	atanMidTolerance = 5e-9
	// log2MidTolerance bounds quadratic error with 256 Chebyshev brackets.
	log2MidTolerance = 2e-7
)

func smallPolicy() Policy {
	region := func(lo, hi string, count int, kind lut.Kind, spacing lut.Spacing) RegionPolicy {
		return RegionPolicy{Lo: mustBound(lo), Hi: mustBound(hi), Count: count, Kind: kind, Spacing: spacing}
	}
	return Policy{
		Digits: testDigits,
		Tables: map[string]FuncPolicy{
			Atan: {Func: "atan", FracBits: testFracBits, Regions: []RegionPolicy{
				region("0", "1", 64, lut.Hermite, lut.Uniform),
			}},
			Log2: {Func: "log2", FracBits: testFracBits, Regions: []RegionPolicy{
				region("1", "2", 256, lut.Quadratic, lut.Chebyshev),
			}},
			Acos: {Func: "acos", FracBits: testFracBits, Regions: []RegionPolicy{
				region("0", "0.5", 64, lut.Quadratic, lut.Uniform),
				region("0.5", "0.9", 32, lut.Hermite, lut.Chebyshev),
				region("0.9", "1", 8, lut.Quadratic, lut.Uniform),
			}},
			Sin: {Func: "sin", FracBits: testFracBits, Regions: []RegionPolicy{
				region("0", "0.5pi", 32, lut.Hermite, lut.Uniform),
			}},
		},
	}
}

func newBuilder(t *testing.T, p Policy, opts ...Option) *Builder {
	t.Helper()
	b, err := New(p, opts...)
	require.NoError(t, err)
	return b
}

func TestNew_InvalidPolicy(t *testing.T) {
	p := smallPolicy()
	p.Digits = 1
	_, err := New(p)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestBuildFunc_SamplesAreTruncated(t *testing.T) {
	table, err := newBuilder(t, smallPolicy()).BuildFunc(Atan)
	require.NoError(t, err)
	require.Len(t, table.Regions, 1)

	r := table.Regions[0]
	assert.Equal(t, int64(1)<<34, lut.UniformNode(r.Lo, r.Hi, r.Count, 1)-r.Lo)
	for k, x := range uniformNodes(r.Lo, r.Hi, r.Count) {
		xf := fixed.ToFloat(x, testFracBits)
		over := math.Ldexp(math.Atan(xf), testFracBits) - float64(r.Values[k])
		assert.True(t, over > -0.01 && over < 1.01, "k=%d value %d off by %g ulp", k, r.Values[k], over)

		d := math.Ldexp(1/(1+xf*xf), testFracBits) - float64(r.Derivs[k])
		assert.True(t, d > -0.01 && d < 1.01, "k=%d derivative off by %g ulp", k, d)
	}
}

func TestBuildFunc_Accuracy(t *testing.T) {
	b := newBuilder(t, smallPolicy())
	tests := []struct {
		name      string
		ref       func(float64) float64
		lo, hi    float64
		tolerance float64
	}{
		{Atan, math.Atan, 0, 1, atanMidTolerance},
		{Log2, math.Log2, 1, 2, log2MidTolerance},
		{Acos, math.Acos, 0, 0.9, atanMidTolerance * 10},
		{Sin, math.Sin, 0, math.Pi / 2, atanMidTolerance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := b.BuildFunc(tt.name)
			require.NoError(t, err)

			const points = 1999
			for k := range points {
				x := tt.lo + (tt.hi-tt.lo)*(float64(k)+0.5)/points
				got := fixed.ToFloat(table.Eval(fixed.FromFloat(x, testFracBits)), testFracBits)
				require.InDelta(t, tt.ref(x), got, tt.tolerance, "x=%g", x)
			}
		})
	}
}

func TestBuildFunc_ChebyshevQuadratic(t *testing.T) {
	table, err := newBuilder(t, smallPolicy()).BuildFunc(Log2)
	require.NoError(t, err)

	r := table.Regions[0]
	n := r.Count
	require.Len(t, r.Nodes, n+1)
	assert.Equal(t, r.Lo, r.Nodes[0])
	assert.Equal(t, r.Hi, r.Nodes[n])
	for k := 1; k < n; k++ {
		assert.InDelta(t, r.Lo+r.Hi, r.Nodes[k]+r.Nodes[n-k], 2, "nodes %d and %d not mirrored", k, n-k)
	}
	assert.Equal(t, (r.Lo+r.Hi)/2, r.Nodes[n/2], "centre node")

	assert.Len(t, r.Values, n+2, "guard sample past 2")
	assert.Len(t, r.Slopes, n)
	assert.Len(t, r.Curves, n)
	assert.NotZero(t, r.Curves[n-1])
	assert.Equal(t, fixed.One(testFracBits), r.Values[n])

	// Every node reproduces its own sample.
	for k, x := range r.Nodes {
		assert.Equal(t, r.Values[k], table.Eval(x), "node %d", k)
	}
}

func TestBuildFunc_GuardOmittedOutsideDomain(t *testing.T) {
	table, err := newBuilder(t, smallPolicy()).BuildFunc(Acos)
	require.NoError(t, err)
	require.Len(t, table.Regions, 3)

	assert.Len(t, table.Regions[0].Values, table.Regions[0].Count+2)
	last := table.Regions[2]
	assert.Len(t, last.Values, last.Count+1, "acos is undefined past 1")
	assert.Equal(t, int64(0), last.Values[last.Count])
}

func TestBuildFunc_Errors(t *testing.T) {
	b := newBuilder(t, smallPolicy())
	_, err := b.BuildFunc("sinh")
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	// tan at the truncated π/2 does not fit 40 fractional bits.
	p := smallPolicy()
	p.Tables[Tan] = FuncPolicy{Func: "tan", FracBits: testFracBits, Regions: []RegionPolicy{
		{Lo: mustBound("0"), Hi: mustBound("0.5pi"), Count: 16, Kind: lut.Hermite},
	}}
	_, err = newBuilder(t, p).BuildFunc(Tan)
	assert.ErrorIs(t, err, oracle.ErrOverflow)
}

func TestBuild_Deterministic(t *testing.T) {
	p, err := smallPolicy().Only(Atan, Log2)
	require.NoError(t, err)

	first, err := newBuilder(t, p).Build()
	require.NoError(t, err)
	second, err := newBuilder(t, p).Build()
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
	assert.Equal(t, fixed.Pi61, first.Pi)
	assert.Equal(t, []string{Atan, Log2}, first.Names)
}

func TestResult_Engine(t *testing.T) {
	p, err := smallPolicy().Only(Atan, Sin)
	require.NoError(t, err)
	res, err := newBuilder(t, p).Build()
	require.NoError(t, err)

	tables := res.FixedTables()
	assert.Equal(t, fixed.Pi61, tables.Pi)
	assert.Same(t, res.Tables[Atan], tables.Atan)
	assert.Same(t, res.Tables[Sin], tables.Sin)
	assert.Nil(t, tables.Log2)

	e, err := res.Engine()
	require.NoError(t, err)
	assert.True(t, e.Has(fixedmath.FuncCos))
	assert.False(t, e.Has(fixedmath.FuncAcos))
	assert.InDelta(t, math.Pi/4, fixed.ToFloat(e.Atan(fixed.One(testFracBits), testFracBits), testFracBits), atanMidTolerance)
}

func TestBuild_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	b := newBuilder(t, smallPolicy(), WithLogger(zap.New(core)))

	res, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, len(res.Tables), logs.FilterMessage("built table").Len())
	assert.Equal(t, 6, logs.FilterMessage("built region").Len())
}

func TestBuild_DefaultPolicy(t *testing.T) {
	if testing.Short() {
		t.Skip("full-precision build")
	}
	res, err := newBuilder(t, DefaultPolicy()).Build()
	require.NoError(t, err)
	assert.Equal(t, TableNames, res.Names)

	for name, table := range res.Tables {
		require.NoError(t, table.Validate(), name)
	}

	// acos(0) is the truncated π/2, which is the table π halved.
	acos := res.Tables[Acos]
	assert.Equal(t, PiAt(testFracBits)>>1, acos.Regions[0].Values[0])
	lo, hi := acos.Domain()
	assert.Equal(t, int64(0), lo)
	assert.Equal(t, mustBound("0.999").Fixed(testFracBits), hi)

	_, hi = res.Tables[Sin].Domain()
	assert.Equal(t, PiAt(testFracBits)>>1, hi)
}

// TestBuild_MatchesCompiledTables fails when the committed tables of package
// fixedmath drift from what the default policy builds; rerun go generate.
func TestBuild_MatchesCompiledTables(t *testing.T) {
	if testing.Short() {
		t.Skip("full-precision build")
	}
	res, err := newBuilder(t, DefaultPolicy()).Build()
	require.NoError(t, err)

	if diff := cmp.Diff(res.FixedTables(), fixedmath.Default().Tables()); diff != "" {
		t.Errorf("compiled tables are stale (-built +compiled):\n%s", diff)
	}
}
