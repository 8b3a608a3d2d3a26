package fixedmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/internal/testutil"
)

const q = 40

func evalAll(in []int64, fn func(int64) int64) []int64 {
	out := make([]int64, len(in))
	for i, x := range in {
		out[i] = fn(x)
	}
	return out
}

func TestAcosBoundaries(t *testing.T) {
	e := testEngine(t)
	one := fixed.One(q)

	assert.Equal(t, int64(0), e.Acos(one, q), "acos(1)")
	assert.Equal(t, int64(0), e.Acos(2*one, q), "acos above 1 clamps")
	assert.Equal(t, e.Pi(q), e.Acos(-one, q), "acos(-1)")
	assert.Equal(t, e.Pi(q), e.Acos(fixed.Min, q), "acos(Min)")
	assert.Equal(t, e.Tables().Acos.Regions[0].Values[0], e.Acos(0, q), "acos(0) is the stored sample")
	assert.InDelta(t, math.Pi/2, ToFloat(e.Acos(0, q), q), 1e-11)
}

func TestAcosKnownValue(t *testing.T) {
	e := testEngine(t)
	got := ToFloat(e.Acos(FromFloat(0.8, q), q), q)
	assert.InDelta(t, 0.6435011087932844, got, 1e-10)
}

func TestAcosAccuracy(t *testing.T) {
	e := testEngine(t)
	in := testutil.Grid(-1, 1, 200001, q)
	got := evalAll(in, func(x int64) int64 { return e.Acos(x, q) })
	testutil.AssertMaxError(t, in, got, q, math.Acos, testutil.DefaultTolerance)
}

func TestAcosNearOne(t *testing.T) {
	e := testEngine(t)
	// Dense sampling across the small-angle branch and the last table regions.
	in := testutil.Grid(0.98, 1, 100001, q)
	got := evalAll(in, func(x int64) int64 { return e.Acos(x, q) })
	testutil.AssertMaxError(t, in, got, q, math.Acos, testutil.DefaultTolerance)
}

func TestAcosMonotonic(t *testing.T) {
	e := testEngine(t)
	tests := []struct {
		name   string
		lo, hi float64
		step   int64
	}{
		{"full range", -1, 1, 1 << 23},
		{"region 0.5", 0.49, 0.51, 1 << 16},
		{"region 0.8", 0.79, 0.81, 1 << 16},
		{"region 0.95", 0.94, 0.96, 1 << 16},
		{"region 0.99", 0.989, 0.991, 1 << 16},
		{"series threshold", 0.998, 1, 1 << 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testutil.RawGrid(FromFloat(tt.lo, q), FromFloat(tt.hi, q), tt.step)
			require.NotEmpty(t, in)
			got := evalAll(in, func(x int64) int64 { return e.Acos(x, q) })
			testutil.AssertNonIncreasing(t, got)
		})
	}
}

func TestAcosSymmetryExact(t *testing.T) {
	e := testEngine(t)
	for _, f := range []int{16, 20, 32, q} {
		for _, x := range testutil.Grid(0, 1, 4001, f)[1:] {
			require.Equal(t, e.Pi(f)-e.Acos(x, f), e.Acos(-x, f), "f=%d x=%d", f, x)
		}
	}
}

func TestAcosFormatConsistency(t *testing.T) {
	e := testEngine(t)
	for _, x := range testutil.Grid(0, 1, 2001, 20) {
		want := fixed.Convert(e.Acos(fixed.Convert(x, 20, q), q), q, 20)
		require.Equal(t, want, e.Acos(x, 20), "x=%d", x)
	}
}

func TestAcosFineFormats(t *testing.T) {
	e := testEngine(t)
	for _, f := range []int{50, 56, 62} {
		got := ToFloat(e.Acos(FromFloat(0.3, f), f), f)
		assert.InDelta(t, math.Acos(0.3), got, 1e-10, "f=%d", f)
	}
}

func TestAsin(t *testing.T) {
	e := testEngine(t)
	one := fixed.One(q)

	assert.Equal(t, e.Pi(q)>>1, e.Asin(one, q))
	assert.Equal(t, -(e.Pi(q) >> 1), e.Asin(-one, q))
	assert.InDelta(t, math.Pi/6, ToFloat(e.Asin(FromFloat(0.5, q), q), q), 1e-10)

	in := testutil.Grid(-1, 1, 20001, q)
	got := evalAll(in, func(x int64) int64 { return e.Asin(x, q) })
	testutil.AssertMaxError(t, in, got, q, math.Asin, testutil.DefaultTolerance)
	testutil.AssertNonDecreasing(t, evalAll(testutil.RawGrid(-one, one, 1<<23), func(x int64) int64 { return e.Asin(x, q) }))

	for _, x := range in {
		require.Equal(t, -e.Asin(x, q), e.Asin(-x, q), "x=%d", x)
	}
}
