package fixedmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/internal/testutil"
)

func TestLog2KnownValue(t *testing.T) {
	e := testEngine(t)
	x := int64(1536) << q
	got := ToFloat(e.Log2(x, q), q)
	assert.InDelta(t, 10+math.Log2(1.5), got, 1e-9)
}

func TestLog2NonPositive(t *testing.T) {
	e := testEngine(t)
	for _, x := range []int64{0, -1, -fixed.One(q), fixed.Min} {
		assert.Equal(t, fixed.Min, e.Log2(x, q), "x=%d", x)
	}
}

func TestLog2PowersOfTwoExact(t *testing.T) {
	e := testEngine(t)
	require.Equal(t, int64(0), e.Tables().Log2.Regions[0].Values[0])
	for k := -q; k <= fixed.MaxFracBits-q; k++ {
		x := int64(1) << uint(q+k)
		assert.Equal(t, int64(k)*fixed.One(q), e.Log2(x, q), "k=%d", k)
	}
}

func TestLog2Accuracy(t *testing.T) {
	e := testEngine(t)
	in := testutil.Grid(1, 2, 200001, q)
	got := evalAll(in, func(x int64) int64 { return e.Log2(x, q) })
	testutil.AssertMaxError(t, in, got, q, math.Log2, testutil.DefaultTolerance)
	testutil.AssertNonDecreasing(t, got)
}

func TestLog2AcrossOctaves(t *testing.T) {
	e := testEngine(t)
	var in []int64
	for x := 1.0 / 1024; x < 1e6; x *= 1.001 {
		in = append(in, FromFloat(x, q))
	}
	got := evalAll(in, func(x int64) int64 { return e.Log2(x, q) })
	testutil.AssertMaxError(t, in, got, q, math.Log2, testutil.DefaultTolerance)
	testutil.AssertNonDecreasing(t, got)
}

func TestLog2Formats(t *testing.T) {
	e := testEngine(t)
	tests := []struct {
		name string
		x    int64
		f    int
		want float64
		tol  float64
	}{
		{"coarse", FromFloat(1000, 16), 16, math.Log2(1000), 1.0 / (1 << 16)},
		{"integer format", 1000, 0, 9, 0},
		{"smallest raw", 1, q, -q, 0},
		{"largest raw", fixed.Max, 0, 62.5, 0.5},
		{"fine", FromFloat(3, 60), 60, math.Log2(3), 1e-10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ToFloat(e.Log2(tt.x, tt.f), tt.f), tt.tol)
		})
	}
}
