package accuracy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fixedmath "github.com/tphakala/go-fixedmath"
	"github.com/tphakala/go-fixedmath/internal/oracle"
)

const q = 40

func identity(x float64) float64 { return x }

func TestMeasureConstantOffset(t *testing.T) {
	const f = 20
	c := Case{
		Name:      "offset",
		Eval:      func(x int64, _ int) int64 { return x + 3 },
		Ref:       identity,
		Lo:        -4,
		Hi:        4,
		Direction: Increasing,
	}
	rep, err := Measure(c, f, 1001)
	require.NoError(t, err)

	ulp := math.Ldexp(1, -f)
	assert.Equal(t, 1001, rep.Samples)
	assert.Zero(t, rep.Skipped)
	assert.Zero(t, rep.Violations)
	assert.InDelta(t, 3*ulp, rep.MaxAbs, 1e-15)
	assert.InDelta(t, 3*ulp, rep.MeanAbs, 1e-15)
	assert.InDelta(t, 3*ulp, rep.RMS, 1e-15)
	assert.InDelta(t, 3*ulp, rep.P99, 1e-15)
	assert.InDelta(t, 0, rep.StdDev, 1e-15)
	assert.InDelta(t, 3, rep.MaxULP, 1e-9)
	assert.Contains(t, rep.String(), "offset")
}

func TestMeasureViolations(t *testing.T) {
	c := Case{
		Name:      "reversed",
		Eval:      func(x int64, _ int) int64 { return -x },
		Ref:       func(x float64) float64 { return -x },
		Lo:        0,
		Hi:        1,
		Direction: Increasing,
	}
	rep, err := Measure(c, q, 11)
	require.NoError(t, err)
	assert.Equal(t, 10, rep.Violations)
	assert.Zero(t, rep.MaxAbs)

	c.Direction = Decreasing
	rep, err = Measure(c, q, 11)
	require.NoError(t, err)
	assert.Zero(t, rep.Violations)
}

func TestMeasureSkipsNonFinite(t *testing.T) {
	c := Case{
		Name: "sqrt",
		Eval: func(x int64, _ int) int64 { return x },
		Ref: func(x float64) float64 {
			if x < 0 {
				return math.NaN()
			}
			return x
		},
		Lo: -1,
		Hi: 1,
	}
	rep, err := Measure(c, q, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Skipped)
	assert.Equal(t, 3, rep.Samples)
}

func TestMeasureErrors(t *testing.T) {
	valid := Case{Name: "id", Eval: func(x int64, _ int) int64 { return x }, Ref: identity, Lo: 0, Hi: 1}

	_, err := Measure(valid, q, 1)
	require.ErrorIs(t, err, ErrTooFewSamples)

	noEval := valid
	noEval.Eval = nil
	_, err = Measure(noEval, q, 10)
	require.ErrorIs(t, err, ErrInvalidCase)

	empty := valid
	empty.Hi = empty.Lo
	_, err = Measure(empty, q, 10)
	require.ErrorIs(t, err, ErrInvalidCase)
}

func TestSample(t *testing.T) {
	in, err := Sample(0, 1, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, in)
}

func TestDefaultCases(t *testing.T) {
	e, err := fixedmath.LoadDefault()
	require.NoError(t, err)

	cases := DefaultCases(e)
	require.Len(t, cases, len(fixedmath.Funcs()))
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			rep, err := Measure(c, q, 4001)
			require.NoError(t, err)
			tol := 1e-9
			if c.Name == fixedmath.FuncAtanFast.String() {
				tol = 1.5e-5
			}
			assert.LessOrEqual(t, rep.MaxAbs, tol, rep.String())
			assert.Zero(t, rep.Violations, rep.String())
			assert.LessOrEqual(t, rep.P99, rep.MaxAbs)
			assert.LessOrEqual(t, rep.MeanAbs, rep.RMS+1e-18)
		})
	}
}

func TestCaseForMissingTable(t *testing.T) {
	base, err := fixedmath.LoadDefault()
	require.NoError(t, err)
	tables := base.Tables()
	e, err := fixedmath.NewEngine(fixedmath.Tables{Pi: tables.Pi, Log2: tables.Log2})
	require.NoError(t, err)

	_, ok := CaseFor(e, fixedmath.FuncSin)
	assert.False(t, ok)
	cases := DefaultCases(e)
	require.Len(t, cases, 1)
	assert.Equal(t, "log2", cases[0].Name)
}

func TestOracleRef(t *testing.T) {
	o, err := oracle.New(oracle.MinDigits)
	require.NoError(t, err)

	ref, err := OracleRef(o, "acos")
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/3, ref(0.5), 1e-15)
	assert.True(t, math.IsNaN(ref(2)))

	_, err = OracleRef(o, "exp")
	require.Error(t, err)
}
