package fixedmath

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/internal/testutil"
	"github.com/tphakala/go-fixedmath/lut"
)

// testEngine returns the shared default engine.
func testEngine(tb testing.TB) *Engine {
	tb.Helper()
	e, err := LoadDefault()
	require.NoError(tb, err)
	return e
}

// cloneTable copies t deeply enough to modify region samples.
func cloneTable(t *lut.Table) *lut.Table {
	c := *t
	c.Regions = slices.Clone(t.Regions)
	for i := range c.Regions {
		c.Regions[i].Values = slices.Clone(c.Regions[i].Values)
	}
	return &c
}

func TestDefaultIsShared(t *testing.T) {
	a, err := LoadDefault()
	require.NoError(t, err)
	assert.Same(t, a, Default())
	assert.Equal(t, fixed.Pi61, a.Tables().Pi)
	for _, fn := range Funcs() {
		assert.True(t, a.Has(fn), fn.String())
	}
}

func TestDefaultIsCompiledIn(t *testing.T) {
	var e *Engine
	require.NotPanics(t, func() { e = Default() })
	require.NotNil(t, e)

	tables := e.Tables()
	assert.Same(t, defaultTables.Acos, tables.Acos)
	assert.Same(t, defaultTables.Log2, tables.Log2)
	require.NoError(t, tables.Validate())

	x := FromFloat(0.8, q)
	allocs := testing.AllocsPerRun(100, func() { _ = Acos(x, q) })
	assert.Zero(t, allocs)
}

func TestNewEngineValidation(t *testing.T) {
	base := testEngine(t).Tables()

	broken := cloneTable(base.Acos)
	broken.Regions[1].Values[0]++

	shifted := cloneTable(base.Log2)
	shifted.Regions[0].Lo++

	tests := []struct {
		name   string
		mutate func(*Tables)
	}{
		{"missing pi", func(tb *Tables) { tb.Pi = 0 }},
		{"atan table as sin", func(tb *Tables) { tb.Sin = base.Atan }},
		{"sin table as tan", func(tb *Tables) { tb.Tan = base.Sin }},
		{"acos table as atan", func(tb *Tables) { tb.Atan = base.Acos }},
		{"boundary mismatch", func(tb *Tables) { tb.Acos = broken }},
		{"log2 domain shifted", func(tb *Tables) { tb.Log2 = shifted }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := base
			tt.mutate(&tables)
			_, err := NewEngine(tables)
			require.ErrorIs(t, err, ErrInvalidTables)
		})
	}
}

func TestPartialEngine(t *testing.T) {
	base := testEngine(t).Tables()
	e, err := NewEngine(Tables{Pi: base.Pi, Atan: base.Atan})
	require.NoError(t, err)

	assert.True(t, e.Has(FuncAtan))
	assert.False(t, e.Has(FuncAcos))
	assert.False(t, e.Has(Func(99)))

	one := fixed.One(q)
	assert.Equal(t, testEngine(t).Atan(one, q), e.Atan(one, q))
	assert.Equal(t, testEngine(t).Atan2(one, -one, q), e.Atan2(one, -one, q))
	for _, fn := range []Func{FuncAcos, FuncAsin, FuncAtanFast, FuncSin, FuncCos, FuncTan, FuncLog2} {
		assert.Equal(t, fixed.Min, e.Eval(fn, one>>1, q), fn.String())
	}
	assert.Equal(t, fixed.Min, e.Atan2Fast(one, one, q))
}

func TestInvalidFormat(t *testing.T) {
	e := testEngine(t)
	for _, f := range []int{-1, fixed.MaxFracBits + 1, 64} {
		for _, fn := range Funcs() {
			assert.Equal(t, fixed.Min, e.Eval(fn, 1, f), "%s f=%d", fn, f)
		}
		assert.Equal(t, fixed.Min, e.Atan2(1, 1, f))
	}
}

func TestEvalDispatch(t *testing.T) {
	e := testEngine(t)
	x := FromFloat(0.375, q)
	direct := map[Func]int64{
		FuncAcos:     e.Acos(x, q),
		FuncAsin:     e.Asin(x, q),
		FuncAtan:     e.Atan(x, q),
		FuncAtanFast: e.AtanFast(x, q),
		FuncSin:      e.Sin(x, q),
		FuncCos:      e.Cos(x, q),
		FuncTan:      e.Tan(x, q),
		FuncLog2:     e.Log2(x, q),
	}
	for fn, want := range direct {
		assert.Equal(t, want, e.Eval(fn, x, q), fn.String())
	}
	assert.Equal(t, fixed.Min, e.Eval(Func(-1), x, q))
}

func TestFuncNames(t *testing.T) {
	for _, fn := range Funcs() {
		got, err := ParseFunc(fn.String())
		require.NoError(t, err)
		assert.Equal(t, fn, got)
	}
	got, err := ParseFunc("ATAN_FAST")
	require.NoError(t, err)
	assert.Equal(t, FuncAtanFast, got)

	_, err = ParseFunc("exp")
	require.ErrorIs(t, err, ErrUnknownFunc)
	assert.Equal(t, "Func(42)", Func(42).String())
}

func TestEvalSlice(t *testing.T) {
	e := testEngine(t)
	src := testutil.Grid(-1, 1, 101, q)
	dst := make([]int64, len(src))
	require.NoError(t, e.EvalSlice(FuncAcos, dst, src, q))
	for i, x := range src {
		assert.Equal(t, e.Acos(x, q), dst[i])
	}
	require.ErrorIs(t, e.EvalSlice(FuncAcos, dst[:3], src, q), ErrLengthMismatch)
	require.ErrorIs(t, e.EvalSliceParallel(FuncAcos, dst, src[:3], q, 2), ErrLengthMismatch)
}

func TestPackageLevelFunctions(t *testing.T) {
	e := testEngine(t)
	x := FromFloat(0.625, q)
	assert.Equal(t, e.Acos(x, q), Acos(x, q))
	assert.Equal(t, e.Asin(x, q), Asin(x, q))
	assert.Equal(t, e.Atan(x, q), Atan(x, q))
	assert.Equal(t, e.AtanFast(x, q), AtanFast(x, q))
	assert.Equal(t, e.Atan2(x, -x, q), Atan2(x, -x, q))
	assert.Equal(t, e.Atan2Fast(x, -x, q), Atan2Fast(x, -x, q))
	assert.Equal(t, e.Sin(x, q), Sin(x, q))
	assert.Equal(t, e.Cos(x, q), Cos(x, q))
	assert.Equal(t, e.Tan(x, q), Tan(x, q))
	assert.Equal(t, e.Log2(x, q), Log2(x, q))
	assert.Equal(t, e.Pi(q), Pi(q))
	assert.Equal(t, fixed.Pi61, Pi(fixed.PiFracBits))
	assert.InDelta(t, 0.625, ToFloat(x, q), 0)
}
