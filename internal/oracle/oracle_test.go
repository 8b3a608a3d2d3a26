package oracle

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// float64Tolerance covers the rounding of a high-precision value to float64.
const float64Tolerance = 1e-15

const piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651"

func newOracle(t *testing.T) *Oracle {
	t.Helper()
	o, err := New(DefaultDigits)
	require.NoError(t, err)
	return o
}

func toFloat(t *testing.T, v *big.Float, err error) float64 {
	t.Helper()
	require.NoError(t, err)
	f, _ := v.Float64()
	return f
}

func TestNew(t *testing.T) {
	o := newOracle(t)
	assert.Equal(t, DefaultDigits, o.Digits())
	assert.Equal(t, uint(365), o.Prec())

	_, err := New(MinDigits - 1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestPi(t *testing.T) {
	o := newOracle(t)
	want, _, err := big.ParseFloat(piDigits, 10, o.Prec(), big.ToNearestEven)
	require.NoError(t, err)

	diff := new(big.Float).Sub(o.Pi(), want)
	diff.Abs(diff)
	bound := new(big.Float).SetMantExp(big.NewFloat(1), -330)
	assert.Negative(t, diff.Cmp(bound), "pi off by %s", diff.Text('g', 5))

	pi61, err := Fixed(o.Pi(), 61)
	require.NoError(t, err)
	assert.Equal(t, int64(0x6487ED5110B4611A), pi61)
}

func TestFunctions(t *testing.T) {
	o := newOracle(t)
	tests := []struct {
		name string
		fn   func(*big.Float) (*big.Float, error)
		x    float64
		want float64
	}{
		{"atan 0", o.Atan, 0, 0},
		{"atan 0.5", o.Atan, 0.5, math.Atan(0.5)},
		{"atan 1", o.Atan, 1, math.Pi / 4},
		{"atan 2", o.Atan, 2, math.Atan(2)},
		{"atan -3", o.Atan, -3, math.Atan(-3)},
		{"acos 0.8", o.Acos, 0.8, 0.6435011087932844},
		{"acos 0", o.Acos, 0, math.Pi / 2},
		{"acos 1", o.Acos, 1, 0},
		{"acos -1", o.Acos, -1, math.Pi},
		{"acos -0.3", o.Acos, -0.3, math.Acos(-0.3)},
		{"sin pi/6", o.Sin, math.Pi / 6, math.Sin(math.Pi / 6)},
		{"sin 100", o.Sin, 100, math.Sin(100)},
		{"sin -7", o.Sin, -7, math.Sin(-7)},
		{"cos 2", o.Cos, 2, math.Cos(2)},
		{"tan 1", o.Tan, 1, math.Tan(1)},
		{"log2 8", o.Log2, 8, 3},
		{"log2 1.5", o.Log2, 1.5, math.Log2(1.5)},
		{"log2 1", o.Log2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.fn(o.Float(tt.x))
			got := toFloat(t, v, err)
			assert.InDelta(t, tt.want, got, float64Tolerance*math.Max(1, math.Abs(tt.want)))
		})
	}
}

func TestDerivatives(t *testing.T) {
	o := newOracle(t)
	x := 0.6
	tests := []struct {
		name string
		fn   func(*big.Float) (*big.Float, error)
		want float64
	}{
		{"acos", o.AcosDeriv, -1 / math.Sqrt(1-x*x)},
		{"atan", o.AtanDeriv, 1 / (1 + x*x)},
		{"tan", o.TanDeriv, 1 + math.Tan(x)*math.Tan(x)},
		{"log2", o.Log2Deriv, 1 / (x * math.Ln2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.fn(o.Float(x))
			assert.InDelta(t, tt.want, toFloat(t, v, err), float64Tolerance*4)
		})
	}
}

func TestDomainErrors(t *testing.T) {
	o := newOracle(t)

	_, err := o.Acos(o.Float(1.5))
	assert.ErrorIs(t, err, ErrDomain)
	_, err = o.Log2(o.Float(0))
	assert.ErrorIs(t, err, ErrDomain)
	_, err = o.Log2(o.Float(-2))
	assert.ErrorIs(t, err, ErrDomain)
	_, err = o.AcosDeriv(o.Float(1))
	assert.ErrorIs(t, err, ErrDomain)
	_, err = o.Log2Deriv(o.Float(0))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestFixed(t *testing.T) {
	o := newOracle(t)
	tests := []struct {
		name string
		v    float64
		f    int
		want int64
	}{
		{"exact", 1.75, 1, 3},
		{"truncates positive", 0.99, 0, 0},
		{"truncates negative toward zero", -1.75, 1, -3},
		{"negative fraction", -0.5, 0, 0},
		{"q40", 0.5, 40, 1 << 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fixed(o.Float(tt.v), tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Fixed(o.Float(1<<30), 40)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestFromFixed(t *testing.T) {
	o := newOracle(t)
	v := o.FromFixed(3<<39, 40)
	f, acc := v.Float64()
	assert.Equal(t, big.Exact, acc)
	assert.InDelta(t, 1.5, f, 0)

	raw, err := Fixed(o.FromFixed(-123456789, 40), 40)
	require.NoError(t, err)
	assert.Equal(t, int64(-123456789), raw)
}

func TestLookup(t *testing.T) {
	o := newOracle(t)
	fn, err := Lookup("atan")
	require.NoError(t, err)
	assert.Equal(t, "atan", fn.Name)

	v, err := fn.Value(o, o.Float(1))
	assert.InDelta(t, math.Pi/4, toFloat(t, v, err), float64Tolerance)
	d, err := fn.Deriv(o, o.Float(1))
	assert.InDelta(t, 0.5, toFloat(t, d, err), float64Tolerance)

	cos, err := Lookup("cos")
	require.NoError(t, err)
	d, err = cos.Deriv(o, o.Float(0.5))
	assert.InDelta(t, -math.Sin(0.5), toFloat(t, d, err), float64Tolerance)

	_, err = Lookup("sinh")
	assert.ErrorIs(t, err, ErrDomain)
	assert.Equal(t, []string{"acos", "atan", "cos", "log2", "sin", "tan"}, Names())
}
