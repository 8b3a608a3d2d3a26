package fixed

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const f40 = 40

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		f    int
		want int64
	}{
		{"integers", 3 << f40, 2 << f40, f40, 6 << f40},
		{"negative operand", -3 << (f40 - 1), 2 << f40, f40, -3 << f40},
		{"both negative", -1 << f40, -1 << f40, f40, 1 << f40},
		{"zero", 0, Max, f40, 0},
		{"half rounds away from zero", 1, 1, 1, 1},
		{"negative half rounds away from zero", -1, 1, 1, -1},
		{"quarter rounds down", 1, 1, 2, 0},
		{"format zero", 7, -6, 0, -42},
		{"saturates positive", Max, Max, 0, Max},
		{"saturates negative", Max, Min, 0, Min},
		{"min times one", Min, 1 << f40, f40, Min},
		{"wide product narrows", Max, 1 << 62, 62, Max},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mul(tt.a, tt.b, tt.f))
		})
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		f    int
		want int64
	}{
		{"exact", 6 << f40, 2 << f40, f40, 3 << f40},
		{"sign", 6 << f40, -2 << f40, f40, -3 << f40},
		{"third", 1 << f40, 3 << f40, f40, 366503875925},
		{"half rounds away from zero", 1, 2, 0, 1},
		{"negative half rounds away from zero", -1, 2, 0, -1},
		{"zero numerator", 0, 5, f40, 0},
		{"zero by zero", 0, 0, f40, Max},
		{"positive by zero", 1, 0, f40, Max},
		{"negative by zero", -1, 0, f40, Min},
		{"quotient overflow", Max, 1, f40, Max},
		{"negative quotient overflow", Min, 1, f40, Min},
		{"min by minus one", Min, -1, 0, Max},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Div(tt.a, tt.b, tt.f))
		})
	}
}

func TestMulShift(t *testing.T) {
	assert.Equal(t, int64(15), MulShift(10, 3, 1))
	assert.Equal(t, int64(-15), MulShift(-10, 3, 1))
	assert.Equal(t, int64(2), MulShift(5, 1<<63, 64), "truncates toward zero")
	assert.Equal(t, int64(-2), MulShift(-5, 1<<63, 64), "truncates toward zero")
	assert.Equal(t, int64(1)<<30, MulShift(1<<40, 1<<54, 64))
	assert.Equal(t, Max, MulShift(Max, math.MaxUint64, 0))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int64(5), Abs(-5))
	assert.Equal(t, int64(5), Abs(5))
	assert.Equal(t, Max, Abs(Min))
}

func TestAddSat(t *testing.T) {
	assert.Equal(t, int64(5), AddSat(2, 3))
	assert.Equal(t, int64(-1), AddSat(Max, Min))
	assert.Equal(t, Max, AddSat(Max, 1))
	assert.Equal(t, Min, AddSat(Min, -1))
	assert.Equal(t, Min, AddSat(Min/2-1, Min/2))
}

func TestFloatHelpers(t *testing.T) {
	assert.Equal(t, One(f40)+One(f40)/2, FromFloat(1.5, f40))
	assert.Equal(t, int64(0), FromFloat(math.NaN(), f40))
	assert.Equal(t, Max, FromFloat(1e30, f40))
	assert.Equal(t, Min, FromFloat(-1e30, f40))
	assert.Equal(t, int64(-1), FromFloat(-1.9, 0), "truncates toward zero")
	assert.InDelta(t, -0.25, ToFloat(-One(f40)/4, f40), 0)
}

func TestSqrtFast(t *testing.T) {
	assert.Equal(t, int64(2)<<f40, SqrtFast(4<<f40, f40))
	assert.Equal(t, int64(1554944255987), SqrtFast(2<<f40, f40))
	assert.Equal(t, int64(1904410002820), SqrtFast(3<<f40, f40))
	assert.Equal(t, int64(0), SqrtFast(0, f40))
	assert.Equal(t, int64(0), SqrtFast(-1<<f40, f40))
}

// TestSqrtFastFloor checks r² ≤ x·2^f < (r+1)² across magnitudes and formats.
func TestSqrtFastFloor(t *testing.T) {
	inputs := []int64{1, 2, 3, 255, 1 << 20, 12345678901, 1<<40 + 1, 1 << 61, Max}
	for _, f := range []int{0, 16, 32, 40, 61, 62} {
		for _, x := range inputs {
			r := SqrtFast(x, f)
			require.GreaterOrEqual(t, r, int64(0))

			n := new(big.Int).Lsh(big.NewInt(x), uint(f))
			rb := big.NewInt(r)
			lower := new(big.Int).Mul(rb, rb)
			next := new(big.Int).Add(rb, big.NewInt(1))
			upper := new(big.Int).Mul(next, next)
			assert.LessOrEqual(t, lower.Cmp(n), 0, "x=%d f=%d r=%d too large", x, f, r)
			assert.Less(t, n.Cmp(upper), 0, "x=%d f=%d r=%d too small", x, f, r)
		}
	}
}
