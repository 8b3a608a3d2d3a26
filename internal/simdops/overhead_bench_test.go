package simdops

import (
	"testing"

	"github.com/tphakala/simd/f64"
)

// BenchmarkDirectF64DotProduct measures direct SIMD call overhead.
func BenchmarkDirectF64DotProduct(b *testing.B) {
	a := residuals(4096)

	b.ReportAllocs()
	for b.Loop() {
		_ = f64.DotProductUnsafe(a, a)
	}
}

// BenchmarkIndirectF64DotProduct measures indirect call through Ops struct.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	a := residuals(4096)

	b.ReportAllocs()
	for b.Loop() {
		_ = SumSquares(a)
	}
}

// BenchmarkScalarSumSquares is the plain loop the SIMD path replaces.
func BenchmarkScalarSumSquares(b *testing.B) {
	a := residuals(4096)

	b.ReportAllocs()
	for b.Loop() {
		var s float64
		for _, v := range a {
			s += v * v
		}
		_ = s
	}
}

func residuals(n int) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = float64(i%17-8) * 1e-12
	}
	return a
}
