// Package simdops provides SIMD reductions over float64 error vectors.
// Accuracy reports use it to sum and scale residuals.
package simdops

import "github.com/tphakala/simd/f64"

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []float64) float64

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	DotProductUnsafe: f64.DotProductUnsafe,
	Sum:              f64.Sum,
	Scale:            f64.Scale,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// SumSquares returns Σ a[i]².
func SumSquares(a []float64) float64 {
	return ops64.DotProductUnsafe(a, a)
}

// Mean returns the arithmetic mean of a, or zero for an empty slice.
func Mean(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return ops64.Sum(a) / float64(len(a))
}
