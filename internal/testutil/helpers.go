// Package testutil provides reusable test helper functions for fixed-point math tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-fixedmath/fixed"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	FastTolerance    = 1.5e-5
)

// T is the subset of *testing.T the assertions need.
type T interface {
	assert.TestingT
	Helper()
}

// Grid returns n evenly spaced raw values covering [lo, hi] in format f.
// Values are truncated toward zero when converted.
func Grid(lo, hi float64, n, f int) []int64 {
	if n < 2 {
		return []int64{fixed.FromFloat(lo, f)}
	}
	out := make([]int64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = fixed.FromFloat(lo+float64(i)*step, f)
	}
	return out
}

// RawGrid returns raw values from lo to hi inclusive, stepping by step.
func RawGrid(lo, hi, step int64) []int64 {
	if step <= 0 || hi < lo {
		return nil
	}
	out := make([]int64, 0, (hi-lo)/step+1)
	for x := lo; x <= hi; x += step {
		out = append(out, x)
		if x > hi-step {
			break
		}
	}
	return out
}

// AssertNonDecreasing verifies that s[i] >= s[i-1] for every i.
func AssertNonDecreasing(t T, s []int64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not non-decreasing: s[%d]=%d < s[%d]=%d",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertNonIncreasing verifies that s[i] <= s[i-1] for every i.
func AssertNonIncreasing(t T, s []int64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not non-increasing: s[%d]=%d > s[%d]=%d",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertMaxError verifies that every raw value in got, read in format f,
// is within tolerance of ref applied to the matching input.
func AssertMaxError(t T, in, got []int64, f int, ref func(float64) float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, got, len(in)) {
		return false
	}
	worst, worstIdx := 0.0, -1
	for i := range in {
		x := fixed.ToFloat(in[i], f)
		err := math.Abs(fixed.ToFloat(got[i], f) - ref(x))
		if err > worst {
			worst, worstIdx = err, i
		}
	}
	if worst > tolerance {
		x := fixed.ToFloat(in[worstIdx], f)
		return assert.Fail(t, "error exceeds tolerance",
			"max error %e at x=%.15f (got %.15f, want %.15f), tolerance %e",
			worst, x, fixed.ToFloat(got[worstIdx], f), ref(x), tolerance)
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %f is outside range [%f, %f]",
			value, minVal, maxVal), msgAndArgs...)
	}
	return true
}
