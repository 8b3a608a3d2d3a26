// Package fixedmath provides deterministic transcendental functions over
// 64-bit fixed-point values.
//
// A fixed-point value is an int64 holding value × 2^f, where the
// fractional-bit count f travels with every call. Results are bit-exact
// across platforms: evaluation uses only integer shifts, 128-bit multiplies
// and at most one division, never the floating-point unit.
//
// # Features
//
//   - acos, asin, atan, atan2, sin, cos, tan and log2
//   - Piecewise tables with linear, quadratic or cubic Hermite interpolation
//     over uniform or Chebyshev sample spacing
//   - Exact symmetry identities: Atan(-x) = -Atan(x), Sin(-x) = -Sin(x),
//     Acos(-x) = Pi(f) - Acos(x)
//   - Saturating arithmetic and defined sentinel results; evaluation never
//     panics and never allocates
//   - Tables sampled from a 100-digit reference and truncated, so the table
//     error is one-sided
//
// # Quick Start
//
// The package-level functions use the default engine, whose tables are
// compiled into the package as constant data:
//
//	const q = 40 // Q23.40
//	x := fixedmath.FromFloat(0.8, q)
//	y := fixedmath.Acos(x, q) // ≈ 0.6435011088 × 2^40
//
// Tables can also be generated ahead of time with cmd/fxgen, which writes a
// self-contained Go file holding the tables as constant arrays and
// evaluation functions bound to them.
//
// # Accuracy
//
// With the canonical tables (40 fractional bits unless noted):
//
//   - [Acos]: five regions, quadratic then Hermite, Chebyshev near 1, plus
//     a √(2ε) series for x ≥ 0.999; error below 1e-10
//   - [Atan]: 256 Hermite brackets on [0, 1]; error below 1e-10
//   - [AtanFast]: 512 linear brackets at 32 fractional bits; error below
//     1.5e-5
//   - [Sin], [Cos]: 256 Hermite brackets on [0, π/2]
//   - [Tan]: 512 Hermite brackets on [0, π/4], reciprocal above π/4
//   - [Log2]: 1024 quadratic brackets on Chebyshev nodes over [1, 2)
//
// # Formats
//
// Arguments are converted into the table format on entry and results back
// to the caller format on exit. Narrowing is an arithmetic right shift that
// silently truncates toward negative infinity; widening saturates.
//
// # Thread Safety
//
// An [Engine] and its [Tables] are immutable after construction and safe for
// unsynchronised use by any number of goroutines.
package fixedmath
