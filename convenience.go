package fixedmath

import "github.com/tphakala/go-fixedmath/fixed"

// Package-level functions evaluate on the Default engine over the
// compiled-in tables.

// Acos returns acos(x) in format f. See Engine.Acos.
func Acos(x int64, f int) int64 { return Default().Acos(x, f) }

// Asin returns asin(x) in format f. See Engine.Asin.
func Asin(x int64, f int) int64 { return Default().Asin(x, f) }

// Atan returns atan(x) in format f. See Engine.Atan.
func Atan(x int64, f int) int64 { return Default().Atan(x, f) }

// AtanFast returns atan(x) in format f from the linear table.
func AtanFast(x int64, f int) int64 { return Default().AtanFast(x, f) }

// Atan2 returns atan2(y, x) in format f. See Engine.Atan2.
func Atan2(y, x int64, f int) int64 { return Default().Atan2(y, x, f) }

// Atan2Fast returns atan2(y, x) in format f from the linear table.
func Atan2Fast(y, x int64, f int) int64 { return Default().Atan2Fast(y, x, f) }

// Sin returns sin(x) in format f. See Engine.Sin.
func Sin(x int64, f int) int64 { return Default().Sin(x, f) }

// Cos returns cos(x) in format f. See Engine.Cos.
func Cos(x int64, f int) int64 { return Default().Cos(x, f) }

// Tan returns tan(x) in format f. See Engine.Tan.
func Tan(x int64, f int) int64 { return Default().Tan(x, f) }

// Log2 returns log2(x) in format f. See Engine.Log2.
func Log2(x int64, f int) int64 { return Default().Log2(x, f) }

// Pi returns π in format f.
func Pi(f int) int64 { return fixed.Convert(fixed.Pi61, fixed.PiFracBits, f) }

// FromFloat converts v to format f, truncating toward zero. It is meant for
// tests and tooling.
func FromFloat(v float64, f int) int64 { return fixed.FromFloat(v, f) }

// ToFloat converts a raw value in format f to float64.
func ToFloat(x int64, f int) float64 { return fixed.ToFloat(x, f) }
