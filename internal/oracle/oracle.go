// Package oracle computes reference values of the supported functions at
// arbitrary precision.
//
// The oracle is used only while tables are built. Values are carried as
// *big.Float at a working precision derived from a decimal digit count,
// with guard bits on top so that the final scale-and-truncate into a 64-bit
// fixed-point sample is the only significant source of error.
package oracle

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Errors returned by the oracle.
var (
	// ErrNoConvergence means a series did not reach the working precision
	// within its term budget.
	ErrNoConvergence = errors.New("oracle: series did not converge")

	// ErrDomain means the argument lies outside the function's domain.
	ErrDomain = errors.New("oracle: argument outside domain")

	// ErrOverflow means a value does not fit the requested fixed-point format.
	ErrOverflow = errors.New("oracle: value overflows fixed-point format")
)

const (
	// DefaultDigits is the default significant decimal digit count.
	DefaultDigits = 100

	// MinDigits is the smallest digit count that still exceeds the widest
	// fixed-point format by a comfortable margin.
	MinDigits = 24

	// guardBits are added on top of the requested precision.
	guardBits = 32

	// halvings is the number of argument halvings before the atan series.
	// Each halving roughly halves the argument, so after eight the series
	// ratio is below 2^-16.
	halvings = 8
)

// Oracle evaluates functions at a fixed working precision. It holds only
// immutable constants and may be shared between goroutines.
type Oracle struct {
	digits int
	prec   uint
	pi     *big.Float
	ln2    *big.Float
}

// New returns an oracle accurate to at least digits significant decimal
// digits.
func New(digits int) (*Oracle, error) {
	if digits < MinDigits {
		return nil, fmt.Errorf("oracle: %d digits requested, need at least %d: %w", digits, MinDigits, ErrDomain)
	}
	o := &Oracle{
		digits: digits,
		prec:   uint(math.Ceil(float64(digits)*math.Log2(10))) + guardBits,
	}

	pi, err := o.machin()
	if err != nil {
		return nil, fmt.Errorf("oracle: computing pi: %w", err)
	}
	o.pi = pi
	o.ln2 = bigfloat.Log(o.Float(2))
	return o, nil
}

// Digits returns the decimal digit count the oracle was built for.
func (o *Oracle) Digits() int { return o.digits }

// Prec returns the working precision in bits.
func (o *Oracle) Prec() uint { return o.prec }

// Float returns v at the working precision.
func (o *Oracle) Float(v float64) *big.Float {
	return new(big.Float).SetPrec(o.prec).SetFloat64(v)
}

// FromFixed returns the exact value of the raw fixed-point x in format f.
func (o *Oracle) FromFixed(x int64, f int) *big.Float {
	v := new(big.Float).SetPrec(o.prec).SetInt64(x)
	return v.SetMantExp(v, -f)
}

// Pi returns a copy of π at the working precision.
func (o *Oracle) Pi() *big.Float {
	return new(big.Float).Copy(o.pi)
}

// Fixed scales v by 2^f and truncates toward zero. Truncation keeps the
// sample error one-sided.
func Fixed(v *big.Float, f int) (int64, error) {
	scaled := new(big.Float).SetMantExp(v, f)
	i, _ := scaled.Int(nil)
	if !i.IsInt64() {
		return 0, fmt.Errorf("%s·2^%d: %w", v.Text('g', 20), f, ErrOverflow)
	}
	return i.Int64(), nil
}

func (o *Oracle) zero() *big.Float { return new(big.Float).SetPrec(o.prec) }

func (o *Oracle) int(v int64) *big.Float { return o.zero().SetInt64(v) }

// epsilon is the magnitude below which a series term no longer matters.
func (o *Oracle) epsilon() *big.Float {
	return new(big.Float).SetMantExp(o.int(1), -int(o.prec))
}

// termBudget caps the number of series terms.
func (o *Oracle) termBudget() int { return int(o.prec) }
