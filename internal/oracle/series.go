package oracle

import (
	"fmt"
	"math/big"
)

// machin computes π = 16·atan(1/5) - 4·atan(1/239).
func (o *Oracle) machin() (*big.Float, error) {
	a, err := o.atanSeries(o.zero().Quo(o.int(1), o.int(5)))
	if err != nil {
		return nil, err
	}
	b, err := o.atanSeries(o.zero().Quo(o.int(1), o.int(239)))
	if err != nil {
		return nil, err
	}
	a.Mul(a, o.int(16))
	b.Mul(b, o.int(4))
	return a.Sub(a, b), nil
}

// atanSeries sums x - x³/3 + x⁵/5 - ... for |x| < 1.
func (o *Oracle) atanSeries(x *big.Float) (*big.Float, error) {
	eps := o.epsilon()
	x2 := o.zero().Mul(x, x)
	power := o.zero().Set(x)
	sum := o.zero().Set(x)
	term := o.zero()

	for n := 1; n <= o.termBudget(); n++ {
		power.Mul(power, x2)
		power.Neg(power)
		term.Quo(power, o.int(int64(2*n+1)))
		sum.Add(sum, term)
		if term.MantExp(nil) < eps.MantExp(nil) || term.Sign() == 0 {
			return sum, nil
		}
	}
	return nil, fmt.Errorf("atan series at %s: %w", x.Text('g', 10), ErrNoConvergence)
}

// sinCosSeries sums the Taylor series of sin(x) (odd) or cos(x) (even).
func (o *Oracle) sinCosSeries(x *big.Float, odd bool) (*big.Float, error) {
	eps := o.epsilon()
	x2 := o.zero().Mul(x, x)
	term := o.int(1)
	k := int64(0)
	if odd {
		term.Set(x)
		k = 1
	}
	sum := o.zero().Set(term)

	for range o.termBudget() {
		term.Mul(term, x2)
		term.Quo(term, o.int((k+1)*(k+2)))
		term.Neg(term)
		k += 2
		sum.Add(sum, term)
		if term.Sign() == 0 || term.MantExp(nil) < eps.MantExp(nil) {
			return sum, nil
		}
	}
	return nil, fmt.Errorf("sin/cos series at %s: %w", x.Text('g', 10), ErrNoConvergence)
}

// reduceTurn returns x mod 2π in [-π, π).
func (o *Oracle) reduceTurn(x *big.Float) *big.Float {
	twoPi := o.zero().Mul(o.pi, o.int(2))
	q := o.zero().Add(x, o.pi)
	q.Quo(q, twoPi)

	n, _ := q.Int(nil)
	if q.Sign() < 0 && !q.IsInt() {
		n.Sub(n, big.NewInt(1))
	}
	r := o.zero().SetInt(n)
	r.Mul(r, twoPi)
	return r.Sub(x, r)
}
