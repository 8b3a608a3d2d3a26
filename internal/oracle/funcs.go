package oracle

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/ALTree/bigfloat"
)

// Atan returns atan(x).
//
// Arguments above one use atan(x) = π/2 - atan(1/x). The remainder is
// halved with atan(x) = 2·atan(x / (1 + √(1+x²))) until the Taylor series
// converges quickly.
func (o *Oracle) Atan(x *big.Float) (*big.Float, error) {
	if x.Sign() < 0 {
		r, err := o.Atan(o.zero().Neg(x))
		if err != nil {
			return nil, err
		}
		return r.Neg(r), nil
	}

	one := o.int(1)
	if x.Cmp(one) > 0 {
		r, err := o.Atan(o.zero().Quo(one, x))
		if err != nil {
			return nil, err
		}
		half := o.halfPi()
		return half.Sub(half, r), nil
	}

	y := o.zero().Set(x)
	root := o.zero()
	for range halvings {
		root.Mul(y, y)
		root.Add(root, one)
		root.Sqrt(root)
		root.Add(root, one)
		y.Quo(y, root)
	}

	sum, err := o.atanSeries(y)
	if err != nil {
		return nil, err
	}
	return sum.SetMantExp(sum, halvings), nil
}

// Acos returns acos(x) = 2·atan(√((1-x)/(1+x))) for x in [-1, 1].
func (o *Oracle) Acos(x *big.Float) (*big.Float, error) {
	one := o.int(1)
	if x.Cmp(one) > 0 || x.Cmp(o.int(-1)) < 0 {
		return nil, fmt.Errorf("acos(%s): %w", x.Text('g', 10), ErrDomain)
	}
	den := o.zero().Add(one, x)
	if den.Sign() == 0 {
		return o.Pi(), nil
	}
	ratio := o.zero().Sub(one, x)
	ratio.Quo(ratio, den)
	ratio.Sqrt(ratio)

	r, err := o.Atan(ratio)
	if err != nil {
		return nil, err
	}
	return r.Mul(r, o.int(2)), nil
}

// Sin returns sin(x) for any finite x.
func (o *Oracle) Sin(x *big.Float) (*big.Float, error) {
	return o.sinCosSeries(o.reduceTurn(x), true)
}

// Cos returns cos(x) for any finite x.
func (o *Oracle) Cos(x *big.Float) (*big.Float, error) {
	return o.sinCosSeries(o.reduceTurn(x), false)
}

// Tan returns sin(x)/cos(x).
func (o *Oracle) Tan(x *big.Float) (*big.Float, error) {
	s, err := o.Sin(x)
	if err != nil {
		return nil, err
	}
	c, err := o.Cos(x)
	if err != nil {
		return nil, err
	}
	if c.Sign() == 0 {
		return nil, fmt.Errorf("tan(%s) at a pole: %w", x.Text('g', 10), ErrDomain)
	}
	return s.Quo(s, c), nil
}

// Log2 returns log2(x) = ln(x)/ln(2) for x > 0.
func (o *Oracle) Log2(x *big.Float) (*big.Float, error) {
	if x.Sign() <= 0 {
		return nil, fmt.Errorf("log2(%s): %w", x.Text('g', 10), ErrDomain)
	}
	ln := bigfloat.Log(o.zero().Set(x))
	return ln.Quo(ln, o.ln2), nil
}

// AcosDeriv returns -1/√(1-x²) for |x| < 1.
func (o *Oracle) AcosDeriv(x *big.Float) (*big.Float, error) {
	d := o.zero().Mul(x, x)
	d.Sub(o.int(1), d)
	if d.Sign() <= 0 {
		return nil, fmt.Errorf("acos'(%s): %w", x.Text('g', 10), ErrDomain)
	}
	d.Sqrt(d)
	return d.Quo(o.int(-1), d), nil
}

// AtanDeriv returns 1/(1+x²).
func (o *Oracle) AtanDeriv(x *big.Float) (*big.Float, error) {
	d := o.zero().Mul(x, x)
	d.Add(d, o.int(1))
	return d.Quo(o.int(1), d), nil
}

// TanDeriv returns 1 + tan²(x).
func (o *Oracle) TanDeriv(x *big.Float) (*big.Float, error) {
	t, err := o.Tan(x)
	if err != nil {
		return nil, err
	}
	t.Mul(t, t)
	return t.Add(t, o.int(1)), nil
}

// Log2Deriv returns 1/(x·ln 2).
func (o *Oracle) Log2Deriv(x *big.Float) (*big.Float, error) {
	if x.Sign() <= 0 {
		return nil, fmt.Errorf("log2'(%s): %w", x.Text('g', 10), ErrDomain)
	}
	d := o.zero().Mul(x, o.ln2)
	return d.Quo(o.int(1), d), nil
}

func (o *Oracle) halfPi() *big.Float {
	h := o.Pi()
	return h.SetMantExp(h, -1)
}

// Func pairs a function with its derivative.
type Func struct {
	Name  string
	Value func(*Oracle, *big.Float) (*big.Float, error)
	Deriv func(*Oracle, *big.Float) (*big.Float, error)
}

var registry = map[string]Func{
	"acos": {Name: "acos", Value: (*Oracle).Acos, Deriv: (*Oracle).AcosDeriv},
	"atan": {Name: "atan", Value: (*Oracle).Atan, Deriv: (*Oracle).AtanDeriv},
	"sin":  {Name: "sin", Value: (*Oracle).Sin, Deriv: (*Oracle).Cos},
	"cos":  {Name: "cos", Value: (*Oracle).Cos, Deriv: (*Oracle).negSin},
	"tan":  {Name: "tan", Value: (*Oracle).Tan, Deriv: (*Oracle).TanDeriv},
	"log2": {Name: "log2", Value: (*Oracle).Log2, Deriv: (*Oracle).Log2Deriv},
}

func (o *Oracle) negSin(x *big.Float) (*big.Float, error) {
	s, err := o.Sin(x)
	if err != nil {
		return nil, err
	}
	return s.Neg(s), nil
}

// Lookup returns the registered function called name.
func Lookup(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return Func{}, fmt.Errorf("unknown function %q (have %v): %w", name, Names(), ErrDomain)
	}
	return fn, nil
}

// Names lists the registered functions in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
