package accuracy

import (
	"math"

	fixedmath "github.com/tphakala/go-fixedmath"
	"github.com/tphakala/go-fixedmath/internal/oracle"
)

// Sampling intervals for the default cases.
const (
	trigSpan = 2 * math.Pi
	tanSpan  = 1.4
	atanSpan = 10
	log2Lo   = 1.0 / 64
	log2Hi   = 64
)

type caseSpec struct {
	ref       func(float64) float64
	lo, hi    float64
	direction Direction
}

var caseSpecs = map[fixedmath.Func]caseSpec{
	fixedmath.FuncAcos:     {math.Acos, -1, 1, Decreasing},
	fixedmath.FuncAsin:     {math.Asin, -1, 1, Increasing},
	fixedmath.FuncAtan:     {math.Atan, -atanSpan, atanSpan, Increasing},
	fixedmath.FuncAtanFast: {math.Atan, -atanSpan, atanSpan, Increasing},
	fixedmath.FuncSin:      {math.Sin, -trigSpan, trigSpan, Unordered},
	fixedmath.FuncCos:      {math.Cos, -trigSpan, trigSpan, Unordered},
	fixedmath.FuncTan:      {math.Tan, -tanSpan, tanSpan, Increasing},
	fixedmath.FuncLog2:     {math.Log2, log2Lo, log2Hi, Increasing},
}

// CaseFor returns the default case for fn evaluated on e.
func CaseFor(e *fixedmath.Engine, fn fixedmath.Func) (Case, bool) {
	spec, ok := caseSpecs[fn]
	if !ok || !e.Has(fn) {
		return Case{}, false
	}
	return Case{
		Name:      fn.String(),
		Eval:      func(x int64, f int) int64 { return e.Eval(fn, x, f) },
		Ref:       spec.ref,
		Lo:        spec.lo,
		Hi:        spec.hi,
		Direction: spec.direction,
	}, true
}

// DefaultCases returns a case for every function e has a table for.
func DefaultCases(e *fixedmath.Engine) []Case {
	var out []Case
	for _, fn := range fixedmath.Funcs() {
		if c, ok := CaseFor(e, fn); ok {
			out = append(out, c)
		}
	}
	return out
}

// OracleRef returns a reference that evaluates the named oracle function at
// o's precision and rounds to float64. Domain errors yield NaN, which
// Measure skips.
func OracleRef(o *oracle.Oracle, name string) (func(float64) float64, error) {
	fn, err := oracle.Lookup(name)
	if err != nil {
		return nil, err
	}
	return func(x float64) float64 {
		v, err := fn.Value(o, o.Float(x))
		if err != nil {
			return math.NaN()
		}
		r, _ := v.Float64()
		return r
	}, nil
}
