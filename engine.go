package fixedmath

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/lut"
)

// Common errors returned by the engine.
var (
	// ErrInvalidTables indicates tables that violate their invariants.
	ErrInvalidTables = errors.New("invalid fixedmath tables")

	// ErrLengthMismatch indicates batch slices of different lengths.
	ErrLengthMismatch = errors.New("destination and source lengths differ")

	// ErrUnknownFunc indicates a function name that is not supported.
	ErrUnknownFunc = errors.New("unknown function")
)

// Func identifies a single-argument function for generic evaluation.
type Func int

// Supported functions.
const (
	FuncAcos Func = iota
	FuncAsin
	FuncAtan
	FuncAtanFast
	FuncSin
	FuncCos
	FuncTan
	FuncLog2
)

var funcNames = [...]string{
	FuncAcos:     "acos",
	FuncAsin:     "asin",
	FuncAtan:     "atan",
	FuncAtanFast: "atan_fast",
	FuncSin:      "sin",
	FuncCos:      "cos",
	FuncTan:      "tan",
	FuncLog2:     "log2",
}

func (fn Func) String() string {
	if fn < 0 || int(fn) >= len(funcNames) {
		return fmt.Sprintf("Func(%d)", int(fn))
	}
	return funcNames[fn]
}

// Funcs returns every supported function.
func Funcs() []Func {
	out := make([]Func, len(funcNames))
	for i := range out {
		out[i] = Func(i)
	}
	return out
}

// ParseFunc returns the function with the given name.
func ParseFunc(name string) (Func, error) {
	for i, n := range funcNames {
		if strings.EqualFold(name, n) {
			return Func(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
}

// scaled is a table plus the π multiples in its format.
type scaled struct {
	t         *lut.Table
	f         int
	one       int64
	pi        int64
	halfPi    int64
	quarterPi int64
}

func newScaled(t *lut.Table, pi61 int64) scaled {
	if t == nil {
		return scaled{}
	}
	pi := fixed.Convert(pi61, fixed.PiFracBits, t.FracBits)
	return scaled{
		t:         t,
		f:         t.FracBits,
		one:       fixed.One(t.FracBits),
		pi:        pi,
		halfPi:    pi >> halfShift,
		quarterPi: pi >> quarterShift,
	}
}

// Engine evaluates the supported functions from a fixed set of tables.
//
// Every method takes a raw fixed-point argument and its fractional-bit
// count f in [0, fixed.MaxFracBits] and returns a raw result in the same
// format. The argument is reduced to its table's canonical domain,
// converted to the table format, interpolated, and converted back. Methods
// do not allocate, never panic, and bound their work by the table size.
// Results that do not fit format f saturate.
//
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	tables Tables
	pi61   int64

	acos     scaled
	atan     scaled
	atanFast scaled
	sin      scaled
	tan      scaled
	log2     scaled

	// Small-angle series coefficients in the acos table format.
	acosC1, acosC2, acosC3 int64
	acosLimit              int64
}

// NewEngine validates tables and prepares an engine over them.
func NewEngine(tables Tables) (*Engine, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return newEngine(tables), nil
}

// newEngine prepares an engine over tables that are known to be valid.
func newEngine(tables Tables) *Engine {
	e := &Engine{
		tables:   tables,
		pi61:     tables.Pi,
		acos:     newScaled(tables.Acos, tables.Pi),
		atan:     newScaled(tables.Atan, tables.Pi),
		atanFast: newScaled(tables.AtanFast, tables.Pi),
		sin:      newScaled(tables.Sin, tables.Pi),
		tan:      newScaled(tables.Tan, tables.Pi),
		log2:     newScaled(tables.Log2, tables.Pi),
	}
	if a := e.acos; a.t != nil {
		e.acosC1 = fixed.Div(acosSeriesNum1, acosSeriesDen1, a.f)
		e.acosC2 = fixed.Div(acosSeriesNum2, acosSeriesDen2, a.f)
		e.acosC3 = fixed.Div(acosSeriesNum3, acosSeriesDen3, a.f)
		_, e.acosLimit = a.t.Domain()
	}
	return e
}

// Tables returns the engine's tables. They must not be modified.
func (e *Engine) Tables() Tables { return e.tables }

// Has reports whether the engine has the table fn needs.
func (e *Engine) Has(fn Func) bool {
	switch fn {
	case FuncAcos, FuncAsin:
		return e.acos.t != nil
	case FuncAtan:
		return e.atan.t != nil
	case FuncAtanFast:
		return e.atanFast.t != nil
	case FuncSin, FuncCos:
		return e.sin.t != nil
	case FuncTan:
		return e.tan.t != nil
	case FuncLog2:
		return e.log2.t != nil
	default:
		return false
	}
}

// Pi returns π in format f.
func (e *Engine) Pi(f int) int64 {
	return fixed.Convert(e.pi61, fixed.PiFracBits, f)
}

// Eval evaluates fn at x in format f.
func (e *Engine) Eval(fn Func, x int64, f int) int64 {
	switch fn {
	case FuncAcos:
		return e.Acos(x, f)
	case FuncAsin:
		return e.Asin(x, f)
	case FuncAtan:
		return e.Atan(x, f)
	case FuncAtanFast:
		return e.AtanFast(x, f)
	case FuncSin:
		return e.Sin(x, f)
	case FuncCos:
		return e.Cos(x, f)
	case FuncTan:
		return e.Tan(x, f)
	case FuncLog2:
		return e.Log2(x, f)
	default:
		return fixed.Min
	}
}

// EvalSlice writes fn(src[i]) to dst[i] for every i.
func (e *Engine) EvalSlice(fn Func, dst, src []int64, f int) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(dst), len(src))
	}
	for i, x := range src {
		dst[i] = e.Eval(fn, x, f)
	}
	return nil
}

// EvalSliceParallel is EvalSlice split across up to workers goroutines.
// A workers value below one uses GOMAXPROCS. Results are identical to
// EvalSlice.
func (e *Engine) EvalSliceParallel(fn Func, dst, src []int64, f, workers int) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(dst), len(src))
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := max((len(src)+workers-1)/workers, minParallelChunk)
	if chunk >= len(src) {
		return e.EvalSlice(fn, dst, src, f)
	}

	var wg sync.WaitGroup
	for start := 0; start < len(src); start += chunk {
		end := min(start+chunk, len(src))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				dst[i] = e.Eval(fn, src[i], f)
			}
		}(start, end)
	}
	wg.Wait()
	return nil
}

// validFormat reports whether f is a supported fractional-bit count.
func validFormat(f int) bool {
	return f >= 0 && f <= fixed.MaxFracBits
}

// magnitude returns |x| as uint64 and whether x was negative.
func magnitude(x int64) (uint64, bool) {
	if x < 0 {
		return uint64(-x), true // Min maps to 2^63
	}
	return uint64(x), false
}

// negateIf applies a sign after format conversion so odd symmetries hold
// bit for bit.
func negateIf(v int64, neg bool) int64 {
	if !neg {
		return v
	}
	if v == fixed.Min {
		return fixed.Max
	}
	return -v
}
