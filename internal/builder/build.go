// Package builder turns a Policy into validated lookup tables.
//
// For every region the builder places sample coordinates (uniform or
// Chebyshev-Lobatto), truncates each coordinate to the table format, asks
// the oracle for the function (and, for Hermite regions, its derivative) at
// exactly that truncated coordinate, and truncates the results into the
// table format. A table is returned only when it passes lut.Table.Validate;
// any numerical failure aborts the whole build.
package builder

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	fixedmath "github.com/tphakala/go-fixedmath"
	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/internal/oracle"
	"github.com/tphakala/go-fixedmath/lut"
)

// Builder builds tables from a validated policy.
type Builder struct {
	policy Policy
	oracle *oracle.Oracle
	logger *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Result holds every table of one build.
type Result struct {
	// Pi is π truncated to fixed.PiFracBits, as computed by the oracle.
	Pi     int64
	Digits int
	Tables map[string]*lut.Table
	// Names lists the tables in build order.
	Names []string
}

// FixedTables maps the result onto fixedmath.Tables by table name. Tables
// the policy did not build stay nil.
func (r *Result) FixedTables() fixedmath.Tables {
	return fixedmath.Tables{
		Pi:       r.Pi,
		Acos:     r.Tables[Acos],
		Atan:     r.Tables[Atan],
		AtanFast: r.Tables[AtanFast],
		Sin:      r.Tables[Sin],
		Tan:      r.Tables[Tan],
		Log2:     r.Tables[Log2],
	}
}

// Engine validates the result's tables and wraps them in an engine.
func (r *Result) Engine() (*fixedmath.Engine, error) {
	return fixedmath.NewEngine(r.FixedTables())
}

// New validates p and prepares an oracle at its precision.
func New(p Policy, opts ...Option) (*Builder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o, err := oracle.New(p.Digits)
	if err != nil {
		return nil, err
	}
	b := &Builder{policy: p, oracle: o, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Policy returns the builder's policy.
func (b *Builder) Policy() Policy { return b.policy }

// Build builds every table of the policy.
func (b *Builder) Build() (*Result, error) {
	pi, err := oracle.Fixed(b.oracle.Pi(), fixed.PiFracBits)
	if err != nil {
		return nil, fmt.Errorf("pi: %w", err)
	}
	if pi != fixed.Pi61 {
		return nil, fmt.Errorf("pi at %d bits is %#x, want %#x: %w",
			fixed.PiFracBits, pi, fixed.Pi61, oracle.ErrNoConvergence)
	}

	res := &Result{Pi: pi, Digits: b.policy.Digits, Tables: make(map[string]*lut.Table)}
	for _, name := range b.policy.Names() {
		t, err := b.BuildFunc(name)
		if err != nil {
			return nil, err
		}
		res.Tables[name] = t
		res.Names = append(res.Names, name)
	}
	return res, nil
}

// BuildFunc builds the single table called name.
func (b *Builder) BuildFunc(name string) (*lut.Table, error) {
	fp, ok := b.policy.Tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown table %q: %w", name, ErrInvalidPolicy)
	}
	fn, err := oracle.Lookup(fp.Func)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", name, err)
	}

	start := time.Now()
	t := &lut.Table{Name: name, FracBits: fp.FracBits, Regions: make([]lut.Region, 0, len(fp.Regions))}
	for i, rp := range fp.Regions {
		r, err := b.buildRegion(fn, rp, fp.FracBits)
		if err != nil {
			return nil, fmt.Errorf("table %s region %d [%s, %s): %w", name, i, rp.Lo, rp.Hi, err)
		}
		b.logger.Debug("built region",
			zap.String("table", name),
			zap.Int("region", i),
			zap.Stringer("lo", rp.Lo),
			zap.Stringer("hi", rp.Hi),
			zap.Stringer("kind", rp.Kind),
			zap.Stringer("spacing", rp.Spacing),
			zap.Int("count", rp.Count),
			zap.Int("samples", len(r.Values)))
		t.Regions = append(t.Regions, r)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	b.logger.Info("built table",
		zap.String("table", name),
		zap.String("func", fp.Func),
		zap.Int("fracbits", fp.FracBits),
		zap.Int("regions", len(t.Regions)),
		zap.Int("entries", fp.Entries()),
		zap.Duration("elapsed", time.Since(start)))
	return t, nil
}

func (b *Builder) buildRegion(fn oracle.Func, rp RegionPolicy, f int) (lut.Region, error) {
	r := lut.Region{
		Lo:      rp.Lo.Fixed(f),
		Hi:      rp.Hi.Fixed(f),
		Kind:    rp.Kind,
		Spacing: rp.Spacing,
		Count:   rp.Count,
	}

	var coords []int64
	if r.Spacing == lut.Chebyshev {
		nodes, err := b.chebyshevNodes(r.Lo, r.Hi, r.Count, f)
		if err != nil {
			return r, err
		}
		r.Nodes = nodes
		coords = nodes
	} else {
		r.Scale, r.Shift = lut.UniformIndex(r.Lo, r.Hi, r.Count, f)
		coords = uniformNodes(r.Lo, r.Hi, r.Count)
	}

	for _, x := range coords {
		y, err := b.sample(fn.Value, x, f)
		if err != nil {
			return r, err
		}
		r.Values = append(r.Values, y)
		if r.Kind != lut.Hermite {
			continue
		}
		d, err := b.sample(fn.Deriv, x, f)
		if err != nil {
			return r, err
		}
		r.Derivs = append(r.Derivs, d)
	}

	if r.Kind != lut.Quadratic {
		return r, nil
	}

	// The last bracket borrows one sample past Hi when the function is
	// defined there; otherwise the evaluator falls back to a linear chord.
	guardX := guardNode(coords)
	guard, err := b.sample(fn.Value, guardX, f)
	switch {
	case err == nil:
		r.Values = append(r.Values, guard)
	case !errors.Is(err, oracle.ErrDomain):
		return r, err
	}

	if r.Spacing == lut.Chebyshev {
		r.Slopes, r.Curves = dividedDifferences(append(coords, guardX), r.Values, r.Count, f)
	}
	return r, nil
}

// sample evaluates v at the exact fixed-point coordinate x and truncates
// the result into format f.
func (b *Builder) sample(v func(*oracle.Oracle, *big.Float) (*big.Float, error), x int64, f int) (int64, error) {
	y, err := v(b.oracle, b.oracle.FromFixed(x, f))
	if err != nil {
		return 0, err
	}
	return oracle.Fixed(y, f)
}
