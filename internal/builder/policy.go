package builder

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/internal/oracle"
	"github.com/tphakala/go-fixedmath/lut"
)

// ErrInvalidPolicy is returned when a policy cannot produce a valid table.
var ErrInvalidPolicy = errors.New("builder: invalid policy")

// Table names of the canonical designs, in build order.
const (
	Acos     = "acos"
	Atan     = "atan"
	AtanFast = "atan_fast"
	Sin      = "sin"
	Tan      = "tan"
	Log2     = "log2"
)

// Policy limits.
const (
	// MaxCount bounds the brackets of one region.
	MaxCount = 1 << 20

	// maxTableFracBits leaves one spare bit for the quadratic inner product
	// and keeps π representable.
	maxTableFracBits = fixed.PiFracBits
)

// TableNames lists the canonical tables in build order.
var TableNames = []string{Acos, Atan, AtanFast, Sin, Tan, Log2}

// RegionPolicy describes one region to build.
type RegionPolicy struct {
	Lo, Hi  Bound
	Count   int
	Kind    lut.Kind
	Spacing lut.Spacing
}

// FuncPolicy describes one table: the oracle function it samples, its
// fixed-point format, and its regions in increasing order.
type FuncPolicy struct {
	Func     string
	FracBits int
	Regions  []RegionPolicy
}

// Entries returns the total bracket count.
func (fp FuncPolicy) Entries() int {
	n := 0
	for _, r := range fp.Regions {
		n += r.Count
	}
	return n
}

// Policy is the offline configuration of the table builder. Nothing in it
// is consulted at evaluation time.
type Policy struct {
	// Digits is the oracle precision in significant decimal digits.
	Digits int
	Tables map[string]FuncPolicy
}

// DefaultPolicy returns the canonical per-function designs.
func DefaultPolicy() Policy {
	region := func(lo, hi string, count int, kind lut.Kind, spacing lut.Spacing) RegionPolicy {
		return RegionPolicy{Lo: mustBound(lo), Hi: mustBound(hi), Count: count, Kind: kind, Spacing: spacing}
	}
	return Policy{
		Digits: oracle.DefaultDigits,
		Tables: map[string]FuncPolicy{
			Acos: {Func: "acos", FracBits: 40, Regions: []RegionPolicy{
				region("0", "0.5", 1024, lut.Quadratic, lut.Uniform),
				region("0.5", "0.8", 256, lut.Hermite, lut.Uniform),
				region("0.8", "0.95", 256, lut.Hermite, lut.Uniform),
				region("0.95", "0.99", 256, lut.Hermite, lut.Uniform),
				region("0.99", "0.999", 512, lut.Hermite, lut.Chebyshev),
			}},
			Atan: {Func: "atan", FracBits: 40, Regions: []RegionPolicy{
				region("0", "1", 256, lut.Hermite, lut.Uniform),
			}},
			AtanFast: {Func: "atan", FracBits: 32, Regions: []RegionPolicy{
				region("0", "1", 512, lut.Linear, lut.Uniform),
			}},
			Sin: {Func: "sin", FracBits: 40, Regions: []RegionPolicy{
				region("0", "0.5pi", 256, lut.Hermite, lut.Uniform),
			}},
			Tan: {Func: "tan", FracBits: 40, Regions: []RegionPolicy{
				region("0", "0.25pi", 512, lut.Hermite, lut.Uniform),
			}},
			Log2: {Func: "log2", FracBits: 40, Regions: []RegionPolicy{
				region("1", "2", 1024, lut.Quadratic, lut.Chebyshev),
			}},
		},
	}
}

// Names returns the policy's table names, canonical ones first in build
// order, then any others sorted.
func (p Policy) Names() []string {
	names := make([]string, 0, len(p.Tables))
	for _, n := range TableNames {
		if _, ok := p.Tables[n]; ok {
			names = append(names, n)
		}
	}
	for _, n := range slices.Sorted(maps.Keys(p.Tables)) {
		if !slices.Contains(TableNames, n) {
			names = append(names, n)
		}
	}
	return names
}

// Validate checks that every table can be built.
func (p Policy) Validate() error {
	if p.Digits < oracle.MinDigits {
		return fmt.Errorf("digits %d below %d: %w", p.Digits, oracle.MinDigits, ErrInvalidPolicy)
	}
	if len(p.Tables) == 0 {
		return fmt.Errorf("no tables: %w", ErrInvalidPolicy)
	}
	for _, name := range p.Names() {
		if err := p.Tables[name].validate(); err != nil {
			return fmt.Errorf("table %s: %w", name, err)
		}
	}
	return nil
}

func (fp FuncPolicy) validate() error {
	if _, err := oracle.Lookup(fp.Func); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}
	if fp.FracBits < 1 || fp.FracBits > maxTableFracBits {
		return fmt.Errorf("fractional bits %d outside [1, %d]: %w", fp.FracBits, maxTableFracBits, ErrInvalidPolicy)
	}
	if len(fp.Regions) == 0 {
		return fmt.Errorf("no regions: %w", ErrInvalidPolicy)
	}
	for i, r := range fp.Regions {
		if r.Count < 1 || r.Count > MaxCount {
			return fmt.Errorf("region %d: count %d outside [1, %d]: %w", i, r.Count, MaxCount, ErrInvalidPolicy)
		}
		if r.Kind > lut.Hermite || r.Spacing > lut.Chebyshev {
			return fmt.Errorf("region %d: unknown kind or spacing: %w", i, ErrInvalidPolicy)
		}
		if r.Lo.Fixed(fp.FracBits) >= r.Hi.Fixed(fp.FracBits) {
			return fmt.Errorf("region %d: [%s, %s) is empty: %w", i, r.Lo, r.Hi, ErrInvalidPolicy)
		}
		if i > 0 && !fp.Regions[i-1].Hi.Equal(r.Lo) {
			return fmt.Errorf("region %d starts at %s, previous ends at %s: %w",
				i, r.Lo, fp.Regions[i-1].Hi, ErrInvalidPolicy)
		}
	}
	return nil
}

// WithEntries returns a copy of p whose table name has about n brackets in
// total, each region scaled in proportion to its current share.
func (p Policy) WithEntries(name string, n int) (Policy, error) {
	fp, ok := p.Tables[name]
	if !ok {
		return p, fmt.Errorf("unknown table %q: %w", name, ErrInvalidPolicy)
	}
	if n < len(fp.Regions) {
		return p, fmt.Errorf("%d entries for %d regions: %w", n, len(fp.Regions), ErrInvalidPolicy)
	}

	out := p.clone()
	total := float64(fp.Entries())
	regions := out.Tables[name].Regions
	for i := range regions {
		c := int(math.Round(float64(regions[i].Count) * float64(n) / total))
		regions[i].Count = max(c, 1)
	}
	return out, nil
}

// WithFracBits returns a copy of p building table name in format f.
func (p Policy) WithFracBits(name string, f int) (Policy, error) {
	if _, ok := p.Tables[name]; !ok {
		return p, fmt.Errorf("unknown table %q: %w", name, ErrInvalidPolicy)
	}
	out := p.clone()
	fp := out.Tables[name]
	fp.FracBits = f
	out.Tables[name] = fp
	return out, nil
}

// Only returns a copy of p restricted to the named tables.
func (p Policy) Only(names ...string) (Policy, error) {
	out := Policy{Digits: p.Digits, Tables: make(map[string]FuncPolicy, len(names))}
	for _, name := range names {
		fp, ok := p.Tables[name]
		if !ok {
			return p, fmt.Errorf("unknown table %q: %w", name, ErrInvalidPolicy)
		}
		fp.Regions = slices.Clone(fp.Regions)
		out.Tables[name] = fp
	}
	return out, nil
}

func (p Policy) clone() Policy {
	out := Policy{Digits: p.Digits, Tables: make(map[string]FuncPolicy, len(p.Tables))}
	for name, fp := range p.Tables {
		fp.Regions = slices.Clone(fp.Regions)
		out.Tables[name] = fp
	}
	return out
}
