package fixedmath

import (
	"fmt"

	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/lut"
)

// Tables is the constant data an Engine evaluates from. Any table may be
// nil; the functions that need it then return the fixed.Min sentinel.
type Tables struct {
	// Pi is π truncated to fixed.PiFracBits fractional bits. Every π
	// multiple used in reduction is derived from it by shifting.
	Pi int64

	Acos     *lut.Table // acos on [0, a) for some a ≤ 1
	Atan     *lut.Table // atan on [0, 1]
	AtanFast *lut.Table // atan on [0, 1], cheaper and coarser
	Sin      *lut.Table // sin on [0, π/2]
	Tan      *lut.Table // tan on [0, π/4]
	Log2     *lut.Table // log2 on [1, 2)
}

// Validate checks each present table and its canonical domain.
func (t *Tables) Validate() error {
	if t.Pi <= 0 {
		return fmt.Errorf("%w: missing pi", ErrInvalidTables)
	}
	one := func(tb *lut.Table) int64 { return fixed.One(tb.FracBits) }
	pi := func(tb *lut.Table) int64 { return fixed.Convert(t.Pi, fixed.PiFracBits, tb.FracBits) }

	checks := []struct {
		name   string
		table  *lut.Table
		lo, hi func(*lut.Table) int64
		open   bool // hi is an upper bound rather than an exact end
	}{
		{"acos", t.Acos, zero, one, true},
		{"atan", t.Atan, zero, one, false},
		{"atan fast", t.AtanFast, zero, one, false},
		{"sin", t.Sin, zero, func(tb *lut.Table) int64 { return pi(tb) >> halfShift }, false},
		{"tan", t.Tan, zero, func(tb *lut.Table) int64 { return pi(tb) >> quarterShift }, false},
		{"log2", t.Log2, one, func(tb *lut.Table) int64 { return 2 * one(tb) }, false},
	}
	for _, c := range checks {
		if c.table == nil {
			continue
		}
		if c.table.FracBits < 1 || c.table.FracBits > fixed.PiFracBits {
			return fmt.Errorf("%w: %s table has %d fractional bits", ErrInvalidTables, c.name, c.table.FracBits)
		}
		if err := c.table.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTables, c.name, err)
		}
		lo, hi := c.table.Domain()
		wantLo, wantHi := c.lo(c.table), c.hi(c.table)
		if lo != wantLo || hi > wantHi || (!c.open && hi != wantHi) {
			return fmt.Errorf("%w: %s table covers [%d, %d], want [%d, %d]",
				ErrInvalidTables, c.name, lo, hi, wantLo, wantHi)
		}
	}
	return nil
}

func zero(*lut.Table) int64 { return 0 }
