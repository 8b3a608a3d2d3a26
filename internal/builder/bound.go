package builder

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tphakala/go-fixedmath/fixed"
)

const piSuffix = "pi"

// Bound is an exact region boundary: a decimal, optionally a multiple of π.
// Multiples of π resolve against the same truncated π the evaluators use,
// so a table ending at "0.5pi" ends exactly where the reducers fold.
type Bound struct {
	Value decimal.Decimal
	Pi    bool
}

// ParseBound parses "0.999", "-1", "pi", "0.5pi" or "0.25pi".
func ParseBound(s string) (Bound, error) {
	s = strings.TrimSpace(s)
	var b Bound
	if strings.HasSuffix(s, piSuffix) {
		b.Pi = true
		s = strings.TrimSpace(strings.TrimSuffix(s, piSuffix))
		if s == "" {
			s = "1"
		}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Bound{}, fmt.Errorf("bound %q: %w", s, err)
	}
	b.Value = v
	return b, nil
}

func mustBound(s string) Bound {
	b, err := ParseBound(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Bound) String() string {
	if b.Pi {
		if b.Value.Equal(decimal.NewFromInt(1)) {
			return piSuffix
		}
		return b.Value.String() + piSuffix
	}
	return b.Value.String()
}

// Equal reports whether both bounds denote the same value.
func (b Bound) Equal(o Bound) bool {
	return b.Pi == o.Pi && b.Value.Equal(o.Value)
}

// Fixed resolves the bound in format f, truncating toward zero.
func (b Bound) Fixed(f int) int64 {
	unit := fixed.One(f)
	if b.Pi {
		unit = PiAt(f)
	}
	return b.Value.Mul(decimal.NewFromInt(unit)).IntPart()
}

// PiAt returns π truncated to f fractional bits, derived from fixed.Pi61.
func PiAt(f int) int64 {
	return fixed.Pi61 >> uint(fixed.PiFracBits-f)
}
