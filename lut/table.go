// Package lut holds piecewise interpolation tables and their evaluator.
//
// A Table partitions a canonical domain into Regions. Each region carries
// its own samples and one of three interpolation rules (linear, quadratic,
// cubic Hermite) over either uniform or Chebyshev sample spacing. Uniform
// brackets are located with one widening multiply and a shift; Chebyshev
// brackets with a binary search over the stored nodes.
//
// Tables are plain data. They are produced once by the table builder (or
// written out as Go literals by the generator) and are never mutated
// afterwards, so a Table may be read from any number of goroutines without
// synchronisation. Evaluation does not allocate.
package lut

import "fmt"

// Table is a piecewise approximation of one function over its canonical
// domain. All coordinates and samples are fixed-point values with FracBits
// fractional bits.
type Table struct {
	Name     string
	FracBits int
	Regions  []Region
}

// Domain returns the closed interval covered by the table.
func (t *Table) Domain() (lo, hi int64) {
	return t.Regions[0].Lo, t.Regions[len(t.Regions)-1].Hi
}

// Eval returns the interpolated value at x, both in the table's format.
// Inputs outside the domain are clamped to its end points.
func (t *Table) Eval(x int64) int64 {
	last := len(t.Regions) - 1
	for i := range last {
		if x < t.Regions[i].Hi {
			return t.Regions[i].Eval(x, t.FracBits)
		}
	}
	return t.Regions[last].Eval(x, t.FracBits)
}

// Validate checks the structural invariants every table must satisfy:
// well-formed regions with strictly increasing coordinates, regions that
// tile the domain, and exact agreement of the samples on shared boundaries.
func (t *Table) Validate() error {
	if len(t.Regions) == 0 {
		return fmt.Errorf("table %s: no regions: %w", t.Name, ErrShape)
	}
	for i := range t.Regions {
		r := &t.Regions[i]
		if err := r.validate(); err != nil {
			return fmt.Errorf("table %s region %d: %w", t.Name, i, err)
		}
		if i == 0 {
			continue
		}
		prev := &t.Regions[i-1]
		if prev.Hi != r.Lo {
			return fmt.Errorf("table %s: region %d ends at %d, region %d starts at %d: %w",
				t.Name, i-1, prev.Hi, i, r.Lo, ErrGap)
		}
		if prev.Values[prev.Count] != r.Values[0] {
			return fmt.Errorf("table %s: boundary %d: %d != %d: %w",
				t.Name, r.Lo, prev.Values[prev.Count], r.Values[0], ErrBoundaryMismatch)
		}
	}
	return nil
}

func (r *Region) validate() error {
	if r.Lo >= r.Hi {
		return fmt.Errorf("interval [%d, %d): %w", r.Lo, r.Hi, ErrNonMonotonic)
	}
	if r.Count < 1 {
		return fmt.Errorf("count %d: %w", r.Count, ErrShape)
	}
	if n := len(r.Values); n != r.Count+1 && n != r.Count+2 {
		return fmt.Errorf("%d values for %d brackets: %w", n, r.Count, ErrShape)
	}
	if r.Kind == Hermite && len(r.Derivs) < r.Count+1 {
		return fmt.Errorf("%d derivatives for %d brackets: %w", len(r.Derivs), r.Count, ErrShape)
	}

	if r.Spacing == Uniform {
		if r.Scale == 0 {
			return fmt.Errorf("zero index scale: %w", ErrShape)
		}
		if r.Hi-r.Lo < int64(r.Count) {
			return fmt.Errorf("%d brackets narrower than one ulp: %w", r.Count, ErrShape)
		}
		return nil
	}

	if len(r.Nodes) != r.Count+1 {
		return fmt.Errorf("%d nodes for %d brackets: %w", len(r.Nodes), r.Count, ErrShape)
	}
	if r.Nodes[0] != r.Lo || r.Nodes[r.Count] != r.Hi {
		return fmt.Errorf("nodes do not span [%d, %d): %w", r.Lo, r.Hi, ErrGap)
	}
	for k := 1; k < len(r.Nodes); k++ {
		if r.Nodes[k] <= r.Nodes[k-1] {
			return fmt.Errorf("node %d at %d after %d: %w", k, r.Nodes[k], r.Nodes[k-1], ErrNonMonotonic)
		}
	}
	if r.Kind == Quadratic && (len(r.Slopes) != r.Count || len(r.Curves) != r.Count) {
		return fmt.Errorf("divided differences for %d brackets: %w", r.Count, ErrShape)
	}
	return nil
}
