// Package accuracy measures fixed-point function implementations against
// floating-point or high-precision references.
//
// A Case pairs an evaluator with a reference over a sampling interval.
// Measure samples the interval uniformly, evaluates both sides, and
// summarizes the absolute error: maximum, mean, RMS, standard deviation,
// 99th percentile, and the maximum in units of the last place of the
// output format. It also counts monotonicity violations when the case
// declares a direction.
package accuracy

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/internal/simdops"
)

// Errors returned by Measure.
var (
	ErrTooFewSamples = errors.New("accuracy: need at least two samples")
	ErrInvalidCase   = errors.New("accuracy: invalid case")
)

// Direction is the expected monotonicity of a case.
type Direction int

// Monotonicity directions.
const (
	Unordered Direction = iota
	Increasing
	Decreasing
)

// percentile reported alongside the maximum.
const percentile = 99

// Case describes one function to measure.
type Case struct {
	Name      string
	Eval      func(x int64, f int) int64
	Ref       func(x float64) float64
	Lo, Hi    float64
	Direction Direction
}

// Report summarizes the error of one Case in one format.
type Report struct {
	Name    string
	Format  int
	Samples int
	Skipped int // samples whose reference was not finite

	MaxAbs  float64
	WorstX  float64
	MeanAbs float64
	RMS     float64
	StdDev  float64
	P99     float64
	MaxULP  float64

	Violations int
}

// Sample returns n evenly spaced raw inputs covering [lo, hi] in format f.
func Sample(lo, hi float64, n, f int) ([]int64, error) {
	if n < 2 {
		return nil, ErrTooFewSamples
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	out := make([]int64, n)
	for i, x := range xs {
		out[i] = fixed.FromFloat(x, f)
	}
	return out, nil
}

// Measure evaluates c on n samples in format f.
func Measure(c Case, f, n int) (Report, error) {
	if c.Eval == nil || c.Ref == nil || !(c.Lo < c.Hi) {
		return Report{}, fmt.Errorf("%w: %q", ErrInvalidCase, c.Name)
	}
	in, err := Sample(c.Lo, c.Hi, n, f)
	if err != nil {
		return Report{}, err
	}
	return MeasureInputs(c, f, in)
}

// MeasureInputs evaluates c on the given raw inputs in format f.
func MeasureInputs(c Case, f int, in []int64) (Report, error) {
	if len(in) < 2 {
		return Report{}, ErrTooFewSamples
	}
	rep := Report{Name: c.Name, Format: f}

	xs := make([]float64, 0, len(in))
	residuals := make([]float64, 0, len(in))
	var prev int64
	for i, x := range in {
		got := c.Eval(x, f)
		if i > 0 && violates(c.Direction, prev, got) {
			rep.Violations++
		}
		prev = got

		xf := fixed.ToFloat(x, f)
		want := c.Ref(xf)
		if math.IsNaN(want) || math.IsInf(want, 0) {
			rep.Skipped++
			continue
		}
		xs = append(xs, xf)
		residuals = append(residuals, fixed.ToFloat(got, f)-want)
	}
	rep.Samples = len(residuals)
	if rep.Samples == 0 {
		return rep, nil
	}

	abs := make([]float64, len(residuals))
	for i, r := range residuals {
		abs[i] = math.Abs(r)
	}
	worst := floats.MaxIdx(abs)
	rep.MaxAbs = abs[worst]
	rep.WorstX = xs[worst]

	n := float64(rep.Samples)
	rep.MeanAbs = simdops.Mean(abs)
	rep.RMS = math.Sqrt(simdops.SumSquares(residuals) / n)

	var err error
	if rep.StdDev, err = stats.StandardDeviation(residuals); err != nil {
		return rep, fmt.Errorf("accuracy: %s: %w", c.Name, err)
	}
	if rep.P99, err = stats.Percentile(abs, percentile); err != nil {
		return rep, fmt.Errorf("accuracy: %s: %w", c.Name, err)
	}

	ulps := make([]float64, len(abs))
	simdops.Float64Ops().Scale(ulps, abs, math.Ldexp(1, f))
	rep.MaxULP = floats.Max(ulps)
	return rep, nil
}

func violates(d Direction, prev, cur int64) bool {
	switch d {
	case Increasing:
		return cur < prev
	case Decreasing:
		return cur > prev
	default:
		return false
	}
}

// String formats r as one report line.
func (r Report) String() string {
	return fmt.Sprintf("%-10s Q%-2d n=%-7d max=%.3e at %+.9f mean=%.3e rms=%.3e sd=%.3e p99=%.3e ulp=%.1f violations=%d",
		r.Name, r.Format, r.Samples, r.MaxAbs, r.WorstX, r.MeanAbs, r.RMS, r.StdDev, r.P99, r.MaxULP, r.Violations)
}
