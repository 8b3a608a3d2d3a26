package builder

import (
	"fmt"

	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/internal/oracle"
	"github.com/tphakala/go-fixedmath/lut"
)

// uniformNodes returns x_k = lo + ⌊k·(hi-lo)/n⌋ for k = 0..n.
func uniformNodes(lo, hi int64, n int) []int64 {
	nodes := make([]int64, n+1)
	for k := range nodes {
		nodes[k] = lut.UniformNode(lo, hi, n, k)
	}
	return nodes
}

// chebyshevNodes returns the n+1 Chebyshev-Lobatto nodes
// x_k = c - r·cos(πk/n) of [lo, hi], computed at oracle precision and
// truncated to format f. The end points are exactly lo and hi, and for even
// n the centre node is exactly (lo+hi)/2 truncated.
func (b *Builder) chebyshevNodes(lo, hi int64, n, f int) ([]int64, error) {
	o := b.oracle
	loF, hiF := o.FromFixed(lo, f), o.FromFixed(hi, f)

	half := o.Float(0.5)
	c := o.Float(0).Add(loF, hiF)
	c.Mul(c, half)
	r := o.Float(0).Sub(hiF, loF)
	r.Mul(r, half)

	piOverN := o.Pi()
	piOverN.Quo(piOverN, o.Float(float64(n)))

	nodes := make([]int64, n+1)
	nodes[0], nodes[n] = lo, hi
	for k := 1; k < n; k++ {
		if 2*k == n {
			// cos(π/2) is exactly zero; a rounded cosine could move the
			// centre node one ulp off c.
			x, err := oracle.Fixed(c, f)
			if err != nil {
				return nil, err
			}
			nodes[k] = x
			continue
		}
		angle := o.Float(float64(k))
		angle.Mul(angle, piOverN)
		cos, err := o.Cos(angle)
		if err != nil {
			return nil, err
		}
		cos.Mul(cos, r)
		x, err := oracle.Fixed(cos.Sub(c, cos), f)
		if err != nil {
			return nil, err
		}
		nodes[k] = x
	}

	for k := 1; k <= n; k++ {
		if nodes[k] <= nodes[k-1] {
			return nil, fmt.Errorf("node %d at %d after %d: %w", k, nodes[k], nodes[k-1], lut.ErrNonMonotonic)
		}
	}
	return nodes, nil
}

// guardNode mirrors the last spacing one step past the final coordinate.
func guardNode(coords []int64) int64 {
	n := len(coords) - 1
	return 2*coords[n] - coords[n-1]
}

// dividedDifferences returns, per bracket, the first divided difference
// f[x_i, x_i+1] and the second f[x_i, x_i+1, x_i+2] from the stored integer
// samples, so the evaluator reproduces every sample exactly. The last
// bracket has a second difference only when a guard sample exists.
func dividedDifferences(coords, values []int64, count, f int) (slopes, curves []int64) {
	n := min(len(coords), len(values)) - 1
	first := make([]int64, n)
	for i := range first {
		first[i] = fixed.Div(values[i+1]-values[i], coords[i+1]-coords[i], f)
	}

	slopes = first[:count:count]
	curves = make([]int64, count)
	for i := range curves {
		if i+1 < n {
			curves[i] = fixed.Div(first[i+1]-first[i], coords[i+2]-coords[i], f)
		}
	}
	return slopes, curves
}
