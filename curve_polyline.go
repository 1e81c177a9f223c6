package bezier

import (
	"math"

	"github.com/dandycheung/bezier/internal/coeffs"

	"gonum.org/v1/gonum/mat"
)

// Polyline approximates the curve with a sequence of points, connected by
// straight segments, dense enough that no segment departs from the true
// curve by more than roughly flatness. It uses adaptive midpoint
// subdivision with a second-moment flatness test on each candidate
// sub-curve's control polygon.
func (c *Curve) Polyline(flatness float64) PointVector {
	return c.cache.getPolyline(flatness, func() PointVector { return c.computePolyline(flatness) })
}

func (c *Curve) computePolyline(flatness float64) PointVector {
	if c.n == 2 {
		return PointVector{c.ControlPoint(0), c.ControlPoint(1)}
	}

	n := c.n
	threshold := 16 * flatness * flatness
	out := PointVector{c.ControlPoint(0)}

	stack := []*mat.Dense{c.points}
	for len(stack) > 0 {
		cp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p0 := Pt(cp.At(0, 0), cp.At(0, 1))
		pLast := Pt(cp.At(n-1, 0), cp.At(n-1, 1))
		step := pLast.Sub(p0).Div(float64(n - 1))

		maxX, maxY := 0.0, 0.0
		for k := 1; k <= n-2; k++ {
			base := p0.Translate(step.Mul(float64(k)))
			b := binomialCoeff(n-1, k)
			dx := b * (cp.At(k, 0) - base.X)
			dy := b * (cp.At(k, 1) - base.Y)
			maxX = math.Max(maxX, dx*dx)
			maxY = math.Max(maxY, dy*dy)
		}

		if maxX+maxY <= threshold {
			out = append(out, pLast)
			continue
		}

		var lp, rp mat.Dense
		lp.Mul(coeffs.SplitLeft(n, 0.5), cp)
		rp.Mul(coeffs.SplitRight(n, 0.5), cp)
		stack = append(stack, &rp, &lp)
	}
	return out
}

func binomialCoeff(n, k int) float64 {
	return math.Gamma(float64(n)+1) / (math.Gamma(float64(k)+1) * math.Gamma(float64(n-k)+1))
}
