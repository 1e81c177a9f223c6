package bezier

import (
	"github.com/dandycheung/bezier/internal/coeffs"

	"gonum.org/v1/gonum/mat"
)

// ElevateOrder raises the curve's order by one, in place, preserving its
// geometry exactly.
func (c *Curve) ElevateOrder() {
	var np mat.Dense
	np.Mul(coeffs.Elevate(c.n), c.points)
	c.points = &np
	c.n++
	c.cache.invalidate()
}

// LowerOrder reduces the curve's order by one, in place, via a
// least-squares approximation that is exact only when the curve genuinely
// lives in the lower order. It rejects a linear curve (order 1): there is
// no lower order to reduce to.
func (c *Curve) LowerOrder() {
	if c.n <= 2 {
		fail("LowerOrder", "cannot lower a curve of order %d", c.n-1)
	}
	var np mat.Dense
	np.Mul(coeffs.Lower(c.n), c.points)
	c.points = &np
	c.n--
	c.cache.invalidate()
}
