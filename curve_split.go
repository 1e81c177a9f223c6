package bezier

import (
	"github.com/dandycheung/bezier/internal/coeffs"

	"gonum.org/v1/gonum/mat"
)

// Split divides the curve at parameter z into two sub-curves covering
// [0,z] and [z,1] of the original parameter domain.
func (c *Curve) Split(z float64) (left, right *Curve) {
	requireParam("Split", z)
	var lp, rp mat.Dense
	lp.Mul(coeffs.SplitLeft(c.n, z), c.points)
	rp.Mul(coeffs.SplitRight(c.n, z), c.points)
	return &Curve{n: c.n, points: &lp}, &Curve{n: c.n, points: &rp}
}

// SplitHalf is Split(0.5), the common case, backed by the coefficient
// cache's memoized z=0.5 matrices.
func (c *Curve) SplitHalf() (left, right *Curve) {
	return c.Split(0.5)
}
