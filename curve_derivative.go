package bezier

import "gonum.org/v1/gonum/mat"

// Derivative returns the curve's first derivative, a curve of one lower
// order. The result is cached and owned by c; callers must not mutate it.
func (c *Curve) Derivative() *Curve {
	return c.cache.getDerivative(c.computeDerivative)
}

func (c *Curve) computeDerivative() *Curve {
	if c.n == 0 {
		return &Curve{points: mat.NewDense(0, 2, nil)}
	}
	m := mat.NewDense(c.n-1, 2, nil)
	scale := float64(c.n - 1)
	for i := 0; i < c.n-1; i++ {
		m.Set(i, 0, scale*(c.points.At(i+1, 0)-c.points.At(i, 0)))
		m.Set(i, 1, scale*(c.points.At(i+1, 1)-c.points.At(i, 1)))
	}
	return &Curve{n: c.n - 1, points: m}
}

// DerivativeOrder returns the k-th derivative of c, chaining Derivative k
// times. k must be at least 1.
func (c *Curve) DerivativeOrder(k int) *Curve {
	if k <= 0 {
		fail("DerivativeOrder", "order must be >= 1, got %d", k)
	}
	cur := c
	for i := 0; i < k; i++ {
		cur = cur.Derivative()
	}
	return cur
}

// DerivativeAt evaluates the order-th derivative at parameter t.
func (c *Curve) DerivativeAt(order int, t float64) Vec2 {
	requireParam("DerivativeAt", t)
	if order <= 0 {
		fail("DerivativeAt", "order must be >= 1, got %d", order)
	}
	p := c.DerivativeOrder(order).valueAt(t)
	return Vec2(p)
}
