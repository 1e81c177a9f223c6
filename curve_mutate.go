package bezier

// MoveControlPoint replaces the i-th control point with p, invalidating the
// curve's cache.
func (c *Curve) MoveControlPoint(i int, p Point) {
	if i < 0 || i >= c.n {
		fail("MoveControlPoint", "index %d out of range [0,%d)", i, c.n)
	}
	c.points.Set(i, 0, p.X)
	c.points.Set(i, 1, p.Y)
	c.cache.invalidate()
}

// Reverse reverses the order of the curve's control points in place. It is
// its own inverse: calling it twice restores the original control points.
func (c *Curve) Reverse() {
	for i, j := 0, c.n-1; i < j; i, j = i+1, j-1 {
		xi, yi := c.points.At(i, 0), c.points.At(i, 1)
		xj, yj := c.points.At(j, 0), c.points.At(j, 1)
		c.points.Set(i, 0, xj)
		c.points.Set(i, 1, yj)
		c.points.Set(j, 0, xi)
		c.points.Set(j, 1, yi)
	}
	c.cache.invalidate()
}
