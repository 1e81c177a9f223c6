package bezier

import "math"

func toVec(p Point) Vec2 { return Vec2(p) }

func (c *Curve) setControlPointVec(i int, v Vec2) {
	c.points.Set(i, 0, v.X)
	c.points.Set(i, 1, v.Y)
}

// ManipulateCurvature moves the interior control point(s) of a quadratic or
// cubic curve so that the curve passes through target at parameter t. It
// rejects any other order.
func (c *Curve) ManipulateCurvature(t float64, target Point) {
	requireParam("ManipulateCurvature", t)
	if c.n != 3 && c.n != 4 {
		fail("ManipulateCurvature", "only quadratic and cubic curves can be manipulated, got order %d", c.n-1)
	}

	nm1 := float64(c.n - 1)
	tp := math.Pow(t, nm1)
	mtp := math.Pow(1-t, nm1)
	r := math.Abs((tp + mtp - 1) / (tp + mtp))
	u := mtp / (tp + mtp)

	p0 := toVec(c.ControlPoint(0))
	pLast := toVec(c.ControlPoint(c.n - 1))
	anchor := p0.Mul(u).Add(pLast.Mul(1 - u))
	b := toVec(target)
	a := b.Sub(anchor.Sub(b).Div(r))

	switch c.n {
	case 3:
		c.setControlPointVec(1, a)
	case 4:
		p1 := toVec(c.ControlPoint(1))
		p2 := toVec(c.ControlPoint(2))
		p3 := toVec(c.ControlPoint(3))

		mt := 1 - t
		e1 := p0.Mul(mt * mt).Add(p1.Mul(2 * t * mt)).Add(p2.Mul(t * t))
		e2 := p1.Mul(mt * mt).Add(p2.Mul(2 * t * mt)).Add(p3.Mul(t * t))

		shift := b.Sub(toVec(c.valueAt(t)))
		e1 = e1.Add(shift)
		e2 = e2.Add(shift)

		v1 := a.Sub(a.Sub(e1).Div(mt))
		v2 := a.Add(e2.Sub(a).Div(t))

		np1 := p0.Add(v1.Sub(p0).Div(t))
		np2 := p3.Sub(p3.Sub(v2).Div(mt))

		c.setControlPointVec(1, np1)
		c.setControlPointVec(2, np2)
	}
	c.cache.invalidate()
}
