package bezier

import (
	"github.com/dandycheung/bezier/internal/coeffs"

	"gonum.org/v1/gonum/mat"
)

func powersRow(t float64, n int) *mat.Dense {
	row := mat.NewDense(1, n, nil)
	p := 1.0
	for k := 0; k < n; k++ {
		row.Set(0, k, p)
		p *= t
	}
	return row
}

func (c *Curve) valueAt(t float64) Point {
	if c.n == 0 {
		return Pt(0, 0)
	}
	var out mat.Dense
	out.Mul(powersRow(t, c.n), coeffs.Bernstein(c.n))
	var xy mat.Dense
	xy.Mul(&out, c.points)
	return Pt(xy.At(0, 0), xy.At(0, 1))
}

// ValueAt evaluates the curve at parameter t ∈ [0,1].
func (c *Curve) ValueAt(t float64) Point {
	requireParam("ValueAt", t)
	return c.valueAt(t)
}

// ValuesAt evaluates the curve at every parameter in ts.
func (c *Curve) ValuesAt(ts []float64) PointVector {
	out := make(PointVector, len(ts))
	for i, t := range ts {
		out[i] = c.ValueAt(t)
	}
	return out
}

// TangentAt returns the first-derivative vector at t. If normalize is true
// and the derivative has non-zero length, the result is unit length.
func (c *Curve) TangentAt(t float64, normalize bool) Vec2 {
	requireParam("TangentAt", t)
	d := c.DerivativeAt(1, t)
	if normalize {
		if h := d.Hypot(); h > 0 {
			return d.Div(h)
		}
	}
	return d
}

// NormalAt returns the tangent at t rotated 90°: (x,y) → (−y,x).
func (c *Curve) NormalAt(t float64, normalize bool) Vec2 {
	return c.TangentAt(t, normalize).Rotate90()
}

// CurvatureAt returns the signed curvature at t.
func (c *Curve) CurvatureAt(t float64) float64 {
	requireParam("CurvatureAt", t)
	d1 := c.DerivativeAt(1, t)
	d2 := c.DerivativeAt(2, t)
	h := d1.Hypot()
	return (d1.X*d2.Y - d1.Y*d2.X) / (h * h * h)
}

// CurvatureDerivativeAt returns the derivative of curvature with respect to
// t, evaluated at t.
func (c *Curve) CurvatureDerivativeAt(t float64) float64 {
	requireParam("CurvatureDerivativeAt", t)
	d1 := c.DerivativeAt(1, t)
	d2 := c.DerivativeAt(2, t)
	d3 := c.DerivativeAt(3, t)
	h := d1.Hypot()
	h3 := h * h * h
	h5 := h3 * h * h
	term1 := (d1.X*d3.Y - d1.Y*d3.X) / h3
	term2 := 3 * d1.Dot(d2) * (d1.X*d2.Y - d1.Y*d2.X) / h5
	return term1 - term2
}
