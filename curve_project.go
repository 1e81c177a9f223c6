package bezier

import (
	"github.com/dandycheung/bezier/internal/coeffs"
	"github.com/dandycheung/bezier/internal/polyroots"

	"gonum.org/v1/gonum/mat"
)

func (c *Curve) projectionPrefactor() (*mat.Dense, *mat.Dense) {
	return c.cache.getProjection(c.computeProjectionPrefactor)
}

// computeProjectionPrefactor builds the monomial-basis forms of the curve
// and its derivative; ProjectPoint combines them with a query point.
func (c *Curve) computeProjectionPrefactor() (*mat.Dense, *mat.Dense) {
	var cPoly mat.Dense
	cPoly.Mul(coeffs.Bernstein(c.n), c.points)

	deriv := c.Derivative()
	dPoly := mat.NewDense(deriv.n, 2, nil)
	if deriv.n > 0 {
		dPoly.Mul(coeffs.Bernstein(deriv.n), deriv.points)
	}
	return &cPoly, dPoly
}

// ProjectPoint returns the parameter t that minimizes the distance from the
// curve to p. It does not disambiguate among multiple equally-close
// branches on a self-intersecting curve.
func (c *Curve) ProjectPoint(p Point) float64 {
	if c.n <= 1 {
		return 0
	}

	cPoly, dPoly := c.projectionPrefactor()
	dRows, _ := dPoly.Dims()

	// phi holds the ascending-power coefficients of C(t)·C'(t), the
	// convolution of the curve's and its derivative's monomial forms.
	phi := make([]float64, dRows+c.n-1)
	for k := 0; k < c.n; k++ {
		for j := 0; j < dRows; j++ {
			phi[k+j] += dPoly.At(j, 0)*cPoly.At(k, 0) + dPoly.At(j, 1)*cPoly.At(k, 1)
		}
	}
	// Subtract p·C'(t) from the low-order block, leaving the coefficients
	// of (C(t)-p)·C'(t), whose roots are the stationary points of distance.
	for j := 0; j < dRows; j++ {
		phi[j] -= dPoly.At(j, 0)*p.X + dPoly.At(j, 1)*p.Y
	}

	end := len(phi)
	for end > 0 && phi[end-1] == 0 {
		end--
	}
	highToLow := make([]float64, end)
	for i, v := range phi[:end] {
		highToLow[end-1-i] = v
	}

	bestT := 0.0
	bestD := p.Distance(c.valueAt(0))
	if d1 := p.Distance(c.valueAt(1)); d1 < bestD {
		bestT, bestD = 1, d1
	}
	for _, t := range polyroots.Real(highToLow) {
		if t < 0 || t > 1 {
			continue
		}
		if d := p.Distance(c.valueAt(t)); d < bestD {
			bestT, bestD = t, d
		}
	}
	return bestT
}

// ProjectPoints maps ProjectPoint over pts.
func (c *Curve) ProjectPoints(pts PointVector) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = c.ProjectPoint(p)
	}
	return out
}

// Distance returns the distance from p to its projection onto the curve.
func (c *Curve) Distance(p Point) float64 {
	return p.Distance(c.valueAt(c.ProjectPoint(p)))
}

// Distances maps Distance over pts.
func (c *Curve) Distances(pts PointVector) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = c.Distance(p)
	}
	return out
}
