package bezier

import (
	"github.com/dandycheung/bezier/internal/coeffs"
	"github.com/dandycheung/bezier/internal/polyroots"

	"gonum.org/v1/gonum/mat"
)

// Roots returns the parameters in [0,1] at which either coordinate of the
// curve's control polygon (converted to monomial basis) has a real root.
// x-roots are listed before y-roots; duplicates are not removed.
func (c *Curve) Roots() []float64 {
	return c.cache.getRoots(c.computeRoots)
}

func (c *Curve) computeRoots() []float64 {
	if c.n == 0 {
		return nil
	}
	var q mat.Dense
	q.Mul(coeffs.Bernstein(c.n), c.points)

	var out []float64
	for col := 0; col < 2; col++ {
		lowToHigh := make([]float64, c.n)
		for i := 0; i < c.n; i++ {
			lowToHigh[i] = q.At(i, col)
		}
		end := len(lowToHigh)
		for end > 0 && lowToHigh[end-1] == 0 {
			end--
		}
		highToLow := make([]float64, end)
		for i, v := range lowToHigh[:end] {
			highToLow[end-1-i] = v
		}
		for _, r := range polyroots.Real(highToLow) {
			if r >= 0 && r <= 1 {
				out = append(out, r)
			}
		}
	}
	return out
}

// Extrema returns the parameters in [0,1] at which a component of the
// curve's derivative vanishes, i.e. Derivative().Roots().
func (c *Curve) Extrema() []float64 {
	return c.Derivative().Roots()
}

// BoundingBox returns the axis-aligned bounding box of the curve, computed
// from its endpoints and its extrema.
func (c *Curve) BoundingBox() BoundingBox {
	return c.cache.getBoundingBox(c.computeBoundingBox)
}

func (c *Curve) computeBoundingBox() BoundingBox {
	ext := c.Extrema()
	pts := make(PointVector, 0, len(ext)+4)
	for _, t := range ext {
		pts = append(pts, c.valueAt(t))
	}
	start, end := c.EndPoints()
	pts = append(pts, start, end)
	// The evaluated endpoints can differ from the control points by rounding
	// noise; include them so ValueAt(0) and ValueAt(1) lie inside the box.
	pts = append(pts, c.valueAt(0), c.valueAt(1))
	return boundingBoxOf(pts)
}
