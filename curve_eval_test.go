package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// deCasteljauEval is a reference implementation independent of the
// matrix-coefficient machinery under test.
func deCasteljauEval(points PointVector, t float64) Point {
	pts := append(PointVector(nil), points...)
	for len(pts) > 1 {
		next := make(PointVector, len(pts)-1)
		for i := range next {
			next[i] = pts[i].Lerp(pts[i+1], t)
		}
		pts = next
	}
	return pts[0]
}

// deCasteljauSplit is a reference implementation of de Casteljau
// subdivision, independent of the cached split matrices under test.
func deCasteljauSplit(points PointVector, z float64) (left, right PointVector) {
	n := len(points)
	left = make(PointVector, n)
	right = make(PointVector, n)
	cur := append(PointVector(nil), points...)
	left[0] = cur[0]
	right[n-1] = cur[n-1]
	for level := 1; level < n; level++ {
		next := make(PointVector, len(cur)-1)
		for i := range next {
			next[i] = cur[i].Lerp(cur[i+1], z)
		}
		left[level] = next[0]
		right[n-1-level] = next[len(next)-1]
		cur = next
	}
	return left, right
}

func TestValueAtMatchesDeCasteljau(t *testing.T) {
	points := PointVector{Pt(0, 0), Pt(1, 2), Pt(2, -1), Pt(3, 0), Pt(5, 1)}
	c := New(points...)
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		want := deCasteljauEval(points, tt)
		got := c.ValueAt(tt)
		assert.InDelta(t, want.X, got.X, 1e-10)
		assert.InDelta(t, want.Y, got.Y, 1e-10)
	}
}

func TestValueAtCubicS1(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 2), Pt(2, -1), Pt(3, 0))
	got := c.ValueAt(0.5)
	assert.InDelta(t, 1.5, got.X, 1e-12)
	assert.InDelta(t, 0.375, got.Y, 1e-12)
}

func TestCurvatureAtCubicS1(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 2), Pt(2, -1), Pt(3, 0))
	d1 := c.DerivativeAt(1, 0.5)
	d2 := c.DerivativeAt(2, 0.5)
	h := d1.Hypot()
	want := (d1.X*d2.Y - d1.Y*d2.X) / (h * h * h)
	assert.InDelta(t, want, c.CurvatureAt(0.5), 1e-12)
}

func TestNormalIsPerpendicularToTangent(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 3), Pt(4, 4), Pt(5, 0))
	for _, tt := range []float64{0.1, 0.4, 0.6, 0.9} {
		tan := c.TangentAt(tt, true)
		nrm := c.NormalAt(tt, true)
		assert.InDelta(t, 0, tan.Dot(nrm), 1e-10)
	}
}
