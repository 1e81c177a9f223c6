package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolylineOfCollinearCurveIsTwoPoints(t *testing.T) {
	c := linearCubic()
	poly := c.Polyline(0.01)
	assert.Equal(t, PointVector{Pt(0, 0), Pt(3, 0)}, poly)
}

func TestPolylineEndpointsMatchCurve(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 5), Pt(4, -3), Pt(5, 0))
	start, end := c.EndPoints()
	poly := c.Polyline(0.1)
	assert.GreaterOrEqual(t, len(poly), 2)
	assert.Equal(t, start, poly[0])
	assert.Equal(t, end, poly[len(poly)-1])
}

func TestPolylineRefinesWithSmallerFlatness(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 5), Pt(4, -3), Pt(5, 0))
	coarse := c.Polyline(1.0)
	fine := c.Polyline(0.001)
	assert.GreaterOrEqual(t, len(fine), len(coarse))
}

func TestPolylineIsCachedPerFlatness(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 5), Pt(4, -3), Pt(5, 0))
	a := c.Polyline(0.05)
	b := c.Polyline(0.05)
	assert.Equal(t, a, b)
}

func TestPolylineOfLinearOrderIsControlPoints(t *testing.T) {
	c := New(Pt(0, 0), Pt(3, 4))
	poly := c.Polyline(0.001)
	assert.Equal(t, PointVector{Pt(0, 0), Pt(3, 4)}, poly)
}
