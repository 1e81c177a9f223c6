package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElevateOrderPreservesGeometry(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 2), Pt(2, -1), Pt(3, 0))
	before := make([]Point, 0, 11)
	for i := 0; i <= 10; i++ {
		before = append(before, c.ValueAt(float64(i)/10))
	}
	c.ElevateOrder()
	assert.Equal(t, 4, c.Order())
	for i := 0; i <= 10; i++ {
		got := c.ValueAt(float64(i) / 10)
		assert.InDelta(t, before[i].X, got.X, 1e-9)
		assert.InDelta(t, before[i].Y, got.Y, 1e-9)
	}
}

func TestElevateThenLowerRestoresControlPointsS2(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	original := c.ControlPoints()
	c.ElevateOrder()
	assert.Equal(t, 3, c.Order())
	c.LowerOrder()
	assert.Equal(t, 2, c.Order())
	got := c.ControlPoints()
	for i := range original {
		assert.InDelta(t, original[i].X, got[i].X, 1e-10)
		assert.InDelta(t, original[i].Y, got[i].Y, 1e-10)
	}
}

func TestLowerOrderRejectsLinearCurve(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 1))
	assert.Panics(t, func() { c.LowerOrder() })
}
