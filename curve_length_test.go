package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthOfStraightLine(t *testing.T) {
	c := New(Pt(0, 0), Pt(3, 4))
	assert.InDelta(t, 5, c.Length(), 1e-10)
}

func TestLengthIsPositive(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 3), Pt(4, 4), Pt(5, 0))
	assert.Greater(t, c.Length(), 0.0)
}

func TestLengthAdditivity(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 3), Pt(4, 4), Pt(5, 0))
	total := c.Length()
	for _, mid := range []float64{0.2, 0.5, 0.8} {
		sum := c.LengthBetween(0, mid) + c.LengthBetween(mid, 1)
		assert.InDelta(t, total, sum, 1e-8)
	}
}

func TestLengthAtIsLengthBetweenFromZero(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 3), Pt(4, 4), Pt(5, 0))
	for _, tt := range []float64{0.1, 0.5, 0.9} {
		assert.InDelta(t, c.LengthBetween(0, tt), c.LengthAt(tt), 1e-12)
	}
}

func TestIterateByLengthRoundTrip(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 3), Pt(4, 4), Pt(5, 0))
	total := c.Length()
	for _, tt := range []float64{0.1, 0.3, 0.6, 0.9} {
		target := tt * total
		got := c.IterateByLength(0, target, 1e-9)
		want := c.LengthAt(got)
		assert.InDelta(t, target, want, 1e-4)
	}
}

func TestIterateByLengthClampsAtEnds(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 3), Pt(4, 4), Pt(5, 0))
	total := c.Length()
	assert.Equal(t, 0.0, c.IterateByLength(0, -total, 1e-9))
	assert.Equal(t, 1.0, c.IterateByLength(0, 2*total, 1e-9))
}

func TestLengthOfUniformlySpacedCubicIsLinearInT(t *testing.T) {
	// Evenly spaced collinear control points parameterize the curve
	// linearly in t: C(t) = (3t, 0), so speed is constant and length(t)
	// scales linearly with t.
	c := New(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0))
	assert.InDelta(t, 1.5, c.LengthAt(0.5), 1e-9)
	assert.InDelta(t, 3, c.Length(), 1e-9)
}
