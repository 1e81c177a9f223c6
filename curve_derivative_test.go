package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 3), Pt(4, 4), Pt(5, 0))
	const h = 1e-4
	for _, tt := range []float64{0.2, 0.4, 0.5, 0.6, 0.8} {
		plus := c.ValueAt(tt + h)
		minus := c.ValueAt(tt - h)
		wantX := (plus.X - minus.X) / (2 * h)
		wantY := (plus.Y - minus.Y) / (2 * h)
		got := c.DerivativeAt(1, tt)
		assert.InDelta(t, wantX, got.X, 1e-4)
		assert.InDelta(t, wantY, got.Y, 1e-4)
	}
}

func TestDerivativeOrderChains(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 3), Pt(4, 4), Pt(5, 0))
	want := c.Derivative().Derivative().ValueAt(0.3)
	got := c.DerivativeOrder(2).ValueAt(0.3)
	assert.Equal(t, want, got)
}

func TestDerivativeOfLinearIsConstant(t *testing.T) {
	c := New(Pt(0, 0), Pt(2, 4))
	d := c.Derivative()
	assert.Equal(t, 0, d.Order())
	v := d.ValueAt(0)
	assert.InDelta(t, 2, v.X, 1e-12)
	assert.InDelta(t, 4, v.Y, 1e-12)
}

func TestDerivativeAtRejectsOrderZero(t *testing.T) {
	c := New(Pt(0, 0), Pt(1, 1))
	assert.Panics(t, func() { c.DerivativeAt(0, 0.5) })
}
